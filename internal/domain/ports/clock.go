package ports

import "time"

// Clock fornece o tempo atual para carimbar entidades, permitindo
// relógio fixo em testes
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock retorna um Clock baseado em time.Now (UTC)
func NewRealClock() Clock {
	return realClock{}
}

package ports

// Logger define a interface de logging estruturado usada pelos services.
// args são pares chave-valor, no estilo do slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With retorna um logger com os pares chave-valor anexados a todas
	// as entradas subsequentes
	With(args ...any) Logger
}

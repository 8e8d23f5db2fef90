package services

import (
	"github.com/docflowhq/docflow-backend/internal/domain/entities"
)

// Session representa a identidade autenticada corrente. O ator é sempre
// um argumento explícito das operações do workflow; não existe usuário
// "global" mutável.
type Session struct {
	User *entities.User
}

// NewSession cria uma sessão para o usuário autenticado
func NewSession(user *entities.User) *Session {
	return &Session{User: user}
}

// Can verifica se o ator da sessão possui uma capacidade
func (s *Session) Can(capability entities.Capability) bool {
	return s != nil && s.User != nil && s.User.Can(capability)
}

// ActorID retorna o id do ator, ou vazio sem sessão
func (s *Session) ActorID() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.ID
}

// CompanyID retorna a empresa do ator, ou vazio quando não há
func (s *Session) CompanyID() string {
	if s == nil || s.User == nil || s.User.CompanyID == nil {
		return ""
	}
	return *s.User.CompanyID
}

package services

import (
	"errors"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/i18n"
)

// sentinelas na ordem de verificação; o texto de cada uma é a própria
// chave i18n
var messageSentinels = []error{
	apperrors.ErrUserNotFound,
	apperrors.ErrCompanyPending,
	apperrors.ErrCompanyRejected,
	apperrors.ErrForbidden,
	apperrors.ErrCompanyNotFound,
	apperrors.ErrDocumentNotFound,
	apperrors.ErrEmailAlreadyExists,
	apperrors.ErrCNPJAlreadyExists,
	apperrors.ErrInvalidEmail,
	apperrors.ErrInvalidCNPJ,
	apperrors.ErrInvalidStatus,
	apperrors.ErrRejectionReasonRequired,
	apperrors.ErrMissingRequiredFields,
}

// MessageKeyFor resolve a chave i18n da mensagem de um erro do workflow.
// Erros fora da taxonomia caem na mensagem genérica interna.
func MessageKeyFor(err error) string {
	for _, sentinel := range messageSentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "error.internal"
}

// MessageFor traduz um erro do workflow para exibição ao usuário
func MessageFor(t *i18n.Service, lang string, err error) string {
	return t.T(lang, MessageKeyFor(err))
}

// DisplayName resolve o nome de exibição de um usuário, com rótulo
// definido quando o usuário não pôde ser resolvido
func DisplayName(t *i18n.Service, lang string, user *entities.User) string {
	if user == nil || user.Name == "" {
		return t.T(lang, "label.responsible_unknown")
	}
	return user.Name
}

package repositories

import (
	"context"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
)

// DocumentRepository define a interface para persistência de documentos.
// Create força status PENDING, limpa o motivo de reprovação e carimba
// UploadedAt. Toda listagem retorna os documentos mais recentes primeiro.
type DocumentRepository interface {
	Create(ctx context.Context, document *entities.Document) error
	FindByID(ctx context.Context, id string) (*entities.Document, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entities.Document, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Document, error)
	ListAll(ctx context.Context) ([]*entities.Document, error)
	// UpdateStatus define status e motivo; o motivo só é armazenado quando
	// status == REJECTED e é descartado nos demais casos. Retorna
	// errors.ErrDocumentNotFound se o id não existir.
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus, reason *string) (*entities.Document, error)
}

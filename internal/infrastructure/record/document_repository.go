package record

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/domain/ports"
	"github.com/docflowhq/docflow-backend/internal/domain/repositories"
)

// DocumentRepository implementa repositories.DocumentRepository sobre o Store
type DocumentRepository struct {
	store Store
	clock ports.Clock
	newID func() string
}

// NewDocumentRepository cria um novo DocumentRepository
func NewDocumentRepository(store Store, clock ports.Clock) repositories.DocumentRepository {
	if clock == nil {
		clock = ports.NewRealClock()
	}
	return &DocumentRepository{store: store, clock: clock, newID: uuid.NewString}
}

// Create persiste o documento forçando status PENDING, motivo de
// reprovação ausente e UploadedAt carimbado agora
func (r *DocumentRepository) Create(ctx context.Context, document *entities.Document) error {
	records, err := r.store.Read(ctx, CollectionDocuments)
	if err != nil {
		return err
	}

	model := r.toModel(document)
	model.ID = r.newID()
	model.Status = string(entities.DocumentStatusPending)
	model.RejectionReason = nil
	model.UploadedAt = r.clock.Now()

	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := r.store.Write(ctx, CollectionDocuments, append(records, data)); err != nil {
		return err
	}

	document.ID = model.ID
	document.Status = entities.DocumentStatusPending
	document.RejectionReason = nil
	document.UploadedAt = model.UploadedAt
	return nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*entities.Document, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		if models[i].ID == id {
			return r.toEntity(&models[i]), nil
		}
	}

	return nil, nil
}

func (r *DocumentRepository) ListByCompany(ctx context.Context, companyID string) ([]*entities.Document, error) {
	return r.list(ctx, func(model *DocumentRecord) bool {
		return model.CompanyID == companyID
	})
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Document, error) {
	return r.list(ctx, func(model *DocumentRecord) bool {
		return model.UserID == userID
	})
}

func (r *DocumentRepository) ListAll(ctx context.Context) ([]*entities.Document, error) {
	return r.list(ctx, func(*DocumentRecord) bool { return true })
}

// UpdateStatus define status e motivo de reprovação. O motivo só é
// armazenado quando status == REJECTED; nos demais casos é descartado.
func (r *DocumentRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus, reason *string) (*entities.Document, error) {
	records, err := r.store.Read(ctx, CollectionDocuments)
	if err != nil {
		return nil, err
	}

	for i, raw := range records {
		var model DocumentRecord
		if err := json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("failed to parse document record: %w", err)
		}

		if model.ID != id {
			continue
		}

		model.Status = string(status)
		if status == entities.DocumentStatusRejected {
			model.RejectionReason = reason
		} else {
			model.RejectionReason = nil
		}

		data, err := json.Marshal(model)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize document: %w", err)
		}

		records[i] = data
		if err := r.store.Write(ctx, CollectionDocuments, records); err != nil {
			return nil, err
		}

		return r.toEntity(&model), nil
	}

	return nil, apperrors.ErrDocumentNotFound
}

// list filtra e ordena por UploadedAt decrescente (mais recentes primeiro)
func (r *DocumentRepository) list(ctx context.Context, match func(*DocumentRecord) bool) ([]*entities.Document, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	documents := make([]*entities.Document, 0, len(models))
	for i := range models {
		if match(&models[i]) {
			documents = append(documents, r.toEntity(&models[i]))
		}
	}

	sort.SliceStable(documents, func(i, j int) bool {
		return documents[i].UploadedAt.After(documents[j].UploadedAt)
	})

	return documents, nil
}

func (r *DocumentRepository) readAll(ctx context.Context) ([]DocumentRecord, error) {
	records, err := r.store.Read(ctx, CollectionDocuments)
	if err != nil {
		return nil, err
	}

	models := make([]DocumentRecord, 0, len(records))
	for _, raw := range records {
		var model DocumentRecord
		if err := json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("failed to parse document record: %w", err)
		}
		models = append(models, model)
	}

	return models, nil
}

// Conversores
func (r *DocumentRepository) toModel(document *entities.Document) *DocumentRecord {
	return &DocumentRecord{
		ID:              document.ID,
		UserID:          document.UserID,
		CompanyID:       document.CompanyID,
		Name:            document.Name,
		FileType:        string(document.FileType),
		FileURL:         document.FileURL,
		UploadedAt:      document.UploadedAt,
		Status:          string(document.Status),
		RejectionReason: document.RejectionReason,
	}
}

func (r *DocumentRepository) toEntity(model *DocumentRecord) *entities.Document {
	return &entities.Document{
		ID:              model.ID,
		UserID:          model.UserID,
		CompanyID:       model.CompanyID,
		Name:            model.Name,
		FileType:        entities.FileType(model.FileType),
		FileURL:         model.FileURL,
		UploadedAt:      model.UploadedAt,
		Status:          entities.DocumentStatus(model.Status),
		RejectionReason: model.RejectionReason,
	}
}

package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	"github.com/docflowhq/docflow-backend/internal/domain/repositories"
	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository sobre o Store
type UserRepository struct {
	store Store
	newID func() string
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(store Store) repositories.UserRepository {
	return &UserRepository{store: store, newID: uuid.NewString}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	records, err := r.store.Read(ctx, CollectionUsers)
	if err != nil {
		return err
	}

	model := r.toModel(user)
	model.ID = r.newID()

	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	if err := r.store.Write(ctx, CollectionUsers, append(records, data)); err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		if models[i].ID == id {
			return r.toEntity(&models[i])
		}
	}

	return nil, nil
}

func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email valueobjects.Email, role entities.Role) (*entities.User, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		if models[i].Email == email.String() && models[i].Role == string(role) {
			return r.toEntity(&models[i])
		}
	}

	return nil, nil
}

func (r *UserRepository) FindByCompanyID(ctx context.Context, companyID string) (*entities.User, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		if models[i].CompanyID != nil && *models[i].CompanyID == companyID {
			return r.toEntity(&models[i])
		}
	}

	return nil, nil
}

func (r *UserRepository) readAll(ctx context.Context) ([]UserRecord, error) {
	records, err := r.store.Read(ctx, CollectionUsers)
	if err != nil {
		return nil, err
	}

	models := make([]UserRecord, 0, len(records))
	for _, raw := range records {
		var model UserRecord
		if err := json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("failed to parse user record: %w", err)
		}
		models = append(models, model)
	}

	return models, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserRecord {
	return &UserRecord{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
	}
}

func (r *UserRepository) toEntity(model *UserRecord) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("stored user %s has invalid email: %w", model.ID, err)
	}

	return &entities.User{
		ID:        model.ID,
		Name:      model.Name,
		Email:     email,
		Role:      entities.Role(model.Role),
		CompanyID: model.CompanyID,
	}, nil
}

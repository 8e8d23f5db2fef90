package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/domain/ports"
	"github.com/docflowhq/docflow-backend/internal/domain/repositories"
	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

// CompanyRepository implementa repositories.CompanyRepository sobre o Store
type CompanyRepository struct {
	store Store
	clock ports.Clock
	newID func() string
}

// NewCompanyRepository cria um novo CompanyRepository
func NewCompanyRepository(store Store, clock ports.Clock) repositories.CompanyRepository {
	if clock == nil {
		clock = ports.NewRealClock()
	}
	return &CompanyRepository{store: store, clock: clock, newID: uuid.NewString}
}

// Create persiste a empresa forçando status PENDING e carimbando
// CreatedAt, independentemente dos valores informados
func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	records, err := r.store.Read(ctx, CollectionCompanies)
	if err != nil {
		return err
	}

	model := r.toModel(company)
	model.ID = r.newID()
	model.Status = string(entities.CompanyStatusPending)
	model.CreatedAt = r.clock.Now()

	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to serialize company: %w", err)
	}

	if err := r.store.Write(ctx, CollectionCompanies, append(records, data)); err != nil {
		return err
	}

	company.ID = model.ID
	company.Status = entities.CompanyStatusPending
	company.CreatedAt = model.CreatedAt
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entities.Company, error) {
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

func (r *CompanyRepository) FindByCNPJ(ctx context.Context, cnpj valueobjects.CNPJ) (*entities.Company, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range models {
		stored, err := valueobjects.NewCNPJ(models[i].CNPJ)
		if err != nil {
			continue
		}
		if stored.Equals(cnpj) {
			return r.toEntity(&models[i])
		}
	}

	return nil, nil
}

// List retorna as empresas na ordem de inserção no store
func (r *CompanyRepository) List(ctx context.Context) ([]*entities.Company, error) {
	models, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]*entities.Company, 0, len(models))
	for i := range models {
		company, err := r.toEntity(&models[i])
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, nil
}

// UpdateStatus sobrescreve o status da empresa mantendo os demais campos
func (r *CompanyRepository) UpdateStatus(ctx context.Context, id string, status entities.CompanyStatus) (*entities.Company, error) {
	records, err := r.store.Read(ctx, CollectionCompanies)
	if err != nil {
		return nil, err
	}

	for i, raw := range records {
		var model CompanyRecord
		if err := json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("failed to parse company record: %w", err)
		}

		if model.ID != id {
			continue
		}

		model.Status = string(status)

		data, err := json.Marshal(model)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize company: %w", err)
		}

		records[i] = data
		if err := r.store.Write(ctx, CollectionCompanies, records); err != nil {
			return nil, err
		}

		return r.toEntity(&model)
	}

	return nil, apperrors.ErrCompanyNotFound
}

func (r *CompanyRepository) readAll(ctx context.Context) ([]CompanyRecord, error) {
	records, err := r.store.Read(ctx, CollectionCompanies)
	if err != nil {
		return nil, err
	}

	models := make([]CompanyRecord, 0, len(records))
	for _, raw := range records {
		var model CompanyRecord
		if err := json.Unmarshal(raw, &model); err != nil {
			return nil, fmt.Errorf("failed to parse company record: %w", err)
		}
		models = append(models, model)
	}

	return models, nil
}

// Conversores
func (r *CompanyRepository) toModel(company *entities.Company) *CompanyRecord {
	return &CompanyRecord{
		ID:           company.ID,
		CNPJ:         company.CNPJ.String(),
		FantasyName:  company.FantasyName,
		SocialReason: company.SocialReason,
		ZipCode:      company.ZipCode,
		Address:      company.Address,
		Number:       company.Number,
		Complement:   company.Complement,
		Neighborhood: company.Neighborhood,
		City:         company.City,
		State:        company.State,
		Phone:        company.Phone,
		Status:       string(company.Status),
		CreatedAt:    company.CreatedAt,
	}
}

func (r *CompanyRepository) toEntity(model *CompanyRecord) (*entities.Company, error) {
	cnpj, err := valueobjects.NewCNPJ(model.CNPJ)
	if err != nil {
		return nil, fmt.Errorf("stored company %s has invalid cnpj: %w", model.ID, err)
	}

	return &entities.Company{
		ID:           model.ID,
		CNPJ:         cnpj,
		FantasyName:  model.FantasyName,
		SocialReason: model.SocialReason,
		ZipCode:      model.ZipCode,
		Address:      model.Address,
		Number:       model.Number,
		Complement:   model.Complement,
		Neighborhood: model.Neighborhood,
		City:         model.City,
		State:        model.State,
		Phone:        model.Phone,
		Status:       entities.CompanyStatus(model.Status),
		CreatedAt:    model.CreatedAt,
	}, nil
}

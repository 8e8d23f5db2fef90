package repositories

import (
	"context"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

// CompanyRepository define a interface para persistência de empresas.
// Create força status PENDING e carimba CreatedAt independentemente dos
// valores informados pelo chamador.
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	FindByID(ctx context.Context, id string) (*entities.Company, error)
	FindByCNPJ(ctx context.Context, cnpj valueobjects.CNPJ) (*entities.Company, error)
	// List retorna as empresas na ordem de inserção no store
	List(ctx context.Context) ([]*entities.Company, error)
	// UpdateStatus sobrescreve apenas o status; retorna
	// errors.ErrCompanyNotFound se o id não existir
	UpdateStatus(ctx context.Context, id string, status entities.CompanyStatus) (*entities.Company, error)
}

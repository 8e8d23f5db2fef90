package repositories

import (
	"context"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

// UserRepository define a interface para persistência de usuários.
// Buscas sem resultado retornam (nil, nil); cabe ao serviço mapear para
// o erro de negócio adequado.
type UserRepository interface {
	// Create persiste um novo usuário, gerando o ID
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmailAndRole(ctx context.Context, email valueobjects.Email, role entities.Role) (*entities.User, error)
	// FindByCompanyID retorna o usuário responsável por uma empresa
	FindByCompanyID(ctx context.Context, companyID string) (*entities.User, error)
}

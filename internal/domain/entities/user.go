package entities

import (
	"errors"

	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema.
// Fornecedores (SUPPLIER) pertencem a exatamente uma empresa, definida na
// criação e imutável depois disso. O administrador não possui empresa.
type User struct {
	ID        string
	Name      string
	Email     valueobjects.Email
	Role      Role
	CompanyID *string // presente se e somente se Role == RoleSupplier
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupplier verifica se o usuário é fornecedor
func (u *User) IsSupplier() bool {
	return u.Role == RoleSupplier
}

// Can verifica se o usuário possui uma capacidade
func (u *User) Can(capability Capability) bool {
	return u.Role.Can(capability)
}

// GetCapabilities retorna todas as capacidades do usuário
func (u *User) GetCapabilities() []string {
	caps := u.Role.GetCapabilities()
	result := make([]string, len(caps))
	for i, c := range caps {
		result[i] = string(c)
	}
	return result
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if u.Role == RoleSupplier && (u.CompanyID == nil || *u.CompanyID == "") {
		return errors.New("supplier must belong to a company")
	}

	if u.Role == RoleAdmin && u.CompanyID != nil {
		return errors.New("admin must not belong to a company")
	}

	return nil
}

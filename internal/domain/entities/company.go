package entities

import (
	"errors"
	"time"

	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

// CompanyStatus representa o estado de aprovação de uma empresa
type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "PENDING"
	CompanyStatusApproved CompanyStatus = "APPROVED"
	CompanyStatusRejected CompanyStatus = "REJECTED"
)

// IsValid verifica se o status é conhecido
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusPending, CompanyStatusApproved, CompanyStatusRejected:
		return true
	default:
		return false
	}
}

// Company representa uma empresa fornecedora aguardando ou detendo
// aprovação de cadastro. Toda empresa nasce PENDING e só o fluxo de
// moderação altera seu status.
type Company struct {
	ID           string
	CNPJ         valueobjects.CNPJ
	FantasyName  string
	SocialReason string
	ZipCode      string
	Address      string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	Phone        string
	Status       CompanyStatus
	CreatedAt    time.Time
}

// IsApproved verifica se a empresa já foi liberada pelo administrador
func (c *Company) IsApproved() bool {
	return c.Status == CompanyStatusApproved
}

// IsPending verifica se a empresa aguarda análise
func (c *Company) IsPending() bool {
	return c.Status == CompanyStatusPending
}

// IsRejected verifica se o cadastro foi recusado
func (c *Company) IsRejected() bool {
	return c.Status == CompanyStatusRejected
}

// Validate valida regras de negócio da entidade Company
func (c *Company) Validate() error {
	if c.CNPJ.String() == "" {
		return errors.New("cnpj is required")
	}

	if c.FantasyName == "" {
		return errors.New("fantasy name is required")
	}

	if c.SocialReason == "" {
		return errors.New("social reason is required")
	}

	if !c.Status.IsValid() {
		return errors.New("invalid status")
	}

	return nil
}

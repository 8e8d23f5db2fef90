package services

import (
	"context"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/domain/ports"
	"github.com/docflowhq/docflow-backend/internal/domain/repositories"
)

// ViewsService fornece os read-models derivados consumidos pela camada de
// apresentação. Nenhuma operação aqui realiza mutação.
type ViewsService struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
	documents repositories.DocumentRepository
	logger    ports.Logger
}

// NewViewsService cria um novo ViewsService
func NewViewsService(
	users repositories.UserRepository,
	companies repositories.CompanyRepository,
	documents repositories.DocumentRepository,
	logger ports.Logger,
) *ViewsService {
	return &ViewsService{
		users:     users,
		companies: companies,
		documents: documents,
		logger:    logger,
	}
}

// SupplierStats resume os documentos de uma empresa para o painel do
// fornecedor
type SupplierStats struct {
	Total      int
	Pending    int
	HasPending bool
}

// SupplierStats calcula o resumo de documentos da empresa do ator
func (s *ViewsService) SupplierStats(ctx context.Context, session *Session) (SupplierStats, error) {
	companyID := session.CompanyID()
	if companyID == "" {
		return SupplierStats{}, apperrors.ErrForbidden
	}

	documents, err := s.documents.ListByCompany(ctx, companyID)
	if err != nil {
		return SupplierStats{}, err
	}

	stats := SupplierStats{Total: len(documents)}
	for _, d := range documents {
		if d.IsPending() {
			stats.Pending++
		}
	}
	stats.HasPending = stats.Pending > 0

	return stats, nil
}

// ListCompanyDocuments lista os documentos da empresa do ator, mais
// recentes primeiro
func (s *ViewsService) ListCompanyDocuments(ctx context.Context, session *Session) ([]*entities.Document, error) {
	companyID := session.CompanyID()
	if companyID == "" {
		return nil, apperrors.ErrForbidden
	}

	return s.documents.ListByCompany(ctx, companyID)
}

// ListAllDocuments lista todos os documentos para moderação
func (s *ViewsService) ListAllDocuments(ctx context.Context, session *Session) ([]*entities.Document, error) {
	if !session.Can(entities.CapabilityModerateDocument) {
		return nil, apperrors.ErrForbidden
	}

	return s.documents.ListAll(ctx)
}

// CompanyForActor retorna a empresa do fornecedor autenticado
func (s *ViewsService) CompanyForActor(ctx context.Context, session *Session) (*entities.Company, error) {
	companyID := session.CompanyID()
	if companyID == "" {
		return nil, apperrors.ErrCompanyNotFound
	}

	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperrors.ErrCompanyNotFound
	}

	return company, nil
}

// CompanyListing associa uma empresa ao seu usuário responsável.
// Responsible fica nil quando o usuário não pôde ser resolvido; cabe à
// apresentação usar o rótulo de fallback (ver DisplayName).
type CompanyListing struct {
	Company     *entities.Company
	Responsible *entities.User
}

// CompanyDirectory lista as empresas cadastradas com o respectivo
// responsável, na ordem de inserção
func (s *ViewsService) CompanyDirectory(ctx context.Context, session *Session) ([]CompanyListing, error) {
	if !session.Can(entities.CapabilityListCompanies) {
		return nil, apperrors.ErrForbidden
	}

	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]CompanyListing, 0, len(companies))
	for _, company := range companies {
		responsible, err := s.users.FindByCompanyID(ctx, company.ID)
		if err != nil {
			return nil, err
		}

		if responsible == nil {
			s.logger.Warn("company without responsible user", "company_id", company.ID)
		}

		listings = append(listings, CompanyListing{
			Company:     company,
			Responsible: responsible,
		})
	}

	return listings, nil
}

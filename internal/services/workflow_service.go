package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/domain/ports"
	"github.com/docflowhq/docflow-backend/internal/domain/repositories"
	"github.com/docflowhq/docflow-backend/internal/domain/valueobjects"
)

// Decision representa a decisão de moderação de um documento
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

// WorkflowService contém as regras entre entidades que nenhum repositório
// consegue garantir sozinho: cadastro, gate de login, envio de documentos
// e moderação
type WorkflowService struct {
	users     repositories.UserRepository
	companies repositories.CompanyRepository
	documents repositories.DocumentRepository
	validate  *validator.Validate
	logger    ports.Logger
}

// NewWorkflowService cria um novo WorkflowService
func NewWorkflowService(
	users repositories.UserRepository,
	companies repositories.CompanyRepository,
	documents repositories.DocumentRepository,
	logger ports.Logger,
) *WorkflowService {
	return &WorkflowService{
		users:     users,
		companies: companies,
		documents: documents,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CompanyDraft representa os dados de cadastro da empresa
type CompanyDraft struct {
	CNPJ         string `validate:"required"`
	FantasyName  string `validate:"required"`
	SocialReason string `validate:"required"`
	ZipCode      string `validate:"required"`
	Address      string `validate:"required"`
	Number       string `validate:"required"`
	Complement   *string
	Neighborhood string `validate:"required"`
	City         string `validate:"required"`
	State        string `validate:"required,len=2"`
	Phone        string `validate:"required"`
}

// UserDraft representa os dados do usuário responsável
type UserDraft struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
}

// RegisterSupplierInput representa os dados para cadastro de fornecedor
type RegisterSupplierInput struct {
	Company CompanyDraft
	User    UserDraft
}

// Login autentica por (email, role). Admin entra direto; fornecedor passa
// pelo gate de aprovação da empresa: PENDING e REJECTED bloqueiam o
// acesso, APPROVED (ou empresa não localizada) libera.
func (s *WorkflowService) Login(ctx context.Context, rawEmail string, role entities.Role) (*Session, error) {
	email, err := valueobjects.NewEmail(rawEmail)
	if err != nil {
		// Email com formato inválido nunca casa com um usuário cadastrado
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if user.IsAdmin() {
		s.logger.Info("admin logged in", "user_id", user.ID)
		return NewSession(user), nil
	}

	if user.CompanyID != nil {
		company, err := s.companies.FindByID(ctx, *user.CompanyID)
		if err != nil {
			return nil, err
		}

		if company != nil {
			switch {
			case company.IsPending():
				return nil, apperrors.ErrCompanyPending
			case company.IsRejected():
				return nil, apperrors.ErrCompanyRejected
			}
		}
	}

	s.logger.Info("supplier logged in", "user_id", user.ID, "company_id", s.companyID(user))
	return NewSession(user), nil
}

// RegisterSupplier cadastra empresa + usuário responsável. A empresa
// nasce PENDING e o usuário criado se torna o ator autenticado. Toda a
// validação acontece antes da primeira escrita, portanto uma falha não
// deixa mutação parcial.
func (s *WorkflowService) RegisterSupplier(ctx context.Context, input RegisterSupplierInput) (*Session, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.User.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidEmail
	}

	cnpj, err := valueobjects.NewCNPJ(input.Company.CNPJ)
	if err != nil {
		return nil, apperrors.ErrInvalidCNPJ
	}

	existing, err := s.users.FindByEmailAndRole(ctx, email, entities.RoleSupplier)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	existingCompany, err := s.companies.FindByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if existingCompany != nil {
		return nil, apperrors.ErrCNPJAlreadyExists
	}

	company := &entities.Company{
		CNPJ:         cnpj,
		FantasyName:  input.Company.FantasyName,
		SocialReason: input.Company.SocialReason,
		ZipCode:      input.Company.ZipCode,
		Address:      input.Company.Address,
		Number:       input.Company.Number,
		Complement:   input.Company.Complement,
		Neighborhood: input.Company.Neighborhood,
		City:         input.Company.City,
		State:        input.Company.State,
		Phone:        input.Company.Phone,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:      input.User.Name,
		Email:     email,
		Role:      entities.RoleSupplier,
		CompanyID: &company.ID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("supplier registered",
		"user_id", user.ID,
		"company_id", company.ID,
		"cnpj", cnpj.Digits(),
	)

	return NewSession(user), nil
}

// SubmitDocumentInput representa o envio de um documento
type SubmitDocumentInput struct {
	Name     string `validate:"required"`
	FileName string `validate:"required"`
	FileURL  string
}

// SubmitDocument cria um documento PENDING pertencente à empresa do ator.
// O tipo do arquivo é derivado da extensão do nome (padrão pdf).
func (s *WorkflowService) SubmitDocument(ctx context.Context, session *Session, input SubmitDocumentInput) (*entities.Document, error) {
	if !session.Can(entities.CapabilitySubmitDocument) {
		return nil, apperrors.ErrForbidden
	}

	companyID := session.CompanyID()
	if companyID == "" {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	document := &entities.Document{
		UserID:    session.ActorID(),
		CompanyID: companyID,
		Name:      input.Name,
		FileType:  entities.FileTypeFromName(input.FileName),
		FileURL:   input.FileURL,
	}

	if err := s.documents.Create(ctx, document); err != nil {
		return nil, err
	}

	s.logger.Info("document submitted",
		"document_id", document.ID,
		"company_id", companyID,
		"file_type", document.FileType,
	)

	return document, nil
}

// ModerateDocument aplica a decisão do administrador a um documento.
// Aprovação limpa o motivo e é idempotente; reprovação exige motivo não
// vazio, validado antes de tocar o store.
func (s *WorkflowService) ModerateDocument(ctx context.Context, session *Session, documentID string, decision Decision, reason string) (*entities.Document, error) {
	if !session.Can(entities.CapabilityModerateDocument) {
		return nil, apperrors.ErrForbidden
	}

	switch decision {
	case DecisionApprove:
		document, err := s.documents.UpdateStatus(ctx, documentID, entities.DocumentStatusApproved, nil)
		if err != nil {
			return nil, err
		}
		s.logger.Info("document approved", "document_id", documentID)
		return document, nil

	case DecisionReject:
		if strings.TrimSpace(reason) == "" {
			return nil, apperrors.ErrRejectionReasonRequired
		}

		document, err := s.documents.UpdateStatus(ctx, documentID, entities.DocumentStatusRejected, &reason)
		if err != nil {
			return nil, err
		}
		s.logger.Info("document rejected", "document_id", documentID)
		return document, nil

	default:
		return nil, apperrors.ErrInvalidStatus
	}
}

// SetCompanyStatus sobrescreve o status de uma empresa sem efeitos em
// cascata sobre usuários ou documentos existentes
func (s *WorkflowService) SetCompanyStatus(ctx context.Context, session *Session, companyID string, status entities.CompanyStatus) (*entities.Company, error) {
	if !session.Can(entities.CapabilityModerateCompany) {
		return nil, apperrors.ErrForbidden
	}

	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	company, err := s.companies.UpdateStatus(ctx, companyID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("company status updated", "company_id", companyID, "status", status)
	return company, nil
}

// validateInput traduz erros do validator para a taxonomia de validação
func (s *WorkflowService) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]apperrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fe.Error(),
		})
	}

	return apperrors.NewValidationError(fields)
}

func (s *WorkflowService) companyID(user *entities.User) string {
	if user.CompanyID == nil {
		return ""
	}
	return *user.CompanyID
}

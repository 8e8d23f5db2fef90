package services_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/domain/ports"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/logging"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/record"
	"github.com/docflowhq/docflow-backend/internal/services"
)

// workflowEnv monta um ambiente isolado por teste sobre o store em memória
type workflowEnv struct {
	workflow *services.WorkflowService
	views    *services.ViewsService
	admin    *services.Session
}

func newWorkflowEnv(ctx context.Context) *workflowEnv {
	log := logging.NewSlogLogger("error")
	store := record.NewMemoryStore(record.Latency{})
	Expect(record.EnsureSeed(ctx, store, log)).To(Succeed())

	clock := ports.NewRealClock()
	users := record.NewUserRepository(store)
	companies := record.NewCompanyRepository(store, clock)
	documents := record.NewDocumentRepository(store, clock)

	workflow := services.NewWorkflowService(users, companies, documents, log)
	views := services.NewViewsService(users, companies, documents, log)

	admin, err := workflow.Login(ctx, record.SeedAdminEmail, entities.RoleAdmin)
	Expect(err).NotTo(HaveOccurred())

	return &workflowEnv{workflow: workflow, views: views, admin: admin}
}

func acmeInput() services.RegisterSupplierInput {
	return services.RegisterSupplierInput{
		Company: services.CompanyDraft{
			CNPJ:         "12.345.678/0001-95",
			FantasyName:  "Acme Ltda",
			SocialReason: "Acme Comercio de Equipamentos Ltda",
			ZipCode:      "01310-100",
			Address:      "Avenida Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
			Phone:        "(11) 99999-0000",
		},
		User: services.UserDraft{
			Name:  "Ana Souza",
			Email: "ana@acme.com",
		},
	}
}

var _ = Describe("WorkflowService", func() {
	var (
		ctx context.Context
		env *workflowEnv
	)

	BeforeEach(func() {
		ctx = context.Background()
		env = newWorkflowEnv(ctx)
	})

	Describe("RegisterSupplier", func() {
		It("cadastra empresa pendente e autentica o responsável", func() {
			session, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(session.User.Role).To(Equal(entities.RoleSupplier))
			Expect(session.User.ID).NotTo(BeEmpty())
			Expect(session.CompanyID()).NotTo(BeEmpty())

			company, err := env.views.CompanyForActor(ctx, session)
			Expect(err).NotTo(HaveOccurred())
			Expect(company.Status).To(Equal(entities.CompanyStatusPending))
			Expect(company.CNPJ.Digits()).To(Equal("12345678000195"))
		})

		It("rejeita e-mail de fornecedor já cadastrado", func() {
			_, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			input := acmeInput()
			input.Company.CNPJ = "98.765.432/0001-10"
			_, err = env.workflow.RegisterSupplier(ctx, input)
			Expect(err).To(MatchError(apperrors.ErrEmailAlreadyExists))
		})

		It("rejeita CNPJ já cadastrado", func() {
			_, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			input := acmeInput()
			input.User.Email = "bruno@acme.com"
			_, err = env.workflow.RegisterSupplier(ctx, input)
			Expect(err).To(MatchError(apperrors.ErrCNPJAlreadyExists))
		})

		It("rejeita CNPJ com formato inválido", func() {
			input := acmeInput()
			input.Company.CNPJ = "12.345"
			_, err := env.workflow.RegisterSupplier(ctx, input)
			Expect(err).To(MatchError(apperrors.ErrInvalidCNPJ))
		})

		It("rejeita campos obrigatórios ausentes com detalhe por campo", func() {
			input := acmeInput()
			input.Company.FantasyName = ""
			input.User.Email = "nao-e-email"

			_, err := env.workflow.RegisterSupplier(ctx, input)
			Expect(err).To(MatchError(apperrors.ErrMissingRequiredFields))
			Expect(apperrors.KindOf(err)).To(Equal(apperrors.KindValidation))

			var domainErr *apperrors.DomainError
			Expect(errors.As(err, &domainErr)).To(BeTrue())
			Expect(domainErr.Fields).NotTo(BeEmpty())
		})

		It("não grava nada quando a validação falha", func() {
			input := acmeInput()
			input.User.Email = "nao-e-email"
			_, err := env.workflow.RegisterSupplier(ctx, input)
			Expect(err).To(HaveOccurred())

			listings, err := env.views.CompanyDirectory(ctx, env.admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(listings).To(BeEmpty())
		})
	})

	Describe("Login", func() {
		It("retorna usuário não encontrado para e-mail desconhecido", func() {
			_, err := env.workflow.Login(ctx, "ninguem@acme.com", entities.RoleSupplier)
			Expect(err).To(MatchError(apperrors.ErrUserNotFound))
		})

		It("retorna usuário não encontrado para e-mail malformado", func() {
			_, err := env.workflow.Login(ctx, "sem-arroba", entities.RoleSupplier)
			Expect(err).To(MatchError(apperrors.ErrUserNotFound))
		})

		It("exige correspondência exata de papel", func() {
			_, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			_, err = env.workflow.Login(ctx, "ana@acme.com", entities.RoleAdmin)
			Expect(err).To(MatchError(apperrors.ErrUserNotFound))
		})

		It("bloqueia fornecedor de empresa pendente", func() {
			_, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			_, err = env.workflow.Login(ctx, "ana@acme.com", entities.RoleSupplier)
			Expect(err).To(MatchError(apperrors.ErrCompanyPending))
		})

		It("bloqueia fornecedor de empresa recusada", func() {
			supplier, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			_, err = env.workflow.SetCompanyStatus(ctx, env.admin, supplier.CompanyID(), entities.CompanyStatusRejected)
			Expect(err).NotTo(HaveOccurred())

			_, err = env.workflow.Login(ctx, "ana@acme.com", entities.RoleSupplier)
			Expect(err).To(MatchError(apperrors.ErrCompanyRejected))
		})

		It("libera fornecedor depois da aprovação da empresa", func() {
			supplier, err := env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			_, err = env.workflow.SetCompanyStatus(ctx, env.admin, supplier.CompanyID(), entities.CompanyStatusApproved)
			Expect(err).NotTo(HaveOccurred())

			session, err := env.workflow.Login(ctx, "ana@acme.com", entities.RoleSupplier)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.CompanyID()).To(Equal(supplier.CompanyID()))
		})

		It("autentica o administrador semeado sem passar pelo gate", func() {
			session, err := env.workflow.Login(ctx, record.SeedAdminEmail, entities.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.User.ID).To(Equal(record.SeedAdminID))
			Expect(session.CompanyID()).To(BeEmpty())
		})
	})

	Describe("SubmitDocument", func() {
		var supplier *services.Session

		BeforeEach(func() {
			var err error
			supplier, err = env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())
		})

		It("cria documento pendente com tipo derivado da extensão", func() {
			document, err := env.workflow.SubmitDocument(ctx, supplier, services.SubmitDocumentInput{
				Name:     "Contrato social",
				FileName: "contrato.PDF",
				FileURL:  "https://files.local/contrato.pdf",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(document.Status).To(Equal(entities.DocumentStatusPending))
			Expect(document.FileType).To(Equal(entities.FileTypePDF))
			Expect(document.RejectionReason).To(BeNil())
			Expect(document.CompanyID).To(Equal(supplier.CompanyID()))
			Expect(document.UserID).To(Equal(supplier.ActorID()))
		})

		It("usa pdf como tipo padrão para extensões desconhecidas", func() {
			document, err := env.workflow.SubmitDocument(ctx, supplier, services.SubmitDocumentInput{
				Name:     "Planilha de preços",
				FileName: "precos.xlsx",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(document.FileType).To(Equal(entities.FileTypePDF))
		})

		It("não permite envio pelo administrador", func() {
			_, err := env.workflow.SubmitDocument(ctx, env.admin, services.SubmitDocumentInput{
				Name:     "Contrato social",
				FileName: "contrato.pdf",
			})
			Expect(err).To(MatchError(apperrors.ErrForbidden))
		})

		It("rejeita envio sem nome do documento", func() {
			_, err := env.workflow.SubmitDocument(ctx, supplier, services.SubmitDocumentInput{
				FileName: "contrato.pdf",
			})
			Expect(err).To(MatchError(apperrors.ErrMissingRequiredFields))
		})
	})

	Describe("ModerateDocument", func() {
		var (
			supplier *services.Session
			document *entities.Document
		)

		BeforeEach(func() {
			var err error
			supplier, err = env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())

			document, err = env.workflow.SubmitDocument(ctx, supplier, services.SubmitDocumentInput{
				Name:     "Contrato social",
				FileName: "contrato.pdf",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("não permite moderação pelo fornecedor", func() {
			_, err := env.workflow.ModerateDocument(ctx, supplier, document.ID, services.DecisionApprove, "")
			Expect(err).To(MatchError(apperrors.ErrForbidden))
		})

		It("aprova documento e mantém o motivo vazio", func() {
			moderated, err := env.workflow.ModerateDocument(ctx, env.admin, document.ID, services.DecisionApprove, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(moderated.Status).To(Equal(entities.DocumentStatusApproved))
			Expect(moderated.RejectionReason).To(BeNil())
		})

		It("exige motivo não vazio para reprovar, sem tocar o documento", func() {
			_, err := env.workflow.ModerateDocument(ctx, env.admin, document.ID, services.DecisionReject, "   ")
			Expect(err).To(MatchError(apperrors.ErrRejectionReasonRequired))

			all, err := env.views.ListAllDocuments(ctx, env.admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].Status).To(Equal(entities.DocumentStatusPending))
		})

		It("reprova com motivo e o preserva literalmente", func() {
			moderated, err := env.workflow.ModerateDocument(ctx, env.admin, document.ID, services.DecisionReject, "Documento ilegível")
			Expect(err).NotTo(HaveOccurred())
			Expect(moderated.Status).To(Equal(entities.DocumentStatusRejected))
			Expect(moderated.RejectionReason).NotTo(BeNil())
			Expect(*moderated.RejectionReason).To(Equal("Documento ilegível"))
		})

		It("descarta o motivo anterior ao aprovar um documento reprovado", func() {
			_, err := env.workflow.ModerateDocument(ctx, env.admin, document.ID, services.DecisionReject, "Documento ilegível")
			Expect(err).NotTo(HaveOccurred())

			moderated, err := env.workflow.ModerateDocument(ctx, env.admin, document.ID, services.DecisionApprove, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(moderated.Status).To(Equal(entities.DocumentStatusApproved))
			Expect(moderated.RejectionReason).To(BeNil())
		})

		It("retorna documento não encontrado para id desconhecido", func() {
			_, err := env.workflow.ModerateDocument(ctx, env.admin, "nao-existe", services.DecisionApprove, "")
			Expect(err).To(MatchError(apperrors.ErrDocumentNotFound))
		})

		It("rejeita decisão desconhecida", func() {
			_, err := env.workflow.ModerateDocument(ctx, env.admin, document.ID, services.Decision("MAYBE"), "")
			Expect(err).To(MatchError(apperrors.ErrInvalidStatus))
		})
	})

	Describe("SetCompanyStatus", func() {
		var supplier *services.Session

		BeforeEach(func() {
			var err error
			supplier, err = env.workflow.RegisterSupplier(ctx, acmeInput())
			Expect(err).NotTo(HaveOccurred())
		})

		It("não permite moderação de empresa pelo fornecedor", func() {
			_, err := env.workflow.SetCompanyStatus(ctx, supplier, supplier.CompanyID(), entities.CompanyStatusApproved)
			Expect(err).To(MatchError(apperrors.ErrForbidden))
		})

		It("rejeita status desconhecido", func() {
			_, err := env.workflow.SetCompanyStatus(ctx, env.admin, supplier.CompanyID(), entities.CompanyStatus("MAYBE"))
			Expect(err).To(MatchError(apperrors.ErrInvalidStatus))
		})

		It("retorna empresa não encontrada para id desconhecido", func() {
			_, err := env.workflow.SetCompanyStatus(ctx, env.admin, "nao-existe", entities.CompanyStatusApproved)
			Expect(err).To(MatchError(apperrors.ErrCompanyNotFound))
		})

		It("não tem efeito em cascata sobre documentos existentes", func() {
			document, err := env.workflow.SubmitDocument(ctx, supplier, services.SubmitDocumentInput{
				Name:     "Contrato social",
				FileName: "contrato.pdf",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = env.workflow.SetCompanyStatus(ctx, env.admin, supplier.CompanyID(), entities.CompanyStatusRejected)
			Expect(err).NotTo(HaveOccurred())

			all, err := env.views.ListAllDocuments(ctx, env.admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
			Expect(all[0].ID).To(Equal(document.ID))
			Expect(all[0].Status).To(Equal(entities.DocumentStatusPending))
		})
	})
})

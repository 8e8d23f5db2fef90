package services_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docflowhq/docflow-backend/internal/domain/entities"
	apperrors "github.com/docflowhq/docflow-backend/internal/domain/errors"
	"github.com/docflowhq/docflow-backend/internal/infrastructure/i18n"
	"github.com/docflowhq/docflow-backend/internal/services"
)

var _ = Describe("Mensagens de erro", func() {
	var translator *i18n.Service

	BeforeEach(func() {
		var err error
		translator, err = i18n.NewEmbeddedService("pt-BR")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("MessageKeyFor", func() {
		It("resolve a chave da sentinela diretamente", func() {
			Expect(services.MessageKeyFor(apperrors.ErrCompanyPending)).To(Equal("error.company_pending"))
			Expect(services.MessageKeyFor(apperrors.ErrRejectionReasonRequired)).To(Equal("error.rejection_reason_required"))
		})

		It("resolve a chave de erros embrulhados", func() {
			wrapped := fmt.Errorf("login: %w", apperrors.ErrCompanyRejected)
			Expect(services.MessageKeyFor(wrapped)).To(Equal("error.company_rejected"))
		})

		It("resolve a chave de erros de validação agregados", func() {
			err := apperrors.NewValidationError([]apperrors.FieldError{{Field: "Email", Tag: "email"}})
			Expect(services.MessageKeyFor(err)).To(Equal(apperrors.ErrMissingRequiredFields.Error()))
		})

		It("cai na mensagem interna para erros fora da taxonomia", func() {
			Expect(services.MessageKeyFor(errors.New("boom"))).To(Equal("error.internal"))
		})
	})

	Describe("MessageFor", func() {
		It("traduz o gate de cadastro pendente em português", func() {
			msg := services.MessageFor(translator, "pt-BR", apperrors.ErrCompanyPending)
			Expect(msg).To(ContainSubstring("em análise"))
		})

		It("traduz erros desconhecidos com a mensagem genérica", func() {
			msg := services.MessageFor(translator, "pt-BR", errors.New("boom"))
			Expect(msg).NotTo(Equal("error.internal"))
		})
	})

	Describe("DisplayName", func() {
		It("usa o nome do usuário quando disponível", func() {
			user := &entities.User{Name: "Ana Souza"}
			Expect(services.DisplayName(translator, "pt-BR", user)).To(Equal("Ana Souza"))
		})

		It("usa o rótulo de fallback para usuário ausente", func() {
			label := services.DisplayName(translator, "pt-BR", nil)
			Expect(label).NotTo(BeEmpty())
			Expect(label).NotTo(Equal("label.responsible_unknown"))
		})
	})
})

package errors

import "errors"

// Auth errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound    = errors.New("error.user_not_found")
	ErrCompanyPending  = errors.New("error.company_pending")
	ErrCompanyRejected = errors.New("error.company_rejected")
	ErrForbidden       = errors.New("error.forbidden")
)

// Not-found errors
var (
	ErrCompanyNotFound  = errors.New("error.company_not_found")
	ErrDocumentNotFound = errors.New("error.document_not_found")
)

// Validation errors
var (
	ErrEmailAlreadyExists      = errors.New("error.email_already_exists")
	ErrCNPJAlreadyExists       = errors.New("error.cnpj_already_exists")
	ErrInvalidEmail            = errors.New("error.invalid_email")
	ErrInvalidCNPJ             = errors.New("error.invalid_cnpj")
	ErrInvalidStatus           = errors.New("error.invalid_status")
	ErrRejectionReasonRequired = errors.New("error.rejection_reason_required")
	ErrMissingRequiredFields   = errors.New("error.missing_required_fields")
)

// Kind classifica um erro dentro da taxonomia do workflow
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// KindOf retorna a classificação taxonômica de um erro. Erros fora da
// taxonomia são tratados como internos.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrCompanyNotFound),
		errors.Is(err, ErrDocumentNotFound):
		return KindNotFound
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCompanyPending),
		errors.Is(err, ErrCompanyRejected):
		return KindAuth
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrCNPJAlreadyExists),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidCNPJ),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrRejectionReasonRequired),
		errors.Is(err, ErrMissingRequiredFields):
		return KindValidation
	default:
		return KindInternal
	}
}

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Message string
	Fields  []FieldError
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um DomainError de validação com detalhes de campo
func NewValidationError(fields []FieldError) *DomainError {
	return &DomainError{
		Message: "validation failed",
		Fields:  fields,
		Err:     ErrMissingRequiredFields,
	}
}

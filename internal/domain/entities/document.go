package entities

import (
	"strings"
	"time"
)

// DocumentStatus representa o estado de moderação de um documento
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// IsValid verifica se o status é conhecido
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected:
		return true
	default:
		return false
	}
}

// FileType representa o tipo de arquivo aceito para documentos
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// FileTypeFromName deriva o tipo a partir da extensão do nome do arquivo
// (trecho após o último ponto, minúsculas). Extensão ausente ou não
// reconhecida resulta em pdf.
func FileTypeFromName(filename string) FileType {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return FileTypePDF
	}

	switch FileType(strings.ToLower(filename[idx+1:])) {
	case FileTypeJPG:
		return FileTypeJPG
	case FileTypePNG:
		return FileTypePNG
	default:
		return FileTypePDF
	}
}

// Document representa um artefato de conformidade enviado por um
// fornecedor. RejectionReason está presente se e somente se o documento
// foi reprovado.
type Document struct {
	ID              string
	UserID          string
	CompanyID       string
	Name            string
	FileType        FileType
	FileURL         string
	UploadedAt      time.Time
	Status          DocumentStatus
	RejectionReason *string
}

// IsPending verifica se o documento aguarda moderação
func (d *Document) IsPending() bool {
	return d.Status == DocumentStatusPending
}

// IsRejected verifica se o documento foi reprovado
func (d *Document) IsRejected() bool {
	return d.Status == DocumentStatusRejected
}

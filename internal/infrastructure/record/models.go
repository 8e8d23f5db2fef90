package record

import "time"

// Formas serializadas dos registros persistidos. Campos opcionais usam
// ponteiro + omitempty para ficarem ausentes (e não null) quando não
// definidos, preservando o round-trip do layout persistido.

// UserRecord é a forma serializada de um usuário
type UserRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	CompanyID *string `json:"companyId,omitempty"`
}

// CompanyRecord é a forma serializada de uma empresa
type CompanyRecord struct {
	ID           string    `json:"id"`
	CNPJ         string    `json:"cnpj"`
	FantasyName  string    `json:"fantasyName"`
	SocialReason string    `json:"socialReason"`
	ZipCode      string    `json:"zipCode"`
	Address      string    `json:"address"`
	Number       string    `json:"number"`
	Complement   *string   `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Phone        string    `json:"phone"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DocumentRecord é a forma serializada de um documento
type DocumentRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	CompanyID       string    `json:"companyId"`
	Name            string    `json:"name"`
	FileType        string    `json:"fileType"`
	FileURL         string    `json:"fileUrl"`
	UploadedAt      time.Time `json:"uploadedAt"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
}

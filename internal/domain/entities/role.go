package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSupplier Role = "SUPPLIER"
)

// Capability representa uma capacidade concedida a um papel
type Capability string

const (
	// Document capabilities
	CapabilitySubmitDocument   Capability = "documents.submit"
	CapabilityModerateDocument Capability = "documents.moderate"

	// Company capabilities
	CapabilityModerateCompany Capability = "companies.moderate"
	CapabilityListCompanies   Capability = "companies.list"
)

// RoleCapabilities mapeia roles para suas capacidades
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapabilityModerateDocument,
		CapabilityModerateCompany,
		CapabilityListCompanies,
	},
	RoleSupplier: {
		CapabilitySubmitDocument,
	},
}

// GetCapabilities retorna as capacidades de um role
func (r Role) GetCapabilities() []Capability {
	return RoleCapabilities[r]
}

// Can verifica se o role possui uma capacidade
func (r Role) Can(capability Capability) bool {
	for _, c := range RoleCapabilities[r] {
		if c == capability {
			return true
		}
	}
	return false
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSupplier
}

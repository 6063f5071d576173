// Package entity defines the core business entities for the domain layer.
package entity

// FoundationProfile holds the organization's identity used on report and
// payslip headers.
type FoundationProfile struct {
	Name    string
	Address string
}

// Default foundation profile values, used when no profile has been stored yet.
const (
	DefaultFoundationName    = "Yayasan Pendidikan Sejahtera"
	DefaultFoundationAddress = "Jl. Merdeka No. 123, Jakarta Selatan"
)

// DefaultFoundationProfile returns the built-in foundation profile.
func DefaultFoundationProfile() FoundationProfile {
	return FoundationProfile{
		Name:    DefaultFoundationName,
		Address: DefaultFoundationAddress,
	}
}

// DefaultUsers returns the demo accounts seeded on first run.
func DefaultUsers() []*User {
	return []*User{
		NewUser("Budi Santoso", "admin@finance.org", RoleAdmin, "https://api.dicebear.com/7.x/avataaars/svg?seed=Budi"),
		NewUser("Siti Aminah", "editor@finance.org", RoleEditor, "https://api.dicebear.com/7.x/avataaars/svg?seed=Siti"),
		NewUser("Andi Wijaya", "viewer@finance.org", RoleViewer, "https://api.dicebear.com/7.x/avataaars/svg?seed=Andi"),
	}
}

// Package entity contains the core business objects of the project.
package entity

// ProviderType identifies how a sign-in attempt was authenticated.
type ProviderType string

const (
	// ProviderTypeCredentials is the local email/password provider.
	ProviderTypeCredentials ProviderType = "credentials"
	// ProviderTypeGoogle is the external Google identity provider.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

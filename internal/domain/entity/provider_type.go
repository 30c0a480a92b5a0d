// Package entity contains the core business objects of the project.
package entity

// ProviderType identifies an external identity provider.
type ProviderType string

const (
	// ProviderTypeGitHub is GitHub OAuth.
	ProviderTypeGitHub ProviderType = "github"
	// ProviderTypeYandex is Yandex ID OAuth.
	ProviderTypeYandex ProviderType = "yandex"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a supported provider.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeGitHub, ProviderTypeYandex:
		return true
	default:
		return false
	}
}

// DisplayName is the human-facing provider name used in messages.
func (p ProviderType) DisplayName() string {
	switch p {
	case ProviderTypeGitHub:
		return "GitHub"
	case ProviderTypeYandex:
		return "Yandex"
	default:
		return string(p)
	}
}

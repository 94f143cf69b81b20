package auth

// Identity represents user information obtained from the OAuth provider.
type Identity struct {
	Email      string
	Name       string
	AvatarURL  string
	ProviderID string
}

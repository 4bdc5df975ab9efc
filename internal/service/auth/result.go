package auth

import "github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered staff member. DisplayName and AvatarID form the
// profile shown next to contributed terms.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	AvatarID     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail trims and lowercases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain returns the part after the last '@', or "" if there is none.
func EmailDomain(email string) string {
	i := strings.LastIndexByte(email, '@')
	if i < 0 || i == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[i+1:])
}

// DisplayNameFromEmail derives a fallback display name from the local part.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

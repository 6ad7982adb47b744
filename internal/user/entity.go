// AngelaMos | 2026
// entity.go

package user

import (
	"strings"
	"time"
)

// User carries no role column: administrator status is derived from the
// email by the admin policy on every request and is never persisted.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Username     string    `db:"username"`
	AvatarURL    *string   `db:"avatar_url"`
	TokenVersion int       `db:"token_version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// DisplayName falls back to the email local-part when no username was set.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return EmailLocalPart(u.Email)
}

func EmailLocalPart(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}

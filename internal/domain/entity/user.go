// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a registered account.
// PasswordHash always holds the bcrypt-derived value, never the plaintext.
type User struct {
	ID             uuid.UUID   // The unique identifier for the user record.
	Username       string      // The unique login identity, at least five alphanumeric characters.
	Email          string      // The user's contact email address.
	PasswordHash   string      // The bcrypt hash of the user's password.
	Birthday       *time.Time  // Optional date of birth.
	FavoriteMovies []uuid.UUID // The set of movie IDs the user has marked as favorites. No duplicates.
	CreatedAt      time.Time   // Timestamp of when this account was created.
	UpdatedAt      time.Time   // Timestamp of the last modification to this account.
}

// HasFavorite reports whether the given movie is already in the user's favorites set.
func (u *User) HasFavorite(movieID uuid.UUID) bool {
	for _, id := range u.FavoriteMovies {
		if id == movieID {
			return true
		}
	}

	return false
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie represents a single title in the catalog.
type Movie struct {
	ID          uuid.UUID // The unique identifier for the movie record.
	Title       string    // The movie's display title, unique within the catalog.
	Description string    // A synopsis of the movie.
	Genre       Genre     // The genre descriptor embedded with the movie.
	Director    Director  // The director descriptor embedded with the movie.
	ImagePath   string    // URL or path of the movie's poster image.
	Featured    bool      // Whether the movie is currently featured.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this record.
}

// Genre describes a movie genre by name.
type Genre struct {
	Name        string // The genre name, e.g. "Thriller".
	Description string // A short description of the genre.
}

// Director describes the person who directed a movie.
type Director struct {
	Name  string     // The director's full name.
	Bio   string     // A short biography.
	Birth *time.Time // Year of birth, if known.
	Death *time.Time // Year of death, nil while alive.
}

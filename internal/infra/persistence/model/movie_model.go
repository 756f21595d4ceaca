package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieModel mirrors the 'movies' table. Genre and director descriptors are
// embedded as columns rather than separate tables; lookups by genre or
// director name go through the indexed name columns.
type MovieModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title         string     `gorm:"type:varchar(255);unique;not null"`
	Description   string     `gorm:"type:text"`
	GenreName     string     `gorm:"type:varchar(100);index"`
	GenreDesc     string     `gorm:"type:text"`
	DirectorName  string     `gorm:"type:varchar(100);index"`
	DirectorBio   string     `gorm:"type:text"`
	DirectorBirth *time.Time `gorm:"type:date"`
	DirectorDeath *time.Time `gorm:"type:date"`
	ImagePath     string     `gorm:"type:varchar(255)"`
	Featured      bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v4(). Credentials live on the user row; only the bcrypt hash
// is ever stored.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username     string     `gorm:"type:varchar(50);unique;not null"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Birthday     *time.Time `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Favorites []FavoriteMovieModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FavoriteMovieModel mirrors the 'user_favorite_movies' join table. The
// composite primary key enforces set semantics at the store level; inserts
// use ON CONFLICT DO NOTHING so repeated adds stay idempotent.
type FavoriteMovieModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MovieID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteMovieModel) TableName() string {
	return "user_favorite_movies"
}

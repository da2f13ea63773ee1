package model

import (
	"time"

	"github.com/google/uuid"
)

type List struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index" json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"-"`
}

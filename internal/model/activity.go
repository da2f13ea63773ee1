package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only audit entry. WorkspaceID is deliberately not a
// foreign key so the trail survives workspace deletion.
type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspaceId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

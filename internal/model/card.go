package model

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Status string

const (
	StatusTodo Status = "TODO"
	StatusDone Status = "DONE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDone:
		return true
	}
	return false
}

type Card struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Priority    Priority   `gorm:"type:varchar(16);not null" json:"priority"`
	Status      Status     `gorm:"type:varchar(16);not null;default:'TODO'" json:"status"`
	Deadline    *time.Time `json:"deadline"`
	ListID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"listId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	List List `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"-"`
}

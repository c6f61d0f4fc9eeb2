package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine represents an item of the medicine catalog
type Medicine struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Presentation string    `gorm:"type:varchar(100);not null" json:"presentation"`
	Dose         string    `gorm:"type:varchar(50);not null" json:"dose"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}

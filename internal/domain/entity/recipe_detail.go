package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipeDetail represents one medicine line of a prescription.
// A given (prescription, medicine) pair appears at most once.
type RecipeDetail struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Amount         int       `gorm:"not null" json:"amount"`
	Indications    string    `gorm:"type:text;not null" json:"indications"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recipe_details_prescription_medicine,priority:1" json:"prescription_id"`
	MedicineID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recipe_details_prescription_medicine,priority:2" json:"medicine_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Prescription Prescription `gorm:"foreignKey:PrescriptionID" json:"prescription,omitempty"`
	Medicine     Medicine     `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE" json:"medicine,omitempty"`
}

func (RecipeDetail) TableName() string {
	return "recipe_details"
}

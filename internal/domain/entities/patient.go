package entities

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a patient row in the shared users table
type Patient struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string     `json:"name" gorm:"type:varchar(255);not null"`
	Phone          string     `json:"phone,omitempty" gorm:"type:varchar(30)"`
	BirthDate      *time.Time `json:"birth_date,omitempty" gorm:"type:date"`
	Gender         string     `json:"gender,omitempty" gorm:"type:varchar(20)"`
	MedicalHistory string     `json:"medical_history,omitempty" gorm:"type:text"`
	Allergies      string     `json:"allergies,omitempty" gorm:"type:text"`
	BloodType      string     `json:"blood_type,omitempty" gorm:"type:varchar(5)"`
	Role           string     `json:"role" gorm:"type:varchar(20);default:'patient';index"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Patient) TableName() string {
	return "users"
}

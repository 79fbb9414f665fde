package models

import "time"

// Cliente identificado por documento; la baja solo desactiva el registro
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Document string `gorm:"size:20;uniqueIndex;not null" json:"document"`

	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100;not null" json:"last_name"`

	Email     string     `gorm:"size:100" json:"email"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Address   string     `gorm:"size:150" json:"address"`
	BirthDate *time.Time `json:"birth_date"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

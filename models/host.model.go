package models

import "gorm.io/datatypes"

type Host struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"default:''" json:"email"`
	Phone        string         `gorm:"default:''" json:"phone"`
	Description  string         `gorm:"type:text;default:''" json:"description"`
	ProfileImage string         `gorm:"default:''" json:"profile_image"`
	SocialLinks  datatypes.JSON `json:"social_links"`
}

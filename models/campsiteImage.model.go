package models

type CampsiteImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CampsiteID uint   `gorm:"not null;index" json:"campsite_id"`
	ImageURL   string `gorm:"column:image_url;not null" json:"image_url"`
	// At most one image per campsite should be primary; not enforced by schema
	IsPrimary    bool `gorm:"default:false" json:"is_primary"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`
}

package models

// SiteSettings is a single-row table. The Singleton column carries a
// unique index and is always true, so a second row cannot be inserted
// even by racing first-reads.
type SiteSettings struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Singleton     bool   `gorm:"uniqueIndex;not null;default:true" json:"-"`
	SiteTitle     string `gorm:"size:200;not null" json:"site_title"`
	ContactEmail  string `gorm:"size:255;not null" json:"contact_email"`
	ContactNumber string `gorm:"size:255;not null" json:"contact_number"`
	MainColor     string `gorm:"size:7;not null" json:"main_color"`
	StoreTag      string `gorm:"size:255" json:"store_tag"`
}

func (s *SiteSettings) TableName() string {
	return "site_settings"
}

// DefaultSiteSettings is the row created lazily on first read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Singleton:     true,
		SiteTitle:     "My E-commerce Site",
		ContactEmail:  "support@example.com",
		ContactNumber: "1234567890",
		MainColor:     "#FF69B4",
	}
}

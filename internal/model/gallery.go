package model

// Gallery categories.
const (
	GalleryLab        = "lab"
	GalleryEvent      = "event"
	GalleryStudent    = "student"
	GalleryCampusLife = "campus-life"
)

// GalleryCategories lists the accepted gallery categories.
var GalleryCategories = []string{GalleryLab, GalleryEvent, GalleryStudent, GalleryCampusLife}

// GalleryItem is one categorized picture. Table gallery_items.
type GalleryItem struct {
	GalleryItemID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"gallery_item_id"`
	Category      string   `gorm:"type:varchar(20);not null"                      json:"category"`
	Image         MediaRef `gorm:"embedded;embeddedPrefix:image_"                 json:"-"`
	SoftDeleteModel

	Updater *User `gorm:"foreignKey:UpdatedBy;references:UserID" json:"-"`
}

// TableName maps the table.
func (GalleryItem) TableName() string { return "gallery_items" }

package model

import "time"

// NewsArticle is an announcement or event. Table news.
type NewsArticle struct {
	NewsID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"news_id"`
	Title         string    `gorm:"type:varchar(255);not null"                     json:"title"`
	Content       string    `gorm:"type:text;not null"                             json:"content"`
	Location      string    `gorm:"type:varchar(255);not null"                     json:"location"`
	ScheduledDate time.Time `gorm:"type:date;not null"                             json:"scheduled_date"`
	Image         MediaRef  `gorm:"embedded;embeddedPrefix:image_"                 json:"-"`
	Published     bool      `gorm:"not null"                                       json:"published"`
	SoftDeleteModel

	Updater *User `gorm:"foreignKey:UpdatedBy;references:UserID" json:"-"`
}

// TableName maps the table.
func (NewsArticle) TableName() string { return "news" }

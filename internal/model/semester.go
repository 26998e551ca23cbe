package model

// Semester is one term of the curriculum. Table semesters.
// Name is derived from Number whenever Number is written.
type Semester struct {
	SemesterID  string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	Number      int      `gorm:"type:smallint;not null"                         json:"number"`
	Name        string   `gorm:"type:varchar(50);not null"                      json:"name"`
	Description *string  `gorm:"type:varchar(1000)"                             json:"description"`
	Image       MediaRef `gorm:"embedded;embeddedPrefix:image_"                 json:"-"`
	IsActive    bool     `gorm:"not null"                                       json:"is_active"`
	SoftDeleteModel

	Updater *User `gorm:"foreignKey:UpdatedBy;references:UserID" json:"-"`
}

// TableName maps the table.
func (Semester) TableName() string { return "semesters" }

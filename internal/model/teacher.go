package model

// TeacherCategory classifies teachers (contract type or academic role). Table teacher_categories.
type TeacherCategory struct {
	CategoryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	Name       string `gorm:"type:varchar(255);not null"                     json:"name"`
	SoftDeleteModel

	Updater *User `gorm:"foreignKey:UpdatedBy;references:UserID" json:"-"`
}

// TableName maps the table.
func (TeacherCategory) TableName() string { return "teacher_categories" }

// Teacher is a faculty member shown in the public directory. Table teachers.
type Teacher struct {
	TeacherID      string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	Name           string   `gorm:"type:varchar(255);not null"                     json:"name"`
	AcademicDegree string   `gorm:"type:varchar(255);not null"                     json:"academic_degree"`
	Email          string   `gorm:"type:varchar(255);not null"                     json:"email"`
	Phone          string   `gorm:"type:varchar(12);not null"                      json:"phone"`
	CategoryID     *string  `gorm:"type:uuid"                                      json:"category_id"`
	Image          MediaRef `gorm:"embedded;embeddedPrefix:image_"                 json:"-"`
	SoftDeleteModel

	Category *TeacherCategory `gorm:"foreignKey:CategoryID;references:CategoryID" json:"-"`
	Updater  *User            `gorm:"foreignKey:UpdatedBy;references:UserID"      json:"-"`
}

// TableName maps the table.
func (Teacher) TableName() string { return "teachers" }

package model

// Site setting names. One row per name at most.
const (
	SettingTeachersCover      = "teachers-cover"
	SettingAboutCover         = "about-cover"
	SettingProgramCover       = "program-cover"
	SettingHistoryImage       = "history-image"
	SettingCurriculumMapImage = "curriculum-map-image"
	SettingResolutionDocument = "resolution-document"
)

// SettingNames lists every accepted setting name.
var SettingNames = []string{
	SettingTeachersCover,
	SettingAboutCover,
	SettingProgramCover,
	SettingHistoryImage,
	SettingCurriculumMapImage,
	SettingResolutionDocument,
}

// IsDocumentSetting reports whether the setting carries a PDF instead of an image.
func IsDocumentSetting(name string) bool { return name == SettingResolutionDocument }

// SiteSetting is a named static asset of the public site. Table site_settings.
type SiteSetting struct {
	SettingID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"setting_id"`
	Name      string      `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	Image     MediaRef    `gorm:"embedded;embeddedPrefix:image_"                 json:"-"`
	Document  DocumentRef `gorm:"embedded;embeddedPrefix:document_"              json:"-"`
	BaseModel

	Updater *User `gorm:"foreignKey:UpdatedBy;references:UserID" json:"-"`
}

// TableName maps the table.
func (SiteSetting) TableName() string { return "site_settings" }

package model

// Administrator roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a back-office administrator. Table users.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(255);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'editor'"     json:"role"`
	SoftDeleteModel
}

// TableName maps the table.
func (User) TableName() string { return "users" }

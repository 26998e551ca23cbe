package dto

// ── users ──

// UserForm creates an administrator.
type UserForm struct {
	Name     string `form:"name"     json:"name"     validate:"required,max=255"              label:"nombre"`
	Email    string `form:"email"    json:"email"    validate:"required,email,max=255"        label:"correo electrónico"`
	Password string `form:"password" json:"password" validate:"required,min=8,max=72"         label:"contraseña"`
	Role     string `form:"role"     json:"role"     validate:"required,oneof=admin editor"   label:"rol"`
}

// UserResponse administrator without secrets.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

package dto

// ── teacher categories ──

// TeacherCategoryForm create/update a category.
type TeacherCategoryForm struct {
	Name string `form:"name" json:"name" validate:"required,max=255" label:"nombre"`
}

// TeacherCategoryResponse category row.
type TeacherCategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

// ── teachers ──

// TeacherForm create/update a teacher. The image travels as a separate file part.
type TeacherForm struct {
	Name           string `form:"name"            validate:"required,max=255"       label:"nombre"`
	AcademicDegree string `form:"academic_degree" validate:"required,max=255"       label:"grado académico"`
	Email          string `form:"email"           validate:"required,email,max=255" label:"correo electrónico"`
	Phone          string `form:"phone"           validate:"required,min=9,max=12"  label:"teléfono"`
	CategoryID     string `form:"teacher_type_id" validate:"required,uuid"          label:"tipo de docente"`
}

// CategoryRef short category embedded in teacher rows.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeacherResponse teacher row.
type TeacherResponse struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	TeacherType    *CategoryRef `json:"teacher_type"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	AcademicDegree string       `json:"academic_degree"`
	Image          string       `json:"image"`
	UpdatedAt      string       `json:"updated_at"`
	UpdatedBy      string       `json:"updated_by"`
}

// TeacherIndexResponse teacher listing with the data its filters need.
type TeacherIndexResponse struct {
	Teachers     *PageResult[TeacherResponse] `json:"teachers"`
	TeacherTypes []TeacherCategoryResponse    `json:"teacher_types"`
	Filters      ListQuery                    `json:"filters"`
}

package dto

// UpdateUserRequest represents an account profile update
type UpdateUserRequest struct {
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Telephone string   `json:"telephone,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// CreateStudentRequest represents student profile creation for a user account
type CreateStudentRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	StudentCode string `json:"student_code" binding:"required"`
	Level       string `json:"level,omitempty"`
}

// UpdateStudentRequest represents a student profile update
type UpdateStudentRequest struct {
	StudentCode string `json:"student_code,omitempty"`
	Level       string `json:"level,omitempty"`
}

// CreateTeacherRequest represents teacher profile creation for a user account
type CreateTeacherRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	Department string `json:"department,omitempty"`
	Grade      string `json:"grade,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
}

// UpdateTeacherRequest represents a teacher profile update
type UpdateTeacherRequest struct {
	Department string `json:"department,omitempty"`
	Grade      string `json:"grade,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
}

// CreateCompanyRequest represents company profile creation for a user account
type CreateCompanyRequest struct {
	UserID            int64  `json:"user_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Address           string `json:"address,omitempty"`
	Description       string `json:"description,omitempty"`
	Website           string `json:"website,omitempty"`
	Phone             string `json:"phone,omitempty"`
	ProfessionalEmail string `json:"professional_email,omitempty"`
}

// UpdateCompanyRequest represents a company profile update
type UpdateCompanyRequest struct {
	Name              string `json:"name,omitempty"`
	Address           string `json:"address,omitempty"`
	Description       string `json:"description,omitempty"`
	Website           string `json:"website,omitempty"`
	Phone             string `json:"phone,omitempty"`
	ProfessionalEmail string `json:"professional_email,omitempty"`
}

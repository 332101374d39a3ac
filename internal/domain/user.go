package domain

import "time"

// User represents a user account. A user may hold several roles at
// once, for example a TEACHER who is also an ADMIN.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Telephone    string    `json:"telephone"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole checks if the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Student is the student profile attached 1:1 to a user account.
type Student struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	User        *User  `json:"user,omitempty"`
	StudentCode string `json:"student_code"`
	Level       string `json:"level"`
}

// Teacher is the teacher profile attached 1:1 to a user account.
// Teachers validate agreements assigned to them.
type Teacher struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	User       *User  `json:"user,omitempty"`
	Department string `json:"department"`
	Grade      string `json:"grade"`
	Specialty  string `json:"specialty"`
}

// Company is the company profile attached 1:1 to a user account.
type Company struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	User              *User  `json:"user,omitempty"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	Website           string `json:"website"`
	Phone             string `json:"phone"`
	ProfessionalEmail string `json:"professional_email"`
}

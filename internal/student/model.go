package student

import "time"

// Student is a registered portal identity. The internal id is immutable;
// profile fields are mutable through the profile update flow only.
type Student struct {
	ID           int64     `json:"id"`
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Department   string    `json:"department,omitempty"`
	Year         int       `json:"year,omitempty"`
	Semester     int       `json:"semester,omitempty"`
	RollNumber   string    `json:"roll_number,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Address      string    `json:"address,omitempty"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"`
	ParentName   string    `json:"parent_name,omitempty"`
	ParentPhone  string    `json:"parent_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Public strips the student record down to the fields returned by auth
// endpoints.
func (s Student) Public() Student {
	return Student{
		ID:         s.ID,
		StudentID:  s.StudentID,
		Name:       s.Name,
		Email:      s.Email,
		Department: s.Department,
		Year:       s.Year,
		Semester:   s.Semester,
		RollNumber: s.RollNumber,
	}
}

// RegisterInput captures the registration request payload.
type RegisterInput struct {
	StudentID   string `json:"student_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Year        int    `json:"year"`
	Semester    int    `json:"semester"`
	RollNumber  string `json:"roll_number"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	ParentName  string `json:"parent_name"`
	ParentPhone string `json:"parent_phone"`
}

// UpdateProfileInput carries the mutable profile fields. Nil means "keep the
// current value", mirroring a COALESCE update.
type UpdateProfileInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	ParentName  *string `json:"parent_name"`
	ParentPhone *string `json:"parent_phone"`
}

package course

import "time"

// Course is a catalog course record.
type Course struct {
	ID           int64  `json:"id"`
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	Department   string `json:"department,omitempty"`
	Semester     int    `json:"semester,omitempty"`
	Credits      int    `json:"credits"`
	FacultyName  string `json:"faculty_name,omitempty"`
	FacultyEmail string `json:"faculty_email,omitempty"`
	Description  string `json:"description,omitempty"`
}

// EnrolledCourse joins a course with the student's enrollment record.
type EnrolledCourse struct {
	Course
	EnrollmentSemester int    `json:"semester"`
	EnrollmentYear     int    `json:"year"`
	Grade              string `json:"grade,omitempty"`
	Status             string `json:"status"`
}

// Assignment is the course-detail view of an assignment.
type Assignment struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	MaxMarks    int       `json:"max_marks"`
	FilePath    string    `json:"file_path,omitempty"`
}

// AttendanceRecord is one attendance entry for the course.
type AttendanceRecord struct {
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
	Remarks string    `json:"remarks,omitempty"`
}

// Detail is the course-detail payload: the course plus its assignments and
// the student's attendance in it.
type Detail struct {
	Course      Course             `json:"course"`
	Assignments []Assignment       `json:"assignments"`
	Attendance  []AttendanceRecord `json:"attendance"`
}

// TimetableSlot is one scheduled class in the weekly timetable.
type TimetableSlot struct {
	Time    string `json:"time"`
	Course  string `json:"course"`
	Faculty string `json:"faculty"`
	Room    string `json:"room"`
}

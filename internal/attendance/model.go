package attendance

import "time"

// CourseSummary aggregates a student's attendance in one course.
type CourseSummary struct {
	CourseName           string  `json:"course_name"`
	CourseCode           string  `json:"course_code"`
	TotalClasses         int     `json:"total_classes"`
	PresentClasses       int     `json:"present_classes"`
	AbsentClasses        int     `json:"absent_classes"`
	LateClasses          int     `json:"late_classes"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// Record is one attendance entry.
type Record struct {
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	Remarks    string    `json:"remarks,omitempty"`
	CourseName string    `json:"course_name"`
	CourseCode string    `json:"course_code,omitempty"`
}

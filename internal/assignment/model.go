package assignment

import "time"

// View is an assignment joined with the student's own submission, if any.
type View struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	DueDate          time.Time  `json:"due_date"`
	MaxMarks         int        `json:"max_marks"`
	FilePath         string     `json:"file_path,omitempty"`
	CourseName       string     `json:"course_name"`
	CourseCode       string     `json:"course_code"`
	SubmissionStatus string     `json:"submission_status,omitempty"`
	SubmissionDate   *time.Time `json:"submission_date,omitempty"`
	MarksObtained    *int       `json:"marks_obtained,omitempty"`
	Feedback         string     `json:"feedback,omitempty"`
	SubmissionFile   string     `json:"submission_file,omitempty"`
}

// Submission is a stored assignment submission.
type Submission struct {
	ID             int64     `json:"id"`
	SubmissionDate time.Time `json:"submission_date"`
	Status         string    `json:"status"`
}

// Upcoming is an assignment due in the future.
type Upcoming struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	DueDate       time.Time `json:"due_date"`
	CourseName    string    `json:"course_name"`
	CourseCode    string    `json:"course_code"`
	DaysRemaining float64   `json:"days_remaining"`
}

// SubmitInput is the submission request payload.
type SubmitInput struct {
	FilePath string `json:"file_path"`
}

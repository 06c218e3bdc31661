package student

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardCourse is an active enrollment shown on the dashboard.
type DashboardCourse struct {
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	Credits     int    `json:"credits"`
	FacultyName string `json:"faculty_name"`
	Grade       string `json:"grade,omitempty"`
}

// AttendanceOverview summarizes per-course attendance for the dashboard.
type AttendanceOverview struct {
	CourseName           string  `json:"course_name"`
	TotalClasses         int     `json:"total_classes"`
	PresentClasses       int     `json:"present_classes"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// DashboardNotification is a recent notification preview.
type DashboardNotification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UpcomingAssignment is an assignment due in the future.
type UpcomingAssignment struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"due_date"`
	CourseName string    `json:"course_name"`
}

// FeeOverview aggregates the student's fee position.
type FeeOverview struct {
	TotalFees    int     `json:"total_fees"`
	PaidFees     int     `json:"paid_fees"`
	PendingFees  int     `json:"pending_fees"`
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
}

// Dashboard is the aggregate payload for the dashboard endpoint.
type Dashboard struct {
	Student             Student                 `json:"student"`
	Courses             []DashboardCourse       `json:"courses"`
	Attendance          []AttendanceOverview    `json:"attendance"`
	Notifications       []DashboardNotification `json:"notifications"`
	UpcomingAssignments []UpcomingAssignment    `json:"upcomingAssignments"`
	FeeSummary          FeeOverview             `json:"feeSummary"`
}

// SemesterPerformance is the grade-point average for one semester.
type SemesterPerformance struct {
	Semester     int     `json:"semester"`
	Year         int     `json:"year"`
	TotalCourses int     `json:"total_courses"`
	SGPA         float64 `json:"sgpa"`
}

// CourseGrade is a graded enrollment.
type CourseGrade struct {
	CourseName string `json:"course_name"`
	CourseCode string `json:"course_code"`
	Credits    int    `json:"credits"`
	Grade      string `json:"grade"`
	Semester   int    `json:"semester"`
	Year       int    `json:"year"`
}

// Performance is the academic-performance payload.
type Performance struct {
	SemesterPerformance []SemesterPerformance `json:"semesterPerformance"`
	CourseGrades        []CourseGrade         `json:"courseGrades"`
}

// Reports exposes the cross-table aggregate reads backing the dashboard and
// academic-performance endpoints. All queries are scoped by the
// authenticated student id.
type Reports interface {
	Dashboard(ctx context.Context, studentID int64) (Dashboard, error)
	AcademicPerformance(ctx context.Context, studentID int64) (Performance, error)
}

// PostgresReports implements Reports with SQL aggregation.
type PostgresReports struct {
	db *pgxpool.Pool
}

// NewPostgresReports builds the Postgres-backed report reader.
func NewPostgresReports(db *pgxpool.Pool) *PostgresReports {
	return &PostgresReports{db: db}
}

const gradePointCase = `CASE
            WHEN e.grade = 'A+' THEN 10
            WHEN e.grade = 'A' THEN 9
            WHEN e.grade = 'B+' THEN 8
            WHEN e.grade = 'B' THEN 7
            WHEN e.grade = 'C+' THEN 6
            WHEN e.grade = 'C' THEN 5
            WHEN e.grade = 'D' THEN 4
            ELSE 0
        END`

// Dashboard assembles the dashboard aggregate with sequential per-section
// queries, each filtered by the student id.
func (r *PostgresReports) Dashboard(ctx context.Context, studentID int64) (Dashboard, error) {
	var d Dashboard

	courseRows, err := r.db.Query(ctx, `SELECT c.course_code, c.course_name, COALESCE(c.credits, 0),
            COALESCE(c.faculty_name, ''), COALESCE(e.grade, '')
        FROM enrollments e
        JOIN courses c ON e.course_id = c.id
        WHERE e.student_id = $1 AND e.status = 'active'`, studentID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard courses: %w", err)
	}
	defer courseRows.Close()
	for courseRows.Next() {
		var c DashboardCourse
		if err := courseRows.Scan(&c.CourseCode, &c.CourseName, &c.Credits, &c.FacultyName, &c.Grade); err != nil {
			return Dashboard{}, fmt.Errorf("dashboard courses: %w", err)
		}
		d.Courses = append(d.Courses, c)
	}
	if err := courseRows.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("dashboard courses: %w", err)
	}

	attRows, err := r.db.Query(ctx, `SELECT c.course_name,
            COUNT(*),
            COUNT(*) FILTER (WHERE a.status = 'present'),
            ROUND(COUNT(*) FILTER (WHERE a.status = 'present') * 100.0 / COUNT(*), 2)
        FROM attendance a
        JOIN courses c ON a.course_id = c.id
        WHERE a.student_id = $1
        GROUP BY c.course_name`, studentID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard attendance: %w", err)
	}
	defer attRows.Close()
	for attRows.Next() {
		var a AttendanceOverview
		if err := attRows.Scan(&a.CourseName, &a.TotalClasses, &a.PresentClasses, &a.AttendancePercentage); err != nil {
			return Dashboard{}, fmt.Errorf("dashboard attendance: %w", err)
		}
		d.Attendance = append(d.Attendance, a)
	}
	if err := attRows.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("dashboard attendance: %w", err)
	}

	noteRows, err := r.db.Query(ctx, `SELECT id, title, COALESCE(message, ''), COALESCE(type, ''), is_read, created_at
        FROM notifications WHERE student_id = $1
        ORDER BY created_at DESC LIMIT 5`, studentID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard notifications: %w", err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var n DashboardNotification
		if err := noteRows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return Dashboard{}, fmt.Errorf("dashboard notifications: %w", err)
		}
		d.Notifications = append(d.Notifications, n)
	}
	if err := noteRows.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("dashboard notifications: %w", err)
	}

	assignRows, err := r.db.Query(ctx, `SELECT a.id, a.title, a.due_date, c.course_name
        FROM assignments a
        JOIN courses c ON a.course_id = c.id
        JOIN enrollments e ON c.id = e.course_id
        WHERE e.student_id = $1 AND a.due_date > NOW()
        ORDER BY a.due_date ASC LIMIT 5`, studentID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard assignments: %w", err)
	}
	defer assignRows.Close()
	for assignRows.Next() {
		var a UpcomingAssignment
		if err := assignRows.Scan(&a.ID, &a.Title, &a.DueDate, &a.CourseName); err != nil {
			return Dashboard{}, fmt.Errorf("dashboard assignments: %w", err)
		}
		d.UpcomingAssignments = append(d.UpcomingAssignments, a)
	}
	if err := assignRows.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("dashboard assignments: %w", err)
	}

	err = r.db.QueryRow(ctx, `SELECT COUNT(*),
            COUNT(*) FILTER (WHERE status = 'paid'),
            COUNT(*) FILTER (WHERE status = 'pending'),
            COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
            COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
        FROM fees WHERE student_id = $1`, studentID).
		Scan(&d.FeeSummary.TotalFees, &d.FeeSummary.PaidFees, &d.FeeSummary.PendingFees,
			&d.FeeSummary.TotalPaid, &d.FeeSummary.TotalPending)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard fees: %w", err)
	}

	return d, nil
}

// AcademicPerformance returns semester-wise SGPA and graded enrollments.
func (r *PostgresReports) AcademicPerformance(ctx context.Context, studentID int64) (Performance, error) {
	var p Performance

	semRows, err := r.db.Query(ctx, `SELECT e.semester, e.year, COUNT(*),
            ROUND(AVG(`+gradePointCase+`), 2)
        FROM enrollments e
        WHERE e.student_id = $1 AND e.grade IS NOT NULL
        GROUP BY e.semester, e.year
        ORDER BY e.year, e.semester`, studentID)
	if err != nil {
		return Performance{}, fmt.Errorf("semester performance: %w", err)
	}
	defer semRows.Close()
	for semRows.Next() {
		var sp SemesterPerformance
		if err := semRows.Scan(&sp.Semester, &sp.Year, &sp.TotalCourses, &sp.SGPA); err != nil {
			return Performance{}, fmt.Errorf("semester performance: %w", err)
		}
		p.SemesterPerformance = append(p.SemesterPerformance, sp)
	}
	if err := semRows.Err(); err != nil {
		return Performance{}, fmt.Errorf("semester performance: %w", err)
	}

	gradeRows, err := r.db.Query(ctx, `SELECT c.course_name, c.course_code, COALESCE(c.credits, 0),
            e.grade, e.semester, e.year
        FROM enrollments e
        JOIN courses c ON e.course_id = c.id
        WHERE e.student_id = $1 AND e.grade IS NOT NULL
        ORDER BY e.year DESC, e.semester DESC`, studentID)
	if err != nil {
		return Performance{}, fmt.Errorf("course grades: %w", err)
	}
	defer gradeRows.Close()
	for gradeRows.Next() {
		var g CourseGrade
		if err := gradeRows.Scan(&g.CourseName, &g.CourseCode, &g.Credits, &g.Grade, &g.Semester, &g.Year); err != nil {
			return Performance{}, fmt.Errorf("course grades: %w", err)
		}
		p.CourseGrades = append(p.CourseGrades, g)
	}
	if err := gradeRows.Err(); err != nil {
		return Performance{}, fmt.Errorf("course grades: %w", err)
	}

	return p, nil
}

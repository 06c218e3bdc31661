package fee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Repository persists fees scoped by owning student.
type Repository interface {
	ListForStudent(ctx context.Context, studentID int64) ([]Fee, error)
	FindForStudent(ctx context.Context, studentID, feeID int64) (Fee, error)
	Summary(ctx context.Context, studentID int64) (Summary, error)
	MarkPaid(ctx context.Context, studentID, feeID int64, method, transactionID string) (Fee, error)
	PaymentHistory(ctx context.Context, studentID int64) ([]Payment, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed fee repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const feeColumns = `id, student_id, fee_type, amount, due_date, paid_date, status,
        COALESCE(payment_method, ''), COALESCE(transaction_id, ''), created_at`

// ListForStudent returns the student's fees ordered by due date.
func (r *PostgresRepository) ListForStudent(ctx context.Context, studentID int64) ([]Fee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+feeColumns+` FROM fees
        WHERE student_id = $1 ORDER BY due_date ASC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	defer rows.Close()

	var fees []Fee
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// FindForStudent fetches one fee filtered by owner. A fee owned by someone
// else looks exactly like a missing one.
func (r *PostgresRepository) FindForStudent(ctx context.Context, studentID, feeID int64) (Fee, error) {
	row := r.db.QueryRow(ctx, `SELECT `+feeColumns+` FROM fees
        WHERE id = $1 AND student_id = $2`, feeID, studentID)
	f, err := scanFee(row)
	if err != nil {
		if apperr.IsNoRows(err) {
			return Fee{}, apperr.NotFound("fee not found")
		}
		return Fee{}, err
	}
	return f, nil
}

// Summary aggregates the student's fees by status.
func (r *PostgresRepository) Summary(ctx context.Context, studentID int64) (Summary, error) {
	var s Summary
	err := r.db.QueryRow(ctx, `SELECT COUNT(*),
            COUNT(*) FILTER (WHERE status = 'paid'),
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'overdue'),
            COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
            COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
            COALESCE(SUM(amount) FILTER (WHERE status = 'overdue'), 0),
            COALESCE(SUM(amount), 0)
        FROM fees WHERE student_id = $1`, studentID).
		Scan(&s.TotalFees, &s.PaidFees, &s.PendingFees, &s.OverdueFees,
			&s.TotalPaid, &s.TotalPending, &s.TotalOverdue, &s.TotalAmount)
	if err != nil {
		return Summary{}, fmt.Errorf("fee summary: %w", err)
	}
	return s, nil
}

// MarkPaid settles a fee with a single conditional update. The status guard
// in the WHERE clause makes a concurrent double payment a no-op that
// surfaces as a conflict rather than a second settlement.
func (r *PostgresRepository) MarkPaid(ctx context.Context, studentID, feeID int64, method, transactionID string) (Fee, error) {
	row := r.db.QueryRow(ctx, `UPDATE fees
        SET status = 'paid', paid_date = NOW(),
            payment_method = NULLIF($1, ''), transaction_id = NULLIF($2, '')
        WHERE id = $3 AND student_id = $4 AND status <> 'paid'
        RETURNING `+feeColumns, method, transactionID, feeID, studentID)

	f, err := scanFee(row)
	if err == nil {
		return f, nil
	}
	if !apperr.IsNoRows(err) {
		return Fee{}, err
	}

	// No row updated: either the fee is not the student's or it is
	// already settled.
	existing, findErr := r.FindForStudent(ctx, studentID, feeID)
	if findErr != nil {
		return Fee{}, findErr
	}
	if existing.Status == statusPaid {
		return Fee{}, apperr.Conflict("fee already paid")
	}
	return Fee{}, fmt.Errorf("mark fee paid: %w", err)
}

// PaymentHistory returns settled fees, most recent first.
func (r *PostgresRepository) PaymentHistory(ctx context.Context, studentID int64) ([]Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, fee_type, amount, paid_date,
            COALESCE(payment_method, ''), COALESCE(transaction_id, '')
        FROM fees WHERE student_id = $1 AND status = 'paid'
        ORDER BY paid_date DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("payment history: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.FeeType, &p.Amount, &p.PaidDate, &p.PaymentMethod, &p.TransactionID); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFee(row rowScanner) (Fee, error) {
	var f Fee
	err := row.Scan(&f.ID, &f.StudentID, &f.FeeType, &f.Amount, &f.DueDate, &f.PaidDate,
		&f.Status, &f.PaymentMethod, &f.TransactionID, &f.CreatedAt)
	if err != nil {
		return Fee{}, err
	}
	return f, nil
}

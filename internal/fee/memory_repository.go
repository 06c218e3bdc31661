package fee

import (
	"context"
	"sync"
	"time"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// MemoryRepository is an in-memory fee store for testing.
type MemoryRepository struct {
	mu   sync.Mutex
	fees map[int64]Fee
}

// NewMemoryRepository builds an empty in-memory fee store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{fees: make(map[int64]Fee)}
}

// Seed stores a fee record.
func (r *MemoryRepository) Seed(f Fee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.Status == "" {
		f.Status = "pending"
	}
	r.fees[f.ID] = f
}

func (r *MemoryRepository) ListForStudent(_ context.Context, studentID int64) ([]Fee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var fees []Fee
	for _, f := range r.fees {
		if f.StudentID == studentID {
			fees = append(fees, f)
		}
	}
	return fees, nil
}

func (r *MemoryRepository) FindForStudent(_ context.Context, studentID, feeID int64) (Fee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(studentID, feeID)
}

func (r *MemoryRepository) findLocked(studentID, feeID int64) (Fee, error) {
	f, ok := r.fees[feeID]
	if !ok || f.StudentID != studentID {
		return Fee{}, apperr.NotFound("fee not found")
	}
	return f, nil
}

func (r *MemoryRepository) Summary(_ context.Context, studentID int64) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s Summary
	for _, f := range r.fees {
		if f.StudentID != studentID {
			continue
		}
		s.TotalFees++
		s.TotalAmount += f.Amount
		switch f.Status {
		case "paid":
			s.PaidFees++
			s.TotalPaid += f.Amount
		case "pending":
			s.PendingFees++
			s.TotalPending += f.Amount
		case "overdue":
			s.OverdueFees++
			s.TotalOverdue += f.Amount
		}
	}
	return s, nil
}

func (r *MemoryRepository) MarkPaid(_ context.Context, studentID, feeID int64, method, transactionID string) (Fee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := r.findLocked(studentID, feeID)
	if err != nil {
		return Fee{}, err
	}
	if f.Status == statusPaid {
		return Fee{}, apperr.Conflict("fee already paid")
	}
	now := time.Now().UTC()
	f.Status = statusPaid
	f.PaidDate = &now
	f.PaymentMethod = method
	f.TransactionID = transactionID
	r.fees[feeID] = f
	return f, nil
}

func (r *MemoryRepository) PaymentHistory(_ context.Context, studentID int64) ([]Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var payments []Payment
	for _, f := range r.fees {
		if f.StudentID == studentID && f.Status == statusPaid {
			payments = append(payments, Payment{
				ID: f.ID, FeeType: f.FeeType, Amount: f.Amount,
				PaidDate: f.PaidDate, PaymentMethod: f.PaymentMethod, TransactionID: f.TransactionID,
			})
		}
	}
	return payments, nil
}

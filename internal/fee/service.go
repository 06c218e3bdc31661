package fee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Notifier records a notification for a student after a state change.
type Notifier interface {
	Notify(ctx context.Context, studentID int64, title, message, kind string) error
}

// Service exposes fee reads and the payment flow.
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates a fee service. notifier may be nil.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// List returns the student's fees.
func (s *Service) List(ctx context.Context, studentID int64) ([]Fee, error) {
	return s.repo.ListForStudent(ctx, studentID)
}

// Get returns one fee owned by the student.
func (s *Service) Get(ctx context.Context, studentID, feeID int64) (Fee, error) {
	return s.repo.FindForStudent(ctx, studentID, feeID)
}

// Summary aggregates the student's fee position.
func (s *Service) Summary(ctx context.Context, studentID int64) (Summary, error) {
	return s.repo.Summary(ctx, studentID)
}

// Pay settles a fee. A missing transaction id gets a generated one. Paying
// an already-settled fee fails with a conflict; the fee stays paid exactly
// once.
func (s *Service) Pay(ctx context.Context, studentID, feeID int64, input PayInput) (Fee, error) {
	transactionID := input.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	paid, err := s.repo.MarkPaid(ctx, studentID, feeID, input.PaymentMethod, transactionID)
	if err != nil {
		return Fee{}, err
	}

	if s.notifier != nil {
		// Best effort; the payment stands even if the notification write fails.
		_ = s.notifier.Notify(ctx, studentID, "Payment received",
			fmt.Sprintf("Your %s payment of %.2f was received", paid.FeeType, paid.Amount), "fee")
	}

	return paid, nil
}

// PaymentHistory returns settled fees, most recent first.
func (s *Service) PaymentHistory(ctx context.Context, studentID int64) ([]Payment, error) {
	return s.repo.PaymentHistory(ctx, studentID)
}

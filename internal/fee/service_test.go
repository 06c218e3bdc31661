package fee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

type recordingNotifier struct {
	titles []string
}

func (n *recordingNotifier) Notify(_ context.Context, _ int64, title, _, _ string) error {
	n.titles = append(n.titles, title)
	return nil
}

func TestPayMarksFeePaid(t *testing.T) {
	repo := NewMemoryRepository()
	due := time.Now().Add(72 * time.Hour)
	repo.Seed(Fee{ID: 1, StudentID: 7, FeeType: "tuition", Amount: 1500, DueDate: &due})

	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)

	paid, err := svc.Pay(context.Background(), 7, 1, PayInput{PaymentMethod: "card"})
	require.NoError(t, err)

	assert.Equal(t, "paid", paid.Status)
	assert.NotEmpty(t, paid.TransactionID)
	require.NotNil(t, paid.PaidDate)
	assert.Len(t, notifier.titles, 1)
}

func TestPayTwiceConflicts(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(Fee{ID: 1, StudentID: 7, FeeType: "hostel", Amount: 800})
	svc := NewService(repo, nil)

	_, err := svc.Pay(context.Background(), 7, 1, PayInput{PaymentMethod: "card"})
	require.NoError(t, err)

	_, err = svc.Pay(context.Background(), 7, 1, PayInput{PaymentMethod: "card"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.EqualError(t, err, "fee already paid")
}

func TestPayOtherStudentsFeeNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(Fee{ID: 1, StudentID: 7, FeeType: "exam", Amount: 120})
	svc := NewService(repo, nil)

	_, err := svc.Pay(context.Background(), 9, 1, PayInput{PaymentMethod: "card"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPayKeepsProvidedTransactionID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(Fee{ID: 1, StudentID: 7, FeeType: "library", Amount: 40})
	svc := NewService(repo, nil)

	paid, err := svc.Pay(context.Background(), 7, 1, PayInput{PaymentMethod: "upi", TransactionID: "txn-42"})
	require.NoError(t, err)
	assert.Equal(t, "txn-42", paid.TransactionID)
}

func TestPaymentHistoryListsOnlyPaidFees(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(Fee{ID: 1, StudentID: 7, FeeType: "tuition", Amount: 1500})
	repo.Seed(Fee{ID: 2, StudentID: 7, FeeType: "hostel", Amount: 800})
	svc := NewService(repo, nil)

	_, err := svc.Pay(context.Background(), 7, 2, PayInput{PaymentMethod: "card"})
	require.NoError(t, err)

	history, err := svc.PaymentHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(2), history[0].ID)
}

package fee

import "time"

// Fee is a billed charge against a student.
type Fee struct {
	ID            int64      `json:"id"`
	StudentID     int64      `json:"-"`
	FeeType       string     `json:"fee_type"`
	Amount        float64    `json:"amount"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Summary aggregates the student's fee position by status.
type Summary struct {
	TotalFees    int     `json:"total_fees"`
	PaidFees     int     `json:"paid_fees"`
	PendingFees  int     `json:"pending_fees"`
	OverdueFees  int     `json:"overdue_fees"`
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
	TotalOverdue float64 `json:"total_overdue"`
	TotalAmount  float64 `json:"total_amount"`
}

// Payment is a settled fee shown in payment history.
type Payment struct {
	ID            int64      `json:"id"`
	FeeType       string     `json:"fee_type"`
	Amount        float64    `json:"amount"`
	PaidDate      *time.Time `json:"paid_date"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
}

// PayInput is the payment request payload.
type PayInput struct {
	PaymentMethod string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
}

const statusPaid = "paid"

package model

import "github.com/samber/lo"

type DocStatus string
type PaymentStatus string

const (
	DocStatusDraft     DocStatus = "draft"
	DocStatusSubmitted DocStatus = "submitted"
	DocStatusCancelled DocStatus = "cancelled"

	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing" // A payment was made but has not cleared yet.
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentStatuses lists every payment status, for validation.
var PaymentStatuses = []interface{}{
	PaymentStatusPending,
	PaymentStatusProcessing,
	PaymentStatusSuccess,
	PaymentStatusFailed,
}

// Outward is a goods dispatch. When it references a booking its gross weight counts against the
// booking's expected quantity until it is cancelled.
type Outward struct {
	ID        string    `json:"id"`
	Version   int64     `json:"version"`
	Firm      string    `json:"firm"`
	Booking   string    `json:"booking"` // Booking (Sauda) ID. Optional.
	DocStatus DocStatus `json:"doc_status"`

	Customer  string `json:"customer"`
	Broker    string `json:"broker"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`
	Vehicle   string `json:"vehicle"`

	OutwardDate    Date          `json:"outward_date"`
	PaymentDueDate *Date         `json:"payment_due_date,omitempty"`
	NetTotal       Decimal       `json:"net_total"`
	AmountPaid     Decimal       `json:"total_amount_paid"`
	PaymentStatus  PaymentStatus `json:"payment_status"`

	Items []OutwardItem `json:"items"`

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

type OutwardItem struct {
	ID          string  `json:"id"`
	Bags        int64   `json:"bags"`
	GrossWeight Decimal `json:"gross_weight"` // Kilograms.
	Amount      Decimal `json:"amount"`
}

// GrossWeight is the sum of the gross weight of all items.
func (o Outward) GrossWeight() Decimal {
	return SumDecimals(lo.Map(o.Items, func(item OutwardItem, _ int) Decimal { return item.GrossWeight })...)
}

func (o Outward) Bags() int64 {
	return lo.SumBy(o.Items, func(item OutwardItem) int64 { return item.Bags })
}

// ItemsAmount is the sum of the amount of all items, before taxes and deductions.
func (o Outward) ItemsAmount() Decimal {
	return SumDecimals(lo.Map(o.Items, func(item OutwardItem, _ int) Decimal { return item.Amount })...)
}

// DerivePaymentStatus is the payment status of a document whose payments are not tracked by hand:
// pending while anything is outstanding, success afterwards.
func DerivePaymentStatus(netTotal, amountPaid Decimal) PaymentStatus {
	if netTotal.Sub(amountPaid).GreaterThan(Decimal{}) {
		return PaymentStatusPending
	}
	return PaymentStatusSuccess
}

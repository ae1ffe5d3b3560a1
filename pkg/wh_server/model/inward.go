package model

import "github.com/samber/lo"

// Inward is a purchase: goods bought from a supplier (Customer) and received into a warehouse.
type Inward struct {
	ID      string `json:"id"` // Eg: IN-0001-2025-0001
	Version int64  `json:"version"`
	Firm    string `json:"firm"`
	Booking string `json:"booking"` // Booking (Sauda) ID. Optional.

	Customer  string `json:"customer"`
	Broker    string `json:"broker"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`
	Vehicle   string `json:"vehicle"`

	InwardDate     Date  `json:"inward_date"`
	PaymentDueDate *Date `json:"payment_due_date,omitempty"`

	Items []InwardItem `json:"items"`

	SubTotal    Decimal `json:"sub_total"` // Sum of the item amounts.
	CGSTPercent Decimal `json:"cgst_percent"`
	CGSTAmount  Decimal `json:"cgst_amount"`
	SGSTPercent Decimal `json:"sgst_percent"`
	SGSTAmount  Decimal `json:"sgst_amount"`
	IGSTPercent Decimal `json:"igst_percent"`
	IGSTAmount  Decimal `json:"igst_amount"`
	NetTotal    Decimal `json:"net_total"`

	Payments      []InwardPayment `json:"payments"`
	AmountPaid    Decimal         `json:"total_amount_paid"`
	PaymentStatus PaymentStatus   `json:"payment_status"`

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

type InwardItem struct {
	ID            string  `json:"id"`
	Bags          int64   `json:"bags"`
	ArrivalWeight Decimal `json:"arrival_weight"` // Kilograms.
	Amount        Decimal `json:"amount"`
}

// InwardPayment is one payment made to the supplier of an inward.
type InwardPayment struct {
	ID          string  `json:"id"`
	PaymentDate Date    `json:"payment_date"`
	Amount      Decimal `json:"amount"`
	Note        string  `json:"payment_note"`
	CreatedAt   int64   `json:"created_at"`
	CreatedBy   string  `json:"created_by"`
}

func (i Inward) ArrivalWeight() Decimal {
	return SumDecimals(lo.Map(i.Items, func(item InwardItem, _ int) Decimal { return item.ArrivalWeight })...)
}

func (i Inward) Bags() int64 {
	return lo.SumBy(i.Items, func(item InwardItem) int64 { return item.Bags })
}

// LatestPaymentNote is the note of the last recorded payment, or empty.
func (i Inward) LatestPaymentNote() string {
	if len(i.Payments) == 0 {
		return ""
	}
	return i.Payments[len(i.Payments)-1].Note
}

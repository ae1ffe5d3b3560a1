// Package report builds the read-only operational reports and the accounting exports.
//
// Dates are resolved against the request time ts, in UTC, so a report asked for "today" is
// reproducible in tests.
package report

import (
	"context"
	"fmt"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
)

type Urgency string

const (
	UrgencyOverdue  Urgency = "Overdue"
	UrgencyDueToday Urgency = "Due Today"
	UrgencyUpcoming Urgency = "Upcoming"
)

type Reporter interface {
	PendingBookings(ctx context.Context, ts int64, filter PendingBookingsFilter) ([]PendingBooking, error)
	PaymentPendingOutwards(ctx context.Context, ts int64, filter PaymentPendingFilter) ([]PaymentPending, error)
	PaymentPendingInwards(ctx context.Context, ts int64, filter PaymentPendingFilter) ([]PaymentPendingInward, error)
	StockByWarehouse(ctx context.Context, ts int64, filter StockFilter) ([]WarehouseStock, error)
	StockByProduct(ctx context.Context, ts int64, filter StockFilter) ([]ProductStock, error)
	StorageStockByWarehouse(ctx context.Context, filter StorageStockFilter) ([]StorageStock, error)
	TallyInwards(ctx context.Context, ts int64, filter TallyFilter) ([]TallyInward, error)
	TallyOutwards(ctx context.Context, ts int64, filter TallyFilter) ([]TallyOutward, error)
}

type PendingBookingsFilter struct {
	Customer         string              `json:"customer"`
	Broker           string              `json:"broker"`
	Product          string              `json:"product"`
	Warehouse        string              `json:"warehouse"`
	Status           model.BookingStatus `json:"status"`
	DeliveryDateFrom *model.Date         `json:"delivery_date_from"`
	DeliveryDateTo   *model.Date         `json:"delivery_date_to"`
	PaymentDateFrom  *model.Date         `json:"payment_date_from"`
	PaymentDateTo    *model.Date         `json:"payment_date_to"`

	// Without a delivery date range only bookings due today are listed, unless ShowAll is set.
	ShowAll bool `json:"show_all"`
}

type PendingBooking struct {
	BookingID        string              `json:"booking_id"`
	Customer         string              `json:"customer"`
	Broker           string              `json:"broker"`
	Product          string              `json:"product"`
	Warehouse        string              `json:"warehouse"`
	BookingDate      model.Date          `json:"booking_date"`
	ExpectedQuantity model.Decimal       `json:"expected_quantity"`
	PendingQuantity  model.Decimal       `json:"pending_quantity"`
	DeliveryEndDate  *model.Date         `json:"delivery_end_date,omitempty"`
	PaymentEndDate   *model.Date         `json:"payment_end_date,omitempty"`
	DaysOverdue      int                 `json:"days_overdue"`
	Urgency          Urgency             `json:"urgency"`
	TotalAmount      model.Decimal       `json:"total_amount"`
	Status           model.BookingStatus `json:"status"`
}

type PaymentPendingFilter struct {
	Customer       string      `json:"customer"`
	Broker         string      `json:"broker"`
	Product        string      `json:"product"`
	Warehouse      string      `json:"warehouse"`
	PaymentDueFrom *model.Date `json:"payment_due_from"`
	PaymentDueTo   *model.Date `json:"payment_due_to"`

	// PaymentStatus lists only documents in that status. Empty lists the unsettled ones: pending
	// and processing outwards, pending inwards.
	PaymentStatus model.PaymentStatus `json:"payment_status"`

	// Without a payment due range only documents due today are listed, unless ShowAll is set.
	ShowAll bool `json:"show_all"`
}

type PaymentPending struct {
	OutwardID      string              `json:"outward_id"`
	BookingID      string              `json:"booking_id"`
	Customer       string              `json:"customer"`
	Broker         string              `json:"broker"`
	Product        string              `json:"product"`
	Warehouse      string              `json:"warehouse"`
	OutwardDate    model.Date          `json:"outward_date"`
	NetTotal       model.Decimal       `json:"net_total"`
	AmountPaid     model.Decimal       `json:"total_amount_paid"`
	Outstanding    model.Decimal       `json:"outstanding_amount"`
	PaymentDueDate *model.Date         `json:"payment_due_date,omitempty"`
	DaysStatus     string              `json:"days_status"`
	Urgency        Urgency             `json:"urgency,omitempty"`
	PaymentStatus  model.PaymentStatus `json:"payment_status"`
}

type PaymentPendingInward struct {
	InwardID          string              `json:"inward_id"`
	BookingID         string              `json:"booking_id"`
	Supplier          string              `json:"supplier"`
	Broker            string              `json:"broker"`
	Product           string              `json:"product"`
	Warehouse         string              `json:"warehouse"`
	InwardDate        model.Date          `json:"inward_date"`
	NetTotal          model.Decimal       `json:"net_total"`
	AmountPaid        model.Decimal       `json:"total_amount_paid"`
	Outstanding       model.Decimal       `json:"outstanding_amount"`
	PaymentDueDate    *model.Date         `json:"payment_due_date,omitempty"`
	DaysStatus        string              `json:"days_status"`
	Urgency           Urgency             `json:"urgency,omitempty"`
	PaymentStatus     model.PaymentStatus `json:"payment_status"`
	LatestPaymentNote string              `json:"latest_payment_note"`
}

type _Reporter struct {
	storage storage.ReportStorage
}

func NewReporter(s storage.ReportStorage) Reporter {
	return &_Reporter{storage: s}
}

func validateDateRange(from, to *model.Date) error {
	if from == nil || to == nil || !from.GetTime().After(to.GetTime()) {
		return nil
	}
	return fmt.Errorf("date range starts after it ends%w", model.ErrInvalidParameter)
}

func ValidatePendingBookingsFilter(filter PendingBookingsFilter) error {
	err := validation.ValidateStruct(&filter,
		validation.Field(&filter.Status, validation.In(
			model.BookingStatusPending,
			model.BookingStatusCompleted,
			model.BookingStatusCancelled,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	if err := validateDateRange(filter.DeliveryDateFrom, filter.DeliveryDateTo); err != nil {
		return err
	}
	return validateDateRange(filter.PaymentDateFrom, filter.PaymentDateTo)
}

func (r *_Reporter) PendingBookings(ctx context.Context, ts int64, filter PendingBookingsFilter) ([]PendingBooking, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.PendingBookings")
	defer span.End()

	if err := ValidatePendingBookingsFilter(filter); err != nil {
		return nil, err
	}

	today := model.NewDate(time.Unix(ts, 0))
	query := storage.PendingBookingsQuery{
		Customer:         filter.Customer,
		Broker:           filter.Broker,
		Product:          filter.Product,
		Warehouse:        filter.Warehouse,
		Status:           filter.Status,
		DeliveryDateFrom: filter.DeliveryDateFrom,
		DeliveryDateTo:   filter.DeliveryDateTo,
		PaymentDateFrom:  filter.PaymentDateFrom,
		PaymentDateTo:    filter.PaymentDateTo,
	}
	if filter.DeliveryDateFrom == nil && filter.DeliveryDateTo == nil && !filter.ShowAll {
		query.DeliveryDateOn = &today
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := r.storage.QueryPendingBookings(ctx, tx, query)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return lo.Map(rows, func(row storage.PendingBookingRow, _ int) PendingBooking {
		days := daysSince(today, row.DeliveryEndDate)
		return PendingBooking{
			BookingID:        row.BookingID,
			Customer:         row.Customer,
			Broker:           row.Broker,
			Product:          row.Product,
			Warehouse:        row.Warehouse,
			BookingDate:      row.BookingDate,
			ExpectedQuantity: row.ExpectedQuantity,
			PendingQuantity:  row.PendingQuantity,
			DeliveryEndDate:  row.DeliveryEndDate,
			PaymentEndDate:   row.PaymentEndDate,
			DaysOverdue:      max(days, 0),
			Urgency:          urgencyOf(days),
			TotalAmount:      row.TotalAmount,
			Status:           row.Status,
		}
	}), nil
}

func ValidatePaymentPendingFilter(filter PaymentPendingFilter) error {
	err := validation.ValidateStruct(&filter,
		validation.Field(&filter.PaymentStatus, validation.In(model.PaymentStatuses...)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return validateDateRange(filter.PaymentDueFrom, filter.PaymentDueTo)
}

// paymentPendingQuery turns filter into its storage form. defaults are the statuses listed when
// the filter names none.
func paymentPendingQuery(today model.Date, filter PaymentPendingFilter, defaults ...model.PaymentStatus) storage.PaymentPendingQuery {
	query := storage.PaymentPendingQuery{
		Customer:       filter.Customer,
		Broker:         filter.Broker,
		Product:        filter.Product,
		Warehouse:      filter.Warehouse,
		Statuses:       defaults,
		PaymentDueFrom: filter.PaymentDueFrom,
		PaymentDueTo:   filter.PaymentDueTo,
	}
	if filter.PaymentStatus != "" {
		query.Statuses = []model.PaymentStatus{filter.PaymentStatus}
	}
	if filter.PaymentDueFrom == nil && filter.PaymentDueTo == nil && !filter.ShowAll {
		query.PaymentDueOn = &today
	}
	return query
}

// dueStatus fills the days status and urgency of a document due on dueDate.
func dueStatus(today model.Date, dueDate *model.Date) (string, Urgency) {
	if dueDate == nil {
		return "", ""
	}
	days := daysSince(today, dueDate)
	return daysStatus(days), urgencyOf(days)
}

func (r *_Reporter) PaymentPendingOutwards(ctx context.Context, ts int64, filter PaymentPendingFilter) ([]PaymentPending, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.PaymentPendingOutwards")
	defer span.End()

	if err := ValidatePaymentPendingFilter(filter); err != nil {
		return nil, err
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	today := model.NewDate(time.Unix(ts, 0))
	query := paymentPendingQuery(today, filter, model.PaymentStatusPending, model.PaymentStatusProcessing)
	rows, err := r.storage.QueryPaymentPendingOutwards(ctx, tx, query)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return lo.Map(rows, func(row storage.PaymentPendingRow, _ int) PaymentPending {
		result := PaymentPending{
			OutwardID:      row.ID,
			BookingID:      row.BookingID,
			Customer:       row.Customer,
			Broker:         row.Broker,
			Product:        row.Product,
			Warehouse:      row.Warehouse,
			OutwardDate:    row.Date,
			NetTotal:       row.NetTotal,
			AmountPaid:     row.AmountPaid,
			Outstanding:    row.NetTotal.Sub(row.AmountPaid).Round(2),
			PaymentDueDate: row.PaymentDueDate,
			PaymentStatus:  row.PaymentStatus,
		}
		result.DaysStatus, result.Urgency = dueStatus(today, row.PaymentDueDate)
		return result
	}), nil
}

func (r *_Reporter) PaymentPendingInwards(ctx context.Context, ts int64, filter PaymentPendingFilter) ([]PaymentPendingInward, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.PaymentPendingInwards")
	defer span.End()

	if err := ValidatePaymentPendingFilter(filter); err != nil {
		return nil, err
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	today := model.NewDate(time.Unix(ts, 0))
	rows, err := r.storage.QueryPaymentPendingInwards(ctx, tx, paymentPendingQuery(today, filter, model.PaymentStatusPending))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))

	return lo.Map(rows, func(row storage.PaymentPendingRow, _ int) PaymentPendingInward {
		result := PaymentPendingInward{
			InwardID:          row.ID,
			BookingID:         row.BookingID,
			Supplier:          row.Customer,
			Broker:            row.Broker,
			Product:           row.Product,
			Warehouse:         row.Warehouse,
			InwardDate:        row.Date,
			NetTotal:          row.NetTotal,
			AmountPaid:        row.AmountPaid,
			Outstanding:       row.NetTotal.Sub(row.AmountPaid).Round(2),
			PaymentDueDate:    row.PaymentDueDate,
			PaymentStatus:     row.PaymentStatus,
			LatestPaymentNote: row.LatestPaymentNote,
		}
		result.DaysStatus, result.Urgency = dueStatus(today, row.PaymentDueDate)
		return result
	}), nil
}

// daysSince returns the number of days from date to today. It is negative when date is in the
// future and 0 when date is nil.
func daysSince(today model.Date, date *model.Date) int {
	if date == nil {
		return 0
	}
	return int(today.GetTime().Sub(date.GetTime()).Hours() / 24)
}

func urgencyOf(days int) Urgency {
	switch {
	case days > 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyDueToday
	default:
		return UrgencyUpcoming
	}
}

func daysStatus(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%d Days Overdue", days)
	case days == 0:
		return "Due Today"
	default:
		return fmt.Sprintf("Due in %d Days", -days)
	}
}

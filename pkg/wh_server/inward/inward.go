// Package inward records purchases: goods bought from a supplier and received into a warehouse,
// with the GST charged on them and the payments made to the supplier.
package inward

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

type Manager interface {
	Create(ctx context.Context, ts int64, req CreateInwardRequest) (model.Inward, error)
	RecordPayment(ctx context.Context, ts int64, req RecordPaymentRequest) (model.Inward, error)
	Get(ctx context.Context, id string) (model.Inward, error)
	List(ctx context.Context, req storage.ListInwardsRequest) (storage.ListInwardsResult, error)
}

type InwardItemRequest struct {
	Bags          int64         `json:"bags"`
	ArrivalWeight model.Decimal `json:"arrival_weight"`
	Amount        model.Decimal `json:"amount"`
}

type CreateInwardRequest struct {
	Requester string `json:"requester"`
	Firm      string `json:"firm"`
	Booking   string `json:"booking"`

	Customer  string `json:"customer"`
	Broker    string `json:"broker"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`
	Vehicle   string `json:"vehicle"`

	InwardDate     model.Date  `json:"inward_date"`
	PaymentDueDate *model.Date `json:"payment_due_date,omitempty"`

	// Intra-state purchases carry CGST and SGST, inter-state ones IGST only.
	CGSTPercent model.Decimal `json:"cgst_percent"`
	SGSTPercent model.Decimal `json:"sgst_percent"`
	IGSTPercent model.Decimal `json:"igst_percent"`

	Items []InwardItemRequest `json:"items"`
}

type RecordPaymentRequest struct {
	Requester   string        `json:"requester"`
	ID          string        `json:"id"`
	PaymentDate model.Date    `json:"payment_date"`
	Amount      model.Decimal `json:"amount"`
	Note        string        `json:"payment_note"`

	// PaymentStatus overrides the status derived from the amounts.
	PaymentStatus model.PaymentStatus `json:"payment_status,omitempty"`
}

type _Manager struct {
	storage   storage.InwardStorage
	bookings  storage.BookingStorage
	firms     storage.FirmStorage
	generator naming.Generator
}

func NewManager(s storage.InwardStorage, bookings storage.BookingStorage, firms storage.FirmStorage, generator naming.Generator) Manager {
	return &_Manager{
		storage:   s,
		bookings:  bookings,
		firms:     firms,
		generator: generator,
	}
}

func (m *_Manager) Create(ctx context.Context, ts int64, req CreateInwardRequest) (model.Inward, error) {
	if err := ValidateCreateInwardRequest(req); err != nil {
		return model.Inward{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return model.Inward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inward := model.Inward{
		Version:        1,
		Firm:           req.Firm,
		Booking:        req.Booking,
		Customer:       req.Customer,
		Broker:         req.Broker,
		Product:        req.Product,
		Warehouse:      req.Warehouse,
		Vehicle:        req.Vehicle,
		InwardDate:     req.InwardDate,
		PaymentDueDate: req.PaymentDueDate,
		CGSTPercent:    req.CGSTPercent,
		SGSTPercent:    req.SGSTPercent,
		IGSTPercent:    req.IGSTPercent,
		Items: lo.Map(req.Items, func(item InwardItemRequest, _ int) model.InwardItem {
			return model.InwardItem{
				ID:            util.NewUUID(),
				Bags:          item.Bags,
				ArrivalWeight: item.ArrivalWeight,
				Amount:        item.Amount,
			}
		}),
		CreatedAt: ts,
		CreatedBy: req.Requester,
		UpdatedAt: ts,
		UpdatedBy: req.Requester,
	}

	if req.Booking != "" {
		if err := m.applyBooking(ctx, tx, &inward); err != nil {
			return model.Inward{}, err
		}
	}
	if inward.Firm != "" {
		if _, err := m.firms.GetFirm(ctx, tx, inward.Firm); err != nil {
			return model.Inward{}, err
		}
	}

	name, err := m.generator.Next(ctx, tx, ts, naming.PrefixInward, inward.Firm)
	if err != nil {
		return model.Inward{}, err
	}
	inward.ID = name.ID

	ApplyTotals(&inward)
	inward.AmountPaid = model.Decimal{}
	inward.PaymentStatus = model.DerivePaymentStatus(inward.NetTotal, inward.AmountPaid)

	if err := m.storage.StoreInward(ctx, tx, inward); err != nil {
		return model.Inward{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Inward{}, err
	}

	return inward, nil
}

func (m *_Manager) RecordPayment(ctx context.Context, ts int64, req RecordPaymentRequest) (model.Inward, error) {
	if err := ValidateRecordPaymentRequest(req); err != nil {
		return model.Inward{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return model.Inward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inward, err := m.storage.LockInward(ctx, tx, req.ID)
	if err != nil {
		return model.Inward{}, err
	}

	amountPaid := inward.AmountPaid.Add(req.Amount)
	if amountPaid.GreaterThan(inward.NetTotal) {
		return model.Inward{}, fmt.Errorf("%s: paid %s of %s, payment of %s%w",
			inward.ID, inward.AmountPaid, inward.NetTotal, req.Amount, model.ErrPaymentExceedsTotal)
	}

	inward.Payments = append(inward.Payments, model.InwardPayment{
		ID:          util.NewUUID(),
		PaymentDate: req.PaymentDate,
		Amount:      req.Amount,
		Note:        req.Note,
		CreatedAt:   ts,
		CreatedBy:   req.Requester,
	})
	inward.AmountPaid = amountPaid
	inward.PaymentStatus = lo.Ternary(req.PaymentStatus == "", model.DerivePaymentStatus(inward.NetTotal, amountPaid), req.PaymentStatus)
	inward.Version += 1
	inward.UpdatedAt = ts
	inward.UpdatedBy = req.Requester

	if err := m.storage.StoreInward(ctx, tx, inward); err != nil {
		return model.Inward{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Inward{}, err
	}

	return inward, nil
}

func (m *_Manager) Get(ctx context.Context, id string) (model.Inward, error) {
	if id == "" {
		return model.Inward{}, fmt.Errorf("id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Inward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := m.storage.ListInwards(ctx, tx, storage.ListInwardsRequest{Limit: 1, InwardIDs: []string{id}})
	if err != nil {
		return model.Inward{}, err
	}
	if len(result.Records) == 0 {
		return model.Inward{}, model.ErrInwardNotFound
	}
	return result.Records[0], nil
}

func (m *_Manager) List(ctx context.Context, req storage.ListInwardsRequest) (storage.ListInwardsResult, error) {
	if err := ValidateListInwardsRequest(req); err != nil {
		return storage.ListInwardsResult{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListInwardsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListInwards(ctx, tx, req)
}

// applyBooking checks that the booking is a purchase and fills the details left empty from it.
func (m *_Manager) applyBooking(ctx context.Context, tx storage.Tx, inward *model.Inward) error {
	result, err := m.bookings.ListBookings(ctx, tx, storage.ListBookingsRequest{Limit: 1, BookingIDs: []string{inward.Booking}})
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		return fmt.Errorf("booking %q: %w", inward.Booking, model.ErrBookingNotFound)
	}
	booking := result.Records[0]
	if booking.Type != model.BookingTypeInward {
		return fmt.Errorf("booking %q is %q, not a purchase%w", booking.ID, booking.Type, model.ErrInvalidParameter)
	}
	if booking.Status == model.BookingStatusCancelled {
		return fmt.Errorf("booking %q: %w", booking.ID, model.ErrBookingNotPending)
	}

	inward.Firm = lo.Ternary(inward.Firm == "", booking.Firm, inward.Firm)
	inward.Customer = lo.Ternary(inward.Customer == "", booking.Customer, inward.Customer)
	inward.Broker = lo.Ternary(inward.Broker == "", booking.Broker, inward.Broker)
	inward.Product = lo.Ternary(inward.Product == "", booking.Product, inward.Product)
	inward.Warehouse = lo.Ternary(inward.Warehouse == "", booking.Warehouse, inward.Warehouse)
	if inward.PaymentDueDate == nil {
		inward.PaymentDueDate = booking.PaymentEndDate
	}
	return nil
}

// ApplyTotals computes the sub total, the GST amounts (rounded to paise) and the net total of
// inward from its items and GST rates.
func ApplyTotals(inward *model.Inward) {
	hundred := model.NewDecimalFromInt(100)
	tax := func(percent model.Decimal, base model.Decimal) model.Decimal {
		return base.Mul(percent).Div(hundred).Round(2)
	}

	inward.SubTotal = model.SumDecimals(lo.Map(inward.Items, func(item model.InwardItem, _ int) model.Decimal { return item.Amount })...)
	inward.CGSTAmount = tax(inward.CGSTPercent, inward.SubTotal)
	inward.SGSTAmount = tax(inward.SGSTPercent, inward.SubTotal)
	inward.IGSTAmount = tax(inward.IGSTPercent, inward.SubTotal)
	inward.NetTotal = model.SumDecimals(inward.SubTotal, inward.CGSTAmount, inward.SGSTAmount, inward.IGSTAmount)
}

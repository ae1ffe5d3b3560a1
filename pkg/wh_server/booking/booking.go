package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

type Manager interface {
	CreateBooking(ctx context.Context, ts int64, req CreateBookingRequest) (model.Booking, error)
	GetBooking(ctx context.Context, id string) (model.Booking, error)
	ListBookings(ctx context.Context, req storage.ListBookingsRequest) (storage.ListBookingsResult, error)
	SetStatus(ctx context.Context, ts int64, req SetStatusRequest) (model.Booking, error)

	// GetDispatchedQuantity returns how much of the booking is already taken by draft and submitted
	// outwards, leaving out excludeOutwardID.
	GetDispatchedQuantity(ctx context.Context, bookingID string, excludeOutwardID string) (model.Decimal, error)
}

type CreateBookingRequest struct {
	Requester string            `json:"requester"`
	Firm      string            `json:"firm"`
	Type      model.BookingType `json:"booking_type"`

	Customer  string `json:"customer"`
	Broker    string `json:"broker"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`

	ExpectedQuantity model.Decimal `json:"expected_quantity"`
	Rate             model.Decimal `json:"rate"`
	BookingAmount    model.Decimal `json:"booking_amount"`

	BookingDate     model.Date  `json:"booking_date"`
	DeliveryEndDate *model.Date `json:"delivery_end_date,omitempty"`
	PaymentEndDate  *model.Date `json:"payment_end_date,omitempty"`
}

type SetStatusRequest struct {
	Requester string              `json:"requester"`
	ID        string              `json:"id"`
	Status    model.BookingStatus `json:"status"`
}

type _Manager struct {
	storage   storage.BookingStorage
	firms     storage.FirmStorage
	generator naming.Generator
}

func NewManager(s storage.BookingStorage, firms storage.FirmStorage, generator naming.Generator) Manager {
	return &_Manager{
		storage:   s,
		firms:     firms,
		generator: generator,
	}
}

func (m *_Manager) CreateBooking(ctx context.Context, ts int64, req CreateBookingRequest) (model.Booking, error) {
	if err := ValidateCreateBookingRequest(req); err != nil {
		return model.Booking{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if req.Firm != "" {
		if _, err := m.firms.GetFirm(ctx, tx, req.Firm); err != nil {
			return model.Booking{}, err
		}
	}

	name, err := m.generator.Next(ctx, tx, ts, naming.PrefixBooking, req.Firm)
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:               name.ID,
		Version:          1,
		Firm:             req.Firm,
		Type:             req.Type,
		Status:           model.BookingStatusPending,
		Customer:         req.Customer,
		Broker:           req.Broker,
		Product:          req.Product,
		Warehouse:        req.Warehouse,
		ExpectedQuantity: req.ExpectedQuantity,
		Rate:             req.Rate,
		TotalAmount:      req.ExpectedQuantity.Mul(req.Rate),
		BookingAmount:    req.BookingAmount,
		BookingDate:      req.BookingDate,
		DeliveryEndDate:  req.DeliveryEndDate,
		PaymentEndDate:   req.PaymentEndDate,
		CreatedAt:        ts,
		CreatedBy:        req.Requester,
		UpdatedAt:        ts,
		UpdatedBy:        req.Requester,
	}
	if booking.Type == "" {
		booking.Type = model.BookingTypeOutward
	}

	if err := m.storage.StoreBooking(ctx, tx, booking); err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func (m *_Manager) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	if id == "" {
		return model.Booking{}, fmt.Errorf("id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.getBooking(ctx, tx, id)
}

func (m *_Manager) ListBookings(ctx context.Context, req storage.ListBookingsRequest) (storage.ListBookingsResult, error) {
	if err := ValidateListBookingsRequest(req); err != nil {
		return storage.ListBookingsResult{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListBookingsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListBookings(ctx, tx, req)
}

func (m *_Manager) SetStatus(ctx context.Context, ts int64, req SetStatusRequest) (model.Booking, error) {
	if err := ValidateSetStatusRequest(req); err != nil {
		return model.Booking{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	booking, err := m.getBooking(ctx, tx, req.ID)
	if err != nil {
		return model.Booking{}, err
	}
	if booking.Status == req.Status {
		return booking, nil
	}
	if booking.Status != model.BookingStatusPending {
		return model.Booking{}, model.ErrBookingNotPending
	}

	booking.Status = req.Status
	booking.Version += 1
	booking.UpdatedAt = ts
	booking.UpdatedBy = req.Requester

	if err := m.storage.StoreBooking(ctx, tx, booking); err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func (m *_Manager) GetDispatchedQuantity(ctx context.Context, bookingID string, excludeOutwardID string) (model.Decimal, error) {
	if bookingID == "" {
		return model.Decimal{}, fmt.Errorf("booking is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Decimal{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := m.getBooking(ctx, tx, bookingID); err != nil {
		return model.Decimal{}, err
	}
	return m.storage.GetDispatchedQuantity(ctx, tx, bookingID, excludeOutwardID)
}

func (m *_Manager) getBooking(ctx context.Context, tx storage.Tx, id string) (model.Booking, error) {
	result, err := m.storage.ListBookings(ctx, tx, storage.ListBookingsRequest{Limit: 1, BookingIDs: []string{id}})
	if err != nil {
		return model.Booking{}, err
	}
	if len(result.Records) == 0 {
		return model.Booking{}, model.ErrBookingNotFound
	}
	return result.Records[0], nil
}

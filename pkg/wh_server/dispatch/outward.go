package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

type OutwardManager interface {
	Create(ctx context.Context, ts int64, req CreateOutwardRequest) (model.Outward, error)
	Update(ctx context.Context, ts int64, req UpdateOutwardRequest) (model.Outward, error)
	Submit(ctx context.Context, ts int64, req OutwardActionRequest) (model.Outward, error)
	Cancel(ctx context.Context, ts int64, req OutwardActionRequest) (model.Outward, error)
	Get(ctx context.Context, id string) (model.Outward, error)
	List(ctx context.Context, req storage.ListOutwardsRequest) (storage.ListOutwardsResult, error)
}

type OutwardItemRequest struct {
	Bags        int64         `json:"bags"`
	GrossWeight model.Decimal `json:"gross_weight"`
	Amount      model.Decimal `json:"amount"`
}

type CreateOutwardRequest struct {
	Requester string `json:"requester"`
	Firm      string `json:"firm"`
	Booking   string `json:"booking"`

	Customer  string `json:"customer"`
	Broker    string `json:"broker"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`
	Vehicle   string `json:"vehicle"`

	OutwardDate    model.Date    `json:"outward_date"`
	PaymentDueDate *model.Date   `json:"payment_due_date,omitempty"`
	NetTotal       model.Decimal `json:"net_total"`
	AmountPaid     model.Decimal `json:"total_amount_paid"`

	// PaymentStatus overrides the status derived from the amounts, eg. processing while a transfer
	// has not cleared.
	PaymentStatus model.PaymentStatus `json:"payment_status,omitempty"`

	Items []OutwardItemRequest `json:"items"`
}

type UpdateOutwardRequest struct {
	CreateOutwardRequest
	ID string `json:"id"`
}

type OutwardActionRequest struct {
	Requester string `json:"requester"`
	ID        string `json:"id"`
}

type _OutwardManager struct {
	storage   storage.DispatchStorage
	generator naming.Generator
	validator Validator
}

func NewOutwardManager(s storage.DispatchStorage, generator naming.Generator, validator Validator) OutwardManager {
	return &_OutwardManager{
		storage:   s,
		generator: generator,
		validator: validator,
	}
}

// Writers run at read committed: the row locks taken on the outward and on the booking serialize
// them, and each statement after a lock sees what the previous holder committed. Outwards are
// always locked before their booking.
func (m *_OutwardManager) createWriteTx(ctx context.Context) (storage.Tx, context.Context, error) {
	return m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
}

func (m *_OutwardManager) Create(ctx context.Context, ts int64, req CreateOutwardRequest) (model.Outward, error) {
	if err := ValidateCreateOutwardRequest(req); err != nil {
		return model.Outward{}, err
	}

	tx, ctx, err := m.createWriteTx(ctx)
	if err != nil {
		return model.Outward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outward := model.Outward{
		Version:   1,
		DocStatus: model.DocStatusDraft,
		CreatedAt: ts,
		CreatedBy: req.Requester,
	}
	if err := m.applyRequest(ctx, tx, ts, &outward, req); err != nil {
		return model.Outward{}, err
	}

	name, err := m.generator.Next(ctx, tx, ts, naming.PrefixOutward, outward.Firm)
	if err != nil {
		return model.Outward{}, err
	}
	outward.ID = name.ID

	if err := m.validator.Validate(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := m.storage.StoreOutward(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Outward{}, err
	}

	return outward, nil
}

func (m *_OutwardManager) Update(ctx context.Context, ts int64, req UpdateOutwardRequest) (model.Outward, error) {
	if err := ValidateUpdateOutwardRequest(req); err != nil {
		return model.Outward{}, err
	}

	tx, ctx, err := m.createWriteTx(ctx)
	if err != nil {
		return model.Outward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outward, err := m.storage.LockOutward(ctx, tx, req.ID)
	if err != nil {
		return model.Outward{}, err
	}
	if outward.DocStatus != model.DocStatusDraft {
		return model.Outward{}, model.ErrOutwardNotDraft
	}

	if err := m.applyRequest(ctx, tx, ts, &outward, req.CreateOutwardRequest); err != nil {
		return model.Outward{}, err
	}
	if err := m.validator.Validate(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := m.storage.StoreOutward(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Outward{}, err
	}

	return outward, nil
}

func (m *_OutwardManager) Submit(ctx context.Context, ts int64, req OutwardActionRequest) (model.Outward, error) {
	if err := ValidateOutwardActionRequest(req); err != nil {
		return model.Outward{}, err
	}

	tx, ctx, err := m.createWriteTx(ctx)
	if err != nil {
		return model.Outward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outward, err := m.storage.LockOutward(ctx, tx, req.ID)
	if err != nil {
		return model.Outward{}, err
	}
	if outward.DocStatus != model.DocStatusDraft {
		return model.Outward{}, model.ErrOutwardNotDraft
	}

	outward.DocStatus = model.DocStatusSubmitted
	outward.Version += 1
	outward.UpdatedAt = ts
	outward.UpdatedBy = req.Requester

	if err := m.validator.Validate(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := m.storage.StoreOutward(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Outward{}, err
	}

	return outward, nil
}

func (m *_OutwardManager) Cancel(ctx context.Context, ts int64, req OutwardActionRequest) (model.Outward, error) {
	if err := ValidateOutwardActionRequest(req); err != nil {
		return model.Outward{}, err
	}

	tx, ctx, err := m.createWriteTx(ctx)
	if err != nil {
		return model.Outward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outward, err := m.storage.LockOutward(ctx, tx, req.ID)
	if err != nil {
		return model.Outward{}, err
	}
	if outward.DocStatus == model.DocStatusCancelled {
		return model.Outward{}, model.ErrOutwardCancelled
	}

	outward.DocStatus = model.DocStatusCancelled
	outward.Version += 1
	outward.UpdatedAt = ts
	outward.UpdatedBy = req.Requester

	if err := m.storage.StoreOutward(ctx, tx, outward); err != nil {
		return model.Outward{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Outward{}, err
	}

	return outward, nil
}

func (m *_OutwardManager) Get(ctx context.Context, id string) (model.Outward, error) {
	if id == "" {
		return model.Outward{}, fmt.Errorf("id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Outward{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.getOutward(ctx, tx, id)
}

func (m *_OutwardManager) List(ctx context.Context, req storage.ListOutwardsRequest) (storage.ListOutwardsResult, error) {
	if err := ValidateListOutwardsRequest(req); err != nil {
		return storage.ListOutwardsResult{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListOutwardsResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListOutwards(ctx, tx, req)
}

func (m *_OutwardManager) getOutward(ctx context.Context, tx storage.Tx, id string) (model.Outward, error) {
	result, err := m.storage.ListOutwards(ctx, tx, storage.ListOutwardsRequest{Limit: 1, OutwardIDs: []string{id}})
	if err != nil {
		return model.Outward{}, err
	}
	if len(result.Records) == 0 {
		return model.Outward{}, model.ErrOutwardNotFound
	}
	return result.Records[0], nil
}

// applyRequest copies the editable fields of req into outward. Details left empty in req are
// taken from the booking.
func (m *_OutwardManager) applyRequest(ctx context.Context, tx storage.Tx, ts int64, outward *model.Outward, req CreateOutwardRequest) error {
	outward.Firm = lo.Ternary(outward.ID == "", req.Firm, outward.Firm)
	outward.Booking = req.Booking
	outward.Customer = req.Customer
	outward.Broker = req.Broker
	outward.Product = req.Product
	outward.Warehouse = req.Warehouse
	outward.Vehicle = req.Vehicle
	outward.OutwardDate = req.OutwardDate
	outward.PaymentDueDate = req.PaymentDueDate
	outward.NetTotal = req.NetTotal
	outward.AmountPaid = req.AmountPaid
	outward.PaymentStatus = lo.Ternary(req.PaymentStatus == "", model.DerivePaymentStatus(req.NetTotal, req.AmountPaid), req.PaymentStatus)
	outward.Items = lo.Map(req.Items, func(item OutwardItemRequest, _ int) model.OutwardItem {
		return model.OutwardItem{
			ID:          util.NewUUID(),
			Bags:        item.Bags,
			GrossWeight: item.GrossWeight,
			Amount:      item.Amount,
		}
	})
	if outward.ID != "" {
		outward.Version += 1
	}
	outward.UpdatedAt = ts
	outward.UpdatedBy = req.Requester

	if req.Booking == "" {
		return nil
	}

	booking, err := m.storage.LockBooking(ctx, tx, req.Booking)
	if errors.Is(err, model.ErrBookingNotFound) {
		return fmt.Errorf("booking %q: %w", req.Booking, err)
	} else if err != nil {
		return err
	}

	if outward.ID == "" && outward.Firm == "" {
		outward.Firm = booking.Firm
	}
	outward.Customer = lo.Ternary(outward.Customer == "", booking.Customer, outward.Customer)
	outward.Broker = lo.Ternary(outward.Broker == "", booking.Broker, outward.Broker)
	outward.Product = lo.Ternary(outward.Product == "", booking.Product, outward.Product)
	outward.Warehouse = lo.Ternary(outward.Warehouse == "", booking.Warehouse, outward.Warehouse)
	if outward.PaymentDueDate == nil {
		outward.PaymentDueDate = booking.PaymentEndDate
	}
	return nil
}

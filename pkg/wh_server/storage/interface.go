package storage

import (
	"context"
	"database/sql"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// SequenceKey identifies one naming series counter. Firm is empty for the legacy (firm-less) series.
type SequenceKey struct {
	Prefix string
	Firm   string
	Year   int
}

type SequenceStorage interface {
	// IncrementSequence atomically increments the counter of key and returns the new value.
	// The first call for a key returns 1. The increment belongs to tx: it is released only if tx
	// commits, and concurrent transactions incrementing the same key wait for each other.
	IncrementSequence(ctx context.Context, tx Tx, ts int64, key SequenceKey) (int64, error)
}

type FirmStorage interface {
	TransactionInterface
	SequenceStorage
	StoreFirm(ctx context.Context, tx Tx, firm model.Firm) error
	GetFirm(ctx context.Context, tx Tx, id string) (model.Firm, error)
}

// ListBookingsRequest is the request to list bookings.
type ListBookingsRequest struct {
	Offset int `json:"offset"` // Offset of the bookings to be listed.
	Limit  int `json:"limit"`  // Limit of the bookings to be listed.

	// Filters
	Firm       string                `json:"firm"`        // Only bookings of this firm.
	BookingIDs []string              `json:"booking_ids"` // The IDs of the bookings.
	Statuses   []model.BookingStatus `json:"statuses"`    // Statuses of the bookings.
}

// ListBookingsResult is the result of listing bookings.
type ListBookingsResult struct {
	Total   int             `json:"total"`   // Total number of bookings.
	Records []model.Booking `json:"records"` // Records of bookings.
}

type BookingStorage interface {
	TransactionInterface
	SequenceStorage
	StoreBooking(ctx context.Context, tx Tx, booking model.Booking) error
	ListBookings(ctx context.Context, tx Tx, req ListBookingsRequest) (ListBookingsResult, error)
	GetDispatchedQuantity(ctx context.Context, tx Tx, bookingID string, excludeOutwardID string) (model.Decimal, error)
}

// ListOutwardsRequest is the request to list outwards.
type ListOutwardsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	Firm        string            `json:"firm"`
	Booking     string            `json:"booking"`
	OutwardIDs  []string          `json:"outward_ids"`
	DocStatuses []model.DocStatus `json:"doc_statuses"`
}

type ListOutwardsResult struct {
	Total   int             `json:"total"`
	Records []model.Outward `json:"records"`
}

type DispatchStorage interface {
	TransactionInterface
	SequenceStorage

	// LockBooking loads the booking and holds a row lock on it until tx ends.
	// It returns model.ErrBookingNotFound if the booking does not exist.
	LockBooking(ctx context.Context, tx Tx, bookingID string) (model.Booking, error)

	// GetDispatchedQuantity returns the total gross weight of the draft and submitted outwards of
	// the booking, leaving out excludeOutwardID (when not empty).
	GetDispatchedQuantity(ctx context.Context, tx Tx, bookingID string, excludeOutwardID string) (model.Decimal, error)

	// LockOutward loads the outward and holds a row lock on it until tx ends.
	// It returns model.ErrOutwardNotFound if the outward does not exist.
	LockOutward(ctx context.Context, tx Tx, outwardID string) (model.Outward, error)

	StoreOutward(ctx context.Context, tx Tx, outward model.Outward) error
	ListOutwards(ctx context.Context, tx Tx, req ListOutwardsRequest) (ListOutwardsResult, error)
}

// ListInwardsRequest is the request to list inwards.
type ListInwardsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	// Filters
	Firm            string                `json:"firm"`
	Booking         string                `json:"booking"`
	InwardIDs       []string              `json:"inward_ids"`
	PaymentStatuses []model.PaymentStatus `json:"payment_statuses"`
}

type ListInwardsResult struct {
	Total   int            `json:"total"`
	Records []model.Inward `json:"records"`
}

type InwardStorage interface {
	TransactionInterface
	SequenceStorage

	// LockInward loads the inward and holds a row lock on it until tx ends.
	// It returns model.ErrInwardNotFound if the inward does not exist.
	LockInward(ctx context.Context, tx Tx, inwardID string) (model.Inward, error)

	StoreInward(ctx context.Context, tx Tx, inward model.Inward) error
	ListInwards(ctx context.Context, tx Tx, req ListInwardsRequest) (ListInwardsResult, error)
}

type ReceiptStorage interface {
	TransactionInterface
	SequenceStorage
	StoreInwardAawak(ctx context.Context, tx Tx, aawak model.InwardAawak) error
	GetInwardAawak(ctx context.Context, tx Tx, id string) (model.InwardAawak, error)
	StoreOutwardJawak(ctx context.Context, tx Tx, jawak model.OutwardJawak) error
	ListOutwardJawaks(ctx context.Context, tx Tx, ids []string) ([]model.OutwardJawak, error)
}

// ReportStorage runs the parameterized read queries behind the reports.
// Filters are explicit structures; see package report for the meaning of each field.
type ReportStorage interface {
	TransactionInterface
	QueryPendingBookings(ctx context.Context, tx Tx, query PendingBookingsQuery) ([]PendingBookingRow, error)
	QueryPaymentPendingOutwards(ctx context.Context, tx Tx, query PaymentPendingQuery) ([]PaymentPendingRow, error)
	QueryPaymentPendingInwards(ctx context.Context, tx Tx, query PaymentPendingQuery) ([]PaymentPendingRow, error)
	QueryStockByWarehouse(ctx context.Context, tx Tx, query StockQuery) ([]WarehouseStockRow, error)
	QueryStockByProduct(ctx context.Context, tx Tx, query StockQuery) ([]ProductStockRow, error)
	QueryStorageStockByWarehouse(ctx context.Context, tx Tx, query StorageStockQuery) ([]StorageStockRow, error)
	QueryTallyInwards(ctx context.Context, tx Tx, query TallyQuery) ([]model.Inward, error)
	QueryTallyOutwards(ctx context.Context, tx Tx, query TallyQuery) ([]model.Outward, error)
}

// PendingBookingsQuery is the storage form of report.PendingBookingsFilter.
// Empty strings and nil dates mean "no condition".
type PendingBookingsQuery struct {
	Customer         string
	Broker           string
	Product          string
	Warehouse        string
	Status           model.BookingStatus
	DeliveryDateFrom *model.Date
	DeliveryDateTo   *model.Date
	PaymentDateFrom  *model.Date
	PaymentDateTo    *model.Date
	DeliveryDateOn   *model.Date // Exact delivery end date. Used for the "today" default of the report.
}

type PendingBookingRow struct {
	BookingID        string
	Customer         string
	Broker           string
	Product          string
	Warehouse        string
	BookingDate      model.Date
	ExpectedQuantity model.Decimal
	PendingQuantity  model.Decimal
	DeliveryEndDate  *model.Date
	PaymentEndDate   *model.Date
	TotalAmount      model.Decimal
	Status           model.BookingStatus
}

// PaymentPendingQuery selects the outwards or inwards with an outstanding amount.
type PaymentPendingQuery struct {
	Customer       string
	Broker         string
	Product        string
	Warehouse      string
	Statuses       []model.PaymentStatus // Payment status is one of these. Must not be empty.
	PaymentDueFrom *model.Date
	PaymentDueTo   *model.Date
	PaymentDueOn   *model.Date // Exact payment due date. Used for the "today" default of the report.
}

// PaymentPendingRow is one outward or inward with an outstanding amount.
type PaymentPendingRow struct {
	ID                string
	BookingID         string
	Customer          string
	Broker            string
	Product           string
	Warehouse         string
	Date              model.Date // Outward or inward date.
	NetTotal          model.Decimal
	AmountPaid        model.Decimal
	PaymentDueDate    *model.Date
	PaymentStatus     model.PaymentStatus
	LatestPaymentNote string // Inwards only.
}

// StockQuery filters the net stock reports. The inward date range limits the inwards counted;
// outwards are always counted in full.
type StockQuery struct {
	Warehouse      string
	Product        string
	InwardDateFrom *model.Date
	InwardDateTo   *model.Date
}

type WarehouseStockRow struct {
	Warehouse string
	Bags      int64
	StockKG   model.Decimal
	Value     model.Decimal
	Products  int64 // Products with a positive stock in the warehouse.
}

type ProductStockRow struct {
	Product    string
	Bags       int64
	StockKG    model.Decimal
	Value      model.Decimal
	Warehouses int64 // Warehouses holding a positive stock of the product.
}

// StorageStockQuery filters the stock held for rent, from the aawak and jawak receipts.
type StorageStockQuery struct {
	Warehouse string
	Commodity string
}

type StorageStockRow struct {
	Warehouse string
	Bags      int64
	StockKG   model.Decimal
}

// TallyQuery selects the documents exported to the accounting system. The date range is inclusive
// and both ends are required.
type TallyQuery struct {
	DateFrom  model.Date
	DateTo    model.Date
	Customer  string
	Broker    string
	Product   string
	Warehouse string
	DocStatus model.DocStatus // Outwards only. Empty means any status but cancelled.
}

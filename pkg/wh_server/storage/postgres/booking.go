package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func (s *_Storage) StoreBooking(ctx context.Context, tx storage.Tx, booking model.Booking) error {
	query := `
WITH new_data AS (
	INSERT INTO booking (
		id, "version", firm_id, booking_type, "status", customer, broker, product, warehouse,
		expected_quantity, total_amount, booking_date, delivery_end_date, payment_end_date,
		booking, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::TEXT::NUMERIC, $11::TEXT::NUMERIC, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		"status" = excluded."status",
		customer = excluded.customer,
		broker = excluded.broker,
		product = excluded.product,
		warehouse = excluded.warehouse,
		expected_quantity = excluded.expected_quantity,
		total_amount = excluded.total_amount,
		booking_date = excluded.booking_date,
		delivery_end_date = excluded.delivery_end_date,
		payment_end_date = excluded.payment_end_date,
		booking = excluded.booking,
		updated_at = excluded.updated_at
	RETURNING id, "version", booking, updated_at
)
INSERT INTO booking_history (id, "version", booking, created_at)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		booking.ID,
		booking.Version,
		booking.Firm,
		booking.Type,
		booking.Status,
		booking.Customer,
		booking.Broker,
		booking.Product,
		booking.Warehouse,
		booking.ExpectedQuantity.String(),
		booking.TotalAmount.String(),
		booking.BookingDate.GetTime(),
		dateParam(booking.DeliveryEndDate),
		dateParam(booking.PaymentEndDate),
		booking,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	return err
}

func (s *_Storage) ListBookings(ctx context.Context, tx storage.Tx, req storage.ListBookingsRequest) (storage.ListBookingsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		booking
	FROM booking
	WHERE
		($3 = '' OR firm_id = $3) AND
		(COALESCE(array_length($4::TEXT[], 1), 0) = 0 OR id = ANY($4)) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR "status" = ANY($5))
)
SELECT
	total,
	booking
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT booking FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	statuses := make([]string, 0, len(req.Statuses))
	for _, status := range req.Statuses {
		statuses = append(statuses, string(status))
	}

	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Firm, req.BookingIDs, statuses)
	if err != nil {
		return storage.ListBookingsResult{}, err
	}
	defer rows.Close()

	result := storage.ListBookingsResult{}
	for rows.Next() {
		var total *int
		var booking *model.Booking
		if err := rows.Scan(&total, &booking); err != nil {
			return storage.ListBookingsResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if booking != nil {
			result.Records = append(result.Records, *booking)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListBookingsResult{}, err
	}

	return result, nil
}

func (s *_Storage) LockBooking(ctx context.Context, tx storage.Tx, bookingID string) (model.Booking, error) {
	const query = `SELECT booking FROM booking WHERE id = $1 FOR UPDATE`
	var booking model.Booking
	if err := tx.QueryRow(ctx, query, bookingID).Scan(&booking); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, model.ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func (s *_Storage) GetDispatchedQuantity(ctx context.Context, tx storage.Tx, bookingID string, excludeOutwardID string) (model.Decimal, error) {
	const query = `
SELECT COALESCE(SUM(gross_weight), 0)::TEXT
FROM outward
WHERE
	booking_id = $1 AND
	doc_status IN ('draft', 'submitted') AND
	($2 = '' OR id <> $2)
`
	var total string
	if err := tx.QueryRow(ctx, query, bookingID, excludeOutwardID).Scan(&total); err != nil {
		return model.Decimal{}, err
	}
	return model.NewDecimalFromString(total)
}

func dateParam(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.GetTime()
	return &t
}

func dateResult(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}

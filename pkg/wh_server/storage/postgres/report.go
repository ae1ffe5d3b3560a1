package postgres

import (
	"context"
	"time"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

func (s *_Storage) QueryPendingBookings(ctx context.Context, tx storage.Tx, req storage.PendingBookingsQuery) ([]storage.PendingBookingRow, error) {
	query := `
WITH dispatched AS (
	SELECT booking_id, SUM(gross_weight) AS quantity
	FROM outward
	WHERE doc_status IN ('draft', 'submitted') AND booking_id <> ''
	GROUP BY booking_id
), pending AS (
	SELECT
		b.*,
		b.expected_quantity - COALESCE(d.quantity, 0) AS pending_quantity
	FROM booking b
	LEFT JOIN dispatched d ON d.booking_id = b.id
)
SELECT
	id,
	customer,
	broker,
	product,
	warehouse,
	booking_date,
	expected_quantity::TEXT,
	pending_quantity::TEXT,
	delivery_end_date,
	payment_end_date,
	total_amount::TEXT,
	"status"
FROM pending
WHERE
	pending_quantity > 0 AND
	($1 = '' OR customer = $1) AND
	($2 = '' OR broker = $2) AND
	($3 = '' OR product = $3) AND
	($4 = '' OR warehouse = $4) AND
	(($5 = '' AND "status" <> 'cancelled') OR "status" = $5) AND
	($6::DATE IS NULL OR delivery_end_date >= $6) AND
	($7::DATE IS NULL OR delivery_end_date <= $7) AND
	($8::DATE IS NULL OR payment_end_date >= $8) AND
	($9::DATE IS NULL OR payment_end_date <= $9) AND
	($10::DATE IS NULL OR delivery_end_date = $10)
ORDER BY delivery_end_date ASC NULLS LAST, pending_quantity DESC, id ASC
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Customer,
		req.Broker,
		req.Product,
		req.Warehouse,
		string(req.Status),
		dateParam(req.DeliveryDateFrom),
		dateParam(req.DeliveryDateTo),
		dateParam(req.PaymentDateFrom),
		dateParam(req.PaymentDateTo),
		dateParam(req.DeliveryDateOn),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]storage.PendingBookingRow, 0)
	for rows.Next() {
		var row storage.PendingBookingRow
		var bookingDate time.Time
		var deliveryEnd, paymentEnd *time.Time
		var expected, pending, total string
		if err := rows.Scan(
			&row.BookingID,
			&row.Customer,
			&row.Broker,
			&row.Product,
			&row.Warehouse,
			&bookingDate,
			&expected,
			&pending,
			&deliveryEnd,
			&paymentEnd,
			&total,
			&row.Status,
		); err != nil {
			return nil, err
		}
		row.BookingDate = model.NewDate(bookingDate)
		row.DeliveryEndDate = dateResult(deliveryEnd)
		row.PaymentEndDate = dateResult(paymentEnd)
		if row.ExpectedQuantity, err = model.NewDecimalFromString(expected); err != nil {
			return nil, err
		}
		if row.PendingQuantity, err = model.NewDecimalFromString(pending); err != nil {
			return nil, err
		}
		if row.TotalAmount, err = model.NewDecimalFromString(total); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *_Storage) QueryPaymentPendingOutwards(ctx context.Context, tx storage.Tx, req storage.PaymentPendingQuery) ([]storage.PaymentPendingRow, error) {
	query := `
SELECT
	o.id,
	o.booking_id,
	o.customer,
	o.broker,
	o.product,
	o.warehouse,
	o.outward_date,
	o.net_total::TEXT,
	o.amount_paid::TEXT,
	o.payment_due_date,
	o.payment_status,
	''
FROM outward o
JOIN booking b ON b.id = o.booking_id AND b.booking_type = 'Outward / Sales'
WHERE
	o.doc_status IN ('draft', 'submitted') AND
	o.payment_status = ANY($1) AND
	o.net_total - o.amount_paid > 0 AND
	($2 = '' OR o.customer = $2) AND
	($3 = '' OR o.broker = $3) AND
	($4 = '' OR o.product = $4) AND
	($5 = '' OR o.warehouse = $5) AND
	($6::DATE IS NULL OR o.payment_due_date >= $6) AND
	($7::DATE IS NULL OR o.payment_due_date <= $7) AND
	($8::DATE IS NULL OR o.payment_due_date = $8)
ORDER BY o.payment_due_date ASC NULLS LAST, o.net_total - o.amount_paid DESC, o.id ASC
`
	return s.queryPaymentPending(ctx, tx, query, req)
}

// QueryPaymentPendingInwards lists the purchases still to be paid to the supplier. The payment note
// of the latest payment comes from the inward record.
func (s *_Storage) QueryPaymentPendingInwards(ctx context.Context, tx storage.Tx, req storage.PaymentPendingQuery) ([]storage.PaymentPendingRow, error) {
	query := `
SELECT
	i.id,
	i.booking_id,
	i.customer,
	i.broker,
	i.product,
	i.warehouse,
	i.inward_date,
	i.net_total::TEXT,
	i.amount_paid::TEXT,
	i.payment_due_date,
	i.payment_status,
	COALESCE(i.inward->'payments'->(-1)->>'payment_note', '')
FROM inward i
WHERE
	i.payment_status = ANY($1) AND
	i.net_total - i.amount_paid > 0 AND
	($2 = '' OR i.customer = $2) AND
	($3 = '' OR i.broker = $3) AND
	($4 = '' OR i.product = $4) AND
	($5 = '' OR i.warehouse = $5) AND
	($6::DATE IS NULL OR i.payment_due_date >= $6) AND
	($7::DATE IS NULL OR i.payment_due_date <= $7) AND
	($8::DATE IS NULL OR i.payment_due_date = $8)
ORDER BY i.payment_due_date ASC NULLS LAST, i.net_total - i.amount_paid DESC, i.id ASC
`
	return s.queryPaymentPending(ctx, tx, query, req)
}

func (s *_Storage) queryPaymentPending(ctx context.Context, tx storage.Tx, query string, req storage.PaymentPendingQuery) ([]storage.PaymentPendingRow, error) {
	statuses := lo.Map(req.Statuses, func(status model.PaymentStatus, _ int) string { return string(status) })
	rows, err := tx.Query(
		ctx,
		query,
		statuses,
		req.Customer,
		req.Broker,
		req.Product,
		req.Warehouse,
		dateParam(req.PaymentDueFrom),
		dateParam(req.PaymentDueTo),
		dateParam(req.PaymentDueOn),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]storage.PaymentPendingRow, 0)
	for rows.Next() {
		var row storage.PaymentPendingRow
		var date time.Time
		var dueDate *time.Time
		var netTotal, amountPaid string
		if err := rows.Scan(
			&row.ID,
			&row.BookingID,
			&row.Customer,
			&row.Broker,
			&row.Product,
			&row.Warehouse,
			&date,
			&netTotal,
			&amountPaid,
			&dueDate,
			&row.PaymentStatus,
			&row.LatestPaymentNote,
		); err != nil {
			return nil, err
		}
		row.Date = model.NewDate(date)
		row.PaymentDueDate = dateResult(dueDate)
		if row.NetTotal, err = model.NewDecimalFromString(netTotal); err != nil {
			return nil, err
		}
		if row.AmountPaid, err = model.NewDecimalFromString(amountPaid); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// netStockQuery computes the net stock (inwards minus non-cancelled outwards) of every warehouse and
// product pair. $1 and $2 are the inward date range; outwards are counted whatever their date.
const netStockQuery = `
WITH inward_data AS (
	SELECT warehouse, product, SUM(bags) AS bags, SUM(arrival_weight) AS weight, SUM(sub_total) AS value
	FROM inward
	WHERE ($1::DATE IS NULL OR inward_date >= $1) AND ($2::DATE IS NULL OR inward_date <= $2)
	GROUP BY warehouse, product
), outward_data AS (
	SELECT warehouse, product, SUM(bags) AS bags, SUM(gross_weight) AS weight, SUM(items_amount) AS value
	FROM outward
	WHERE doc_status IN ('draft', 'submitted')
	GROUP BY warehouse, product
), stock AS (
	SELECT
		COALESCE(i.warehouse, o.warehouse) AS warehouse,
		COALESCE(i.product, o.product) AS product,
		COALESCE(i.bags, 0) - COALESCE(o.bags, 0) AS bags,
		COALESCE(i.weight, 0) - COALESCE(o.weight, 0) AS weight,
		COALESCE(i.value, 0) - COALESCE(o.value, 0) AS value
	FROM inward_data i
	FULL OUTER JOIN outward_data o ON o.warehouse = i.warehouse AND o.product = i.product
)`

func (s *_Storage) QueryStockByWarehouse(ctx context.Context, tx storage.Tx, req storage.StockQuery) ([]storage.WarehouseStockRow, error) {
	query := netStockQuery + `
SELECT
	warehouse,
	SUM(bags)::BIGINT,
	SUM(weight)::TEXT,
	SUM(value)::TEXT,
	COUNT(*) FILTER (WHERE weight > 0)
FROM stock
WHERE warehouse <> '' AND ($3 = '' OR warehouse = $3) AND ($4 = '' OR product = $4)
GROUP BY warehouse
HAVING SUM(weight) > 0
ORDER BY SUM(weight) DESC, warehouse ASC
`
	rows, err := tx.Query(ctx, query, dateParam(req.InwardDateFrom), dateParam(req.InwardDateTo), req.Warehouse, req.Product)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]storage.WarehouseStockRow, 0)
	for rows.Next() {
		var row storage.WarehouseStockRow
		var weight, value string
		if err := rows.Scan(&row.Warehouse, &row.Bags, &weight, &value, &row.Products); err != nil {
			return nil, err
		}
		if row.StockKG, err = model.NewDecimalFromString(weight); err != nil {
			return nil, err
		}
		if row.Value, err = model.NewDecimalFromString(value); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *_Storage) QueryStockByProduct(ctx context.Context, tx storage.Tx, req storage.StockQuery) ([]storage.ProductStockRow, error) {
	query := netStockQuery + `
SELECT
	product,
	SUM(bags)::BIGINT,
	SUM(weight)::TEXT,
	SUM(value)::TEXT,
	COUNT(*) FILTER (WHERE weight > 0 AND warehouse <> '')
FROM stock
WHERE product <> '' AND ($3 = '' OR warehouse = $3) AND ($4 = '' OR product = $4)
GROUP BY product
HAVING SUM(weight) > 0
ORDER BY SUM(weight) DESC, product ASC
`
	rows, err := tx.Query(ctx, query, dateParam(req.InwardDateFrom), dateParam(req.InwardDateTo), req.Warehouse, req.Product)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]storage.ProductStockRow, 0)
	for rows.Next() {
		var row storage.ProductStockRow
		var weight, value string
		if err := rows.Scan(&row.Product, &row.Bags, &weight, &value, &row.Warehouses); err != nil {
			return nil, err
		}
		if row.StockKG, err = model.NewDecimalFromString(weight); err != nil {
			return nil, err
		}
		if row.Value, err = model.NewDecimalFromString(value); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// QueryStorageStockByWarehouse is the stock held for rent: aawak net weight minus jawak net weight.
func (s *_Storage) QueryStorageStockByWarehouse(ctx context.Context, tx storage.Tx, req storage.StorageStockQuery) ([]storage.StorageStockRow, error) {
	query := `
WITH inward_data AS (
	SELECT warehouse, SUM(bags) AS bags, SUM(net_weight) AS weight
	FROM inward_aawak
	WHERE ($2 = '' OR commodity = $2)
	GROUP BY warehouse
), outward_data AS (
	SELECT warehouse, SUM(bags) AS bags, SUM(net_weight) AS weight
	FROM outward_jawak
	WHERE ($2 = '' OR commodity = $2)
	GROUP BY warehouse
), stock AS (
	SELECT
		COALESCE(i.warehouse, o.warehouse) AS warehouse,
		(COALESCE(i.bags, 0) - COALESCE(o.bags, 0))::BIGINT AS bags,
		COALESCE(i.weight, 0) - COALESCE(o.weight, 0) AS weight
	FROM inward_data i
	FULL OUTER JOIN outward_data o ON o.warehouse = i.warehouse
)
SELECT warehouse, bags, weight::TEXT
FROM stock
WHERE weight > 0 AND ($1 = '' OR warehouse = $1)
ORDER BY weight DESC, warehouse ASC
`
	rows, err := tx.Query(ctx, query, req.Warehouse, req.Commodity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]storage.StorageStockRow, 0)
	for rows.Next() {
		var row storage.StorageStockRow
		var weight string
		if err := rows.Scan(&row.Warehouse, &row.Bags, &weight); err != nil {
			return nil, err
		}
		if row.StockKG, err = model.NewDecimalFromString(weight); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *_Storage) QueryTallyInwards(ctx context.Context, tx storage.Tx, req storage.TallyQuery) ([]model.Inward, error) {
	query := `
SELECT inward
FROM inward
WHERE
	inward_date BETWEEN $1 AND $2 AND
	($3 = '' OR customer = $3) AND
	($4 = '' OR broker = $4) AND
	($5 = '' OR product = $5) AND
	($6 = '' OR warehouse = $6)
ORDER BY inward_date DESC, id DESC
`
	rows, err := tx.Query(ctx, query, req.DateFrom.GetTime(), req.DateTo.GetTime(), req.Customer, req.Broker, req.Product, req.Warehouse)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Inward, 0)
	for rows.Next() {
		var inward model.Inward
		if err := rows.Scan(&inward); err != nil {
			return nil, err
		}
		result = append(result, inward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *_Storage) QueryTallyOutwards(ctx context.Context, tx storage.Tx, req storage.TallyQuery) ([]model.Outward, error) {
	query := `
SELECT o.outward
FROM outward o
JOIN booking b ON b.id = o.booking_id AND b.booking_type = 'Outward / Sales'
WHERE
	o.outward_date BETWEEN $1 AND $2 AND
	($3 = '' OR o.customer = $3) AND
	($4 = '' OR o.broker = $4) AND
	($5 = '' OR o.product = $5) AND
	($6 = '' OR o.warehouse = $6) AND
	(($7 = '' AND o.doc_status <> 'cancelled') OR o.doc_status = $7)
ORDER BY o.outward_date DESC, o.id DESC
`
	rows, err := tx.Query(ctx, query, req.DateFrom.GetTime(), req.DateTo.GetTime(), req.Customer, req.Broker, req.Product, req.Warehouse, string(req.DocStatus))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Outward, 0)
	for rows.Next() {
		var outward model.Outward
		if err := rows.Scan(&outward); err != nil {
			return nil, err
		}
		result = append(result, outward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

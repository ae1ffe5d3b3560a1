package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

func (s *_Storage) StoreOutward(ctx context.Context, tx storage.Tx, outward model.Outward) error {
	query := `
WITH new_data AS (
	INSERT INTO outward (
		id, "version", firm_id, booking_id, doc_status, customer, broker, product, warehouse,
		outward_date, payment_due_date, payment_status, net_total, amount_paid, gross_weight,
		bags, items_amount, outward, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::TEXT::NUMERIC, $14::TEXT::NUMERIC, $15::TEXT::NUMERIC,
		$16, $17::TEXT::NUMERIC, $18, $19, $20)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		booking_id = excluded.booking_id,
		doc_status = excluded.doc_status,
		customer = excluded.customer,
		broker = excluded.broker,
		product = excluded.product,
		warehouse = excluded.warehouse,
		outward_date = excluded.outward_date,
		payment_due_date = excluded.payment_due_date,
		payment_status = excluded.payment_status,
		net_total = excluded.net_total,
		amount_paid = excluded.amount_paid,
		gross_weight = excluded.gross_weight,
		bags = excluded.bags,
		items_amount = excluded.items_amount,
		outward = excluded.outward,
		updated_at = excluded.updated_at
	RETURNING id, "version", outward, updated_at
)
INSERT INTO outward_history (id, "version", outward, created_at)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		outward.ID,
		outward.Version,
		outward.Firm,
		outward.Booking,
		outward.DocStatus,
		outward.Customer,
		outward.Broker,
		outward.Product,
		outward.Warehouse,
		outward.OutwardDate.GetTime(),
		dateParam(outward.PaymentDueDate),
		lo.Ternary(outward.PaymentStatus == "", model.PaymentStatusPending, outward.PaymentStatus),
		outward.NetTotal.String(),
		outward.AmountPaid.String(),
		outward.GrossWeight().String(),
		outward.Bags(),
		outward.ItemsAmount().String(),
		outward,
		outward.CreatedAt,
		outward.UpdatedAt,
	)
	return err
}

func (s *_Storage) ListOutwards(ctx context.Context, tx storage.Tx, req storage.ListOutwardsRequest) (storage.ListOutwardsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		outward
	FROM outward
	WHERE
		($3 = '' OR firm_id = $3) AND
		($4 = '' OR booking_id = $4) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR id = ANY($5)) AND
		(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR doc_status = ANY($6))
)
SELECT
	total,
	outward
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT outward FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	docStatuses := lo.Map(req.DocStatuses, func(status model.DocStatus, _ int) string { return string(status) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Firm, req.Booking, req.OutwardIDs, docStatuses)
	if err != nil {
		return storage.ListOutwardsResult{}, err
	}
	defer rows.Close()

	result := storage.ListOutwardsResult{}
	for rows.Next() {
		var total *int
		var outward *model.Outward
		if err := rows.Scan(&total, &outward); err != nil {
			return storage.ListOutwardsResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if outward != nil {
			result.Records = append(result.Records, *outward)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListOutwardsResult{}, err
	}

	return result, nil
}

func (s *_Storage) LockOutward(ctx context.Context, tx storage.Tx, outwardID string) (model.Outward, error) {
	const query = `SELECT outward FROM outward WHERE id = $1 FOR UPDATE`
	var outward model.Outward
	if err := tx.QueryRow(ctx, query, outwardID).Scan(&outward); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Outward{}, model.ErrOutwardNotFound
		}
		return model.Outward{}, err
	}
	return outward, nil
}

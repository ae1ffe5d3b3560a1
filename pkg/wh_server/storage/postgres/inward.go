package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

func (s *_Storage) StoreInward(ctx context.Context, tx storage.Tx, inward model.Inward) error {
	query := `
WITH new_data AS (
	INSERT INTO inward (
		id, "version", firm_id, booking_id, customer, broker, product, warehouse,
		inward_date, payment_due_date, payment_status, net_total, amount_paid,
		bags, arrival_weight, sub_total, inward, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::TEXT::NUMERIC, $13::TEXT::NUMERIC,
		$14, $15::TEXT::NUMERIC, $16::TEXT::NUMERIC, $17, $18, $19)
	ON CONFLICT (id) DO UPDATE SET
		"version" = excluded."version",
		booking_id = excluded.booking_id,
		customer = excluded.customer,
		broker = excluded.broker,
		product = excluded.product,
		warehouse = excluded.warehouse,
		inward_date = excluded.inward_date,
		payment_due_date = excluded.payment_due_date,
		payment_status = excluded.payment_status,
		net_total = excluded.net_total,
		amount_paid = excluded.amount_paid,
		bags = excluded.bags,
		arrival_weight = excluded.arrival_weight,
		sub_total = excluded.sub_total,
		inward = excluded.inward,
		updated_at = excluded.updated_at
	RETURNING id, "version", inward, updated_at
)
INSERT INTO inward_history (id, "version", inward, created_at)
SELECT * FROM new_data
`
	_, err := tx.Exec(
		ctx,
		query,
		inward.ID,
		inward.Version,
		inward.Firm,
		inward.Booking,
		inward.Customer,
		inward.Broker,
		inward.Product,
		inward.Warehouse,
		inward.InwardDate.GetTime(),
		dateParam(inward.PaymentDueDate),
		lo.Ternary(inward.PaymentStatus == "", model.PaymentStatusPending, inward.PaymentStatus),
		inward.NetTotal.String(),
		inward.AmountPaid.String(),
		inward.Bags(),
		inward.ArrivalWeight().String(),
		inward.SubTotal.String(),
		inward,
		inward.CreatedAt,
		inward.UpdatedAt,
	)
	return err
}

func (s *_Storage) ListInwards(ctx context.Context, tx storage.Tx, req storage.ListInwardsRequest) (storage.ListInwardsResult, error) {
	query := `
WITH filtered_record AS (
	SELECT
		rec_id,
		inward
	FROM inward
	WHERE
		($3 = '' OR firm_id = $3) AND
		($4 = '' OR booking_id = $4) AND
		(COALESCE(array_length($5::TEXT[], 1), 0) = 0 OR id = ANY($5)) AND
		(COALESCE(array_length($6::TEXT[], 1), 0) = 0 OR payment_status = ANY($6))
)
SELECT
	total,
	inward
FROM (SELECT COUNT(*) AS total FROM filtered_record) AS report
FULL OUTER JOIN (SELECT inward FROM filtered_record ORDER BY rec_id ASC OFFSET $1 LIMIT $2) AS record ON FALSE
`
	statuses := lo.Map(req.PaymentStatuses, func(status model.PaymentStatus, _ int) string { return string(status) })
	rows, err := tx.Query(ctx, query, req.Offset, req.Limit, req.Firm, req.Booking, req.InwardIDs, statuses)
	if err != nil {
		return storage.ListInwardsResult{}, err
	}
	defer rows.Close()

	result := storage.ListInwardsResult{}
	for rows.Next() {
		var total *int
		var inward *model.Inward
		if err := rows.Scan(&total, &inward); err != nil {
			return storage.ListInwardsResult{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if inward != nil {
			result.Records = append(result.Records, *inward)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListInwardsResult{}, err
	}

	return result, nil
}

func (s *_Storage) LockInward(ctx context.Context, tx storage.Tx, inwardID string) (model.Inward, error) {
	const query = `SELECT inward FROM inward WHERE id = $1 FOR UPDATE`
	var inward model.Inward
	if err := tx.QueryRow(ctx, query, inwardID).Scan(&inward); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Inward{}, model.ErrInwardNotFound
		}
		return model.Inward{}, err
	}
	return inward, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func (s *_Storage) StoreInwardAawak(ctx context.Context, tx storage.Tx, aawak model.InwardAawak) error {
	query := `
INSERT INTO inward_aawak (id, firm_id, lot_number, warehouse, commodity, bags, net_weight, aawak, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::TEXT::NUMERIC, $8, $9)
`
	_, err := tx.Exec(
		ctx,
		query,
		aawak.ID,
		aawak.Firm,
		aawak.LotNumber,
		aawak.Warehouse,
		aawak.Commodity,
		aawak.Bags,
		aawak.NetWeight.String(),
		aawak,
		aawak.CreatedAt,
	)
	return err
}

func (s *_Storage) GetInwardAawak(ctx context.Context, tx storage.Tx, id string) (model.InwardAawak, error) {
	const query = `SELECT aawak FROM inward_aawak WHERE id = $1`
	var aawak model.InwardAawak
	if err := tx.QueryRow(ctx, query, id).Scan(&aawak); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.InwardAawak{}, fmt.Errorf("%s: %w", id, model.ErrInwardAawakNotFound)
		}
		return model.InwardAawak{}, err
	}
	return aawak, nil
}

func (s *_Storage) StoreOutwardJawak(ctx context.Context, tx storage.Tx, jawak model.OutwardJawak) error {
	query := `
INSERT INTO outward_jawak (id, firm_id, lot_number, inward_aawak_id, warehouse, commodity, bags, net_weight, jawak, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::TEXT::NUMERIC, $9, $10)
`
	_, err := tx.Exec(
		ctx,
		query,
		jawak.ID,
		jawak.Firm,
		jawak.LotNumber,
		jawak.InwardAawak,
		jawak.Warehouse,
		jawak.Commodity,
		jawak.Bags,
		jawak.NetWeight.String(),
		jawak,
		jawak.CreatedAt,
	)
	return err
}

// ListOutwardJawaks returns the jawaks in the order of ids. It fails on the first id that does not exist.
func (s *_Storage) ListOutwardJawaks(ctx context.Context, tx storage.Tx, ids []string) ([]model.OutwardJawak, error) {
	const query = `SELECT id, jawak FROM outward_jawak WHERE id = ANY($1)`
	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]model.OutwardJawak, len(ids))
	for rows.Next() {
		var id string
		var jawak model.OutwardJawak
		if err := rows.Scan(&id, &jawak); err != nil {
			return nil, err
		}
		found[id] = jawak
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]model.OutwardJawak, 0, len(ids))
	for _, id := range ids {
		jawak, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%s: %w", id, model.ErrOutwardJawakNotFound)
		}
		result = append(result, jawak)
	}
	return result, nil
}

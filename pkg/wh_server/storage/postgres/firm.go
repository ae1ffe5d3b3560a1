package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func (s *_Storage) StoreFirm(ctx context.Context, tx storage.Tx, firm model.Firm) error {
	const query = `
INSERT INTO firm (id, "name", firm, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (id) DO UPDATE SET
	"name" = excluded."name",
	firm = excluded.firm,
	updated_at = excluded.updated_at
`
	_, err := tx.Exec(ctx, query, firm.ID, firm.Name, firm, firm.CreatedAt)
	return err
}

func (s *_Storage) GetFirm(ctx context.Context, tx storage.Tx, id string) (model.Firm, error) {
	const query = `SELECT firm FROM firm WHERE id = $1`
	var firm model.Firm
	if err := tx.QueryRow(ctx, query, id).Scan(&firm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Firm{}, model.ErrFirmNotFound
		}
		return model.Firm{}, err
	}
	return firm, nil
}

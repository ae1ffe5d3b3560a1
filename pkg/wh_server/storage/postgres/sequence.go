package postgres

import (
	"context"
	"fmt"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func (s *_Storage) IncrementSequence(ctx context.Context, tx storage.Tx, ts int64, key storage.SequenceKey) (int64, error) {
	const query = `
INSERT INTO naming_series (prefix, firm_id, "year", current_value, created_at, updated_at)
VALUES ($1, $2, $3, 1, $4, $4)
ON CONFLICT (prefix, firm_id, "year") DO UPDATE SET
	current_value = naming_series.current_value + 1,
	updated_at = EXCLUDED.updated_at
RETURNING current_value
`
	var current int64
	if err := tx.QueryRow(ctx, query, key.Prefix, key.Firm, key.Year, ts).Scan(&current); err != nil {
		return 0, fmt.Errorf("%s: %s%w", key.Prefix, err.Error(), model.ErrSequenceAllocation)
	}
	return current, nil
}

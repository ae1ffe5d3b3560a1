// Package firm manages the firms that own document numbering.
package firm

import (
	"context"
	"database/sql"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

type Manager interface {
	CreateFirm(ctx context.Context, ts int64, req CreateFirmRequest) (model.Firm, error)
	GetFirm(ctx context.Context, id string) (model.Firm, error)
}

type CreateFirmRequest struct {
	Requester string `json:"requester"`
	Name      string `json:"name"`
}

type _Manager struct {
	storage   storage.FirmStorage
	generator naming.Generator
}

func NewManager(s storage.FirmStorage, generator naming.Generator) Manager {
	return &_Manager{
		storage:   s,
		generator: generator,
	}
}

func ValidateCreateFirmRequest(req CreateFirmRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func (m *_Manager) CreateFirm(ctx context.Context, ts int64, req CreateFirmRequest) (model.Firm, error) {
	if err := ValidateCreateFirmRequest(req); err != nil {
		return model.Firm{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return model.Firm{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	name, err := m.generator.NextSeries(ctx, tx, ts, naming.PrefixFirm)
	if err != nil {
		return model.Firm{}, err
	}

	firm := model.Firm{
		ID:        name.ID,
		Name:      req.Name,
		CreatedAt: ts,
		CreatedBy: req.Requester,
	}
	if err := m.storage.StoreFirm(ctx, tx, firm); err != nil {
		return model.Firm{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Firm{}, err
	}

	return firm, nil
}

func (m *_Manager) GetFirm(ctx context.Context, id string) (model.Firm, error) {
	if id == "" {
		return model.Firm{}, fmt.Errorf("id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.Firm{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.GetFirm(ctx, tx, id)
}

// Package receipt issues the warehouse-rent receipts: inward aawak when goods enter storage and
// outward jawak when they leave.
package receipt

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

type Manager interface {
	CreateInwardAawak(ctx context.Context, ts int64, req CreateInwardAawakRequest) (model.InwardAawak, error)
	CreateOutwardJawak(ctx context.Context, ts int64, req CreateOutwardJawakRequest) (model.OutwardJawak, error)
	GetInwardAawak(ctx context.Context, id string) (model.InwardAawak, error)
	GetOutwardJawak(ctx context.Context, id string) (model.OutwardJawak, error)

	// ListOutwardJawaks returns the jawaks in the order of ids, for printing several receipts at once.
	ListOutwardJawaks(ctx context.Context, ids []string) ([]model.OutwardJawak, error)
}

type ChamberAllocationRequest struct {
	Floor          string        `json:"floor"`
	Chamber        string        `json:"chamber"`
	Bags           int64         `json:"bags"`
	AllocationDate *model.Date   `json:"allocation_date,omitempty"`
	Weight         model.Decimal `json:"weight"`
}

type CreateInwardAawakRequest struct {
	Requester string `json:"requester"`
	Firm      string `json:"firm"`

	Customer   string        `json:"customer"`
	Commodity  string        `json:"commodity"`
	Warehouse  string        `json:"warehouse"`
	InwardDate model.Date    `json:"inward_date"`
	Bags       int64         `json:"bags"`
	NetWeight  model.Decimal `json:"net_weight"`

	ChamberAllocations []ChamberAllocationRequest `json:"chamber_allocations"`
}

type CreateOutwardJawakRequest struct {
	Requester   string `json:"requester"`
	Firm        string `json:"firm"`
	InwardAawak string `json:"inward_aawak"`

	Customer    string        `json:"customer"`
	Commodity   string        `json:"commodity"`
	Warehouse   string        `json:"warehouse"`
	OutwardDate model.Date    `json:"outward_date"`
	Bags        int64         `json:"bags"`
	NetWeight   model.Decimal `json:"net_weight"`
	RentAmount  model.Decimal `json:"rent_amount"`
}

type _Manager struct {
	storage   storage.ReceiptStorage
	firms     storage.FirmStorage
	generator naming.Generator
}

func NewManager(s storage.ReceiptStorage, firms storage.FirmStorage, generator naming.Generator) Manager {
	return &_Manager{
		storage:   s,
		firms:     firms,
		generator: generator,
	}
}

func (m *_Manager) CreateInwardAawak(ctx context.Context, ts int64, req CreateInwardAawakRequest) (model.InwardAawak, error) {
	if err := ValidateCreateInwardAawakRequest(req); err != nil {
		return model.InwardAawak{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return model.InwardAawak{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := m.firms.GetFirm(ctx, tx, req.Firm); err != nil {
		return model.InwardAawak{}, err
	}

	name, err := m.generator.Next(ctx, tx, ts, naming.PrefixInwardAawak, req.Firm)
	if err != nil {
		return model.InwardAawak{}, err
	}

	aawak := model.InwardAawak{
		ID:         name.ID,
		LotNumber:  name.LotNumber,
		Firm:       req.Firm,
		Customer:   req.Customer,
		Commodity:  req.Commodity,
		Warehouse:  req.Warehouse,
		InwardDate: req.InwardDate,
		Bags:       req.Bags,
		NetWeight:  req.NetWeight,
		ChamberAllocations: lo.Map(req.ChamberAllocations, func(a ChamberAllocationRequest, _ int) model.ChamberAllocation {
			return model.ChamberAllocation{
				Floor:          a.Floor,
				Chamber:        a.Chamber,
				Bags:           a.Bags,
				AllocationDate: a.AllocationDate,
				ValidTo:        ValidTo(a.AllocationDate),
				Weight:         a.Weight,
			}
		}),
		CreatedAt: ts,
		CreatedBy: req.Requester,
	}

	if err := m.storage.StoreInwardAawak(ctx, tx, aawak); err != nil {
		return model.InwardAawak{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.InwardAawak{}, err
	}

	return aawak, nil
}

func (m *_Manager) CreateOutwardJawak(ctx context.Context, ts int64, req CreateOutwardJawakRequest) (model.OutwardJawak, error) {
	if err := ValidateCreateOutwardJawakRequest(req); err != nil {
		return model.OutwardJawak{}, err
	}

	tx, ctx, err := m.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelReadCommitted))
	if err != nil {
		return model.OutwardJawak{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	jawak := model.OutwardJawak{
		Firm:        req.Firm,
		InwardAawak: req.InwardAawak,
		Customer:    req.Customer,
		Commodity:   req.Commodity,
		Warehouse:   req.Warehouse,
		OutwardDate: req.OutwardDate,
		Bags:        req.Bags,
		NetWeight:   req.NetWeight,
		RentAmount:  req.RentAmount,
		CreatedAt:   ts,
		CreatedBy:   req.Requester,
	}

	if req.InwardAawak != "" {
		aawak, err := m.storage.GetInwardAawak(ctx, tx, req.InwardAawak)
		if err != nil {
			return model.OutwardJawak{}, err
		}
		jawak.Firm = lo.Ternary(jawak.Firm == "", aawak.Firm, jawak.Firm)
		jawak.Customer = lo.Ternary(jawak.Customer == "", aawak.Customer, jawak.Customer)
		jawak.Commodity = lo.Ternary(jawak.Commodity == "", aawak.Commodity, jawak.Commodity)
		jawak.Warehouse = lo.Ternary(jawak.Warehouse == "", aawak.Warehouse, jawak.Warehouse)
	}
	if jawak.Warehouse == "" || jawak.Commodity == "" {
		return model.OutwardJawak{}, fmt.Errorf("warehouse and commodity are required%w", model.ErrInvalidParameter)
	}
	if jawak.Firm != "" {
		if _, err := m.firms.GetFirm(ctx, tx, jawak.Firm); err != nil {
			return model.OutwardJawak{}, err
		}
	}

	name, err := m.generator.Next(ctx, tx, ts, naming.PrefixOutwardJawak, jawak.Firm)
	if err != nil {
		return model.OutwardJawak{}, err
	}
	jawak.ID = name.ID
	jawak.LotNumber = name.LotNumber

	if err := m.storage.StoreOutwardJawak(ctx, tx, jawak); err != nil {
		return model.OutwardJawak{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.OutwardJawak{}, err
	}

	return jawak, nil
}

func (m *_Manager) GetInwardAawak(ctx context.Context, id string) (model.InwardAawak, error) {
	if id == "" {
		return model.InwardAawak{}, fmt.Errorf("id is required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return model.InwardAawak{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.GetInwardAawak(ctx, tx, id)
}

func (m *_Manager) GetOutwardJawak(ctx context.Context, id string) (model.OutwardJawak, error) {
	jawaks, err := m.ListOutwardJawaks(ctx, []string{id})
	if err != nil {
		return model.OutwardJawak{}, err
	}
	return jawaks[0], nil
}

func (m *_Manager) ListOutwardJawaks(ctx context.Context, ids []string) ([]model.OutwardJawak, error) {
	if len(ids) == 0 || lo.Contains(ids, "") {
		return nil, fmt.Errorf("ids are required%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := m.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return m.storage.ListOutwardJawaks(ctx, tx, lo.Uniq(ids))
}

// ValidTo is the last day a chamber allocated on allocationDate may be used.
func ValidTo(allocationDate *model.Date) *model.Date {
	if allocationDate == nil || allocationDate.IsZero() {
		return nil
	}
	validTo := allocationDate.AddMonths(model.ChamberAllocationValidity)
	return &validTo
}

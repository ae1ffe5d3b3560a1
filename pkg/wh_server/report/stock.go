package report

import (
	"context"
	"fmt"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Period selects the inward dates counted by the stock reports.
type Period string

const (
	PeriodAll          Period = ""
	PeriodToday        Period = "today"
	PeriodYesterday    Period = "yesterday"
	PeriodLast7Days    Period = "last_7_days"
	PeriodCurrentMonth Period = "current_month"
	PeriodLastMonth    Period = "last_month"
	PeriodCustom       Period = "custom" // DateFrom and DateTo, either may be open.
)

type StockFilter struct {
	Warehouse string      `json:"warehouse"`
	Product   string      `json:"product"`
	Period    Period      `json:"period"`
	DateFrom  *model.Date `json:"date_from"`
	DateTo    *model.Date `json:"date_to"`
}

// WarehouseStock is the net stock of a warehouse: everything received by inwards less everything
// dispatched by outwards that are not cancelled.
type WarehouseStock struct {
	Warehouse string        `json:"warehouse"`
	Products  int64         `json:"total_products"`
	Bags      int64         `json:"total_bags"`
	StockKG   model.Decimal `json:"total_stock_kg"`
	StockTons model.Decimal `json:"total_stock_tons"`
	Value     model.Decimal `json:"total_value"`
}

type ProductStock struct {
	Product    string        `json:"product"`
	Warehouses int64         `json:"total_warehouses"`
	Bags       int64         `json:"total_bags"`
	StockKG    model.Decimal `json:"total_stock_kg"`
	StockTons  model.Decimal `json:"total_stock_tons"`
	Value      model.Decimal `json:"total_value"`
}

// StorageStockFilter filters the stock held for rent, built from the aawak and jawak receipts.
type StorageStockFilter struct {
	Warehouse string `json:"warehouse"`
	Commodity string `json:"commodity"`
}

type StorageStock struct {
	Warehouse string        `json:"warehouse"`
	Bags      int64         `json:"bags"`
	StockKG   model.Decimal `json:"stock_kg"`
	StockTons model.Decimal `json:"stock_tons"`
}

func ValidateStockFilter(filter StockFilter) error {
	err := validation.ValidateStruct(&filter,
		validation.Field(&filter.Period, validation.In(
			PeriodToday,
			PeriodYesterday,
			PeriodLast7Days,
			PeriodCurrentMonth,
			PeriodLastMonth,
			PeriodCustom,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	if filter.Period != PeriodCustom && (filter.DateFrom != nil || filter.DateTo != nil) {
		return fmt.Errorf("date_from and date_to need the custom period%w", model.ErrInvalidParameter)
	}
	return validateDateRange(filter.DateFrom, filter.DateTo)
}

// Range resolves the period to an inclusive inward date range. A nil end is open.
func (p Period) Range(today model.Date, from, to *model.Date) (*model.Date, *model.Date) {
	switch p {
	case PeriodToday:
		return &today, &today
	case PeriodYesterday:
		yesterday := today.AddDays(-1)
		return &yesterday, &yesterday
	case PeriodLast7Days:
		weekAgo := today.AddDays(-7)
		return &weekAgo, &today
	case PeriodCurrentMonth:
		first := today.AddDays(1 - today.GetTime().Day())
		return &first, &today
	case PeriodLastMonth:
		firstOfCurrent := today.AddDays(1 - today.GetTime().Day())
		first := firstOfCurrent.AddMonths(-1)
		last := firstOfCurrent.AddDays(-1)
		return &first, &last
	case PeriodCustom:
		return from, to
	default:
		return nil, nil
	}
}

func stockQuery(ts int64, filter StockFilter) storage.StockQuery {
	from, to := filter.Period.Range(model.NewDate(time.Unix(ts, 0)), filter.DateFrom, filter.DateTo)
	return storage.StockQuery{
		Warehouse:      filter.Warehouse,
		Product:        filter.Product,
		InwardDateFrom: from,
		InwardDateTo:   to,
	}
}

func (r *_Reporter) StockByWarehouse(ctx context.Context, ts int64, filter StockFilter) ([]WarehouseStock, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.StockByWarehouse",
		trace.WithAttributes(attribute.String("warehouse", filter.Warehouse), attribute.String("period", string(filter.Period))))
	defer span.End()

	if err := ValidateStockFilter(filter); err != nil {
		return nil, err
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := r.storage.QueryStockByWarehouse(ctx, tx, stockQuery(ts, filter))
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row storage.WarehouseStockRow, _ int) WarehouseStock {
		return WarehouseStock{
			Warehouse: row.Warehouse,
			Products:  row.Products,
			Bags:      row.Bags,
			StockKG:   row.StockKG.Round(2),
			StockTons: tons(row.StockKG),
			Value:     row.Value.Round(2),
		}
	}), nil
}

func (r *_Reporter) StockByProduct(ctx context.Context, ts int64, filter StockFilter) ([]ProductStock, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.StockByProduct",
		trace.WithAttributes(attribute.String("product", filter.Product), attribute.String("period", string(filter.Period))))
	defer span.End()

	if err := ValidateStockFilter(filter); err != nil {
		return nil, err
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := r.storage.QueryStockByProduct(ctx, tx, stockQuery(ts, filter))
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row storage.ProductStockRow, _ int) ProductStock {
		return ProductStock{
			Product:    row.Product,
			Warehouses: row.Warehouses,
			Bags:       row.Bags,
			StockKG:    row.StockKG.Round(2),
			StockTons:  tons(row.StockKG),
			Value:      row.Value.Round(2),
		}
	}), nil
}

func (r *_Reporter) StorageStockByWarehouse(ctx context.Context, filter StorageStockFilter) ([]StorageStock, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.StorageStockByWarehouse",
		trace.WithAttributes(attribute.String("warehouse", filter.Warehouse), attribute.String("commodity", filter.Commodity)))
	defer span.End()

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := r.storage.QueryStorageStockByWarehouse(ctx, tx, storage.StorageStockQuery{
		Warehouse: filter.Warehouse,
		Commodity: filter.Commodity,
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row storage.StorageStockRow, _ int) StorageStock {
		return StorageStock{
			Warehouse: row.Warehouse,
			Bags:      row.Bags,
			StockKG:   row.StockKG,
			StockTons: tons(row.StockKG),
		}
	}), nil
}

func tons(kg model.Decimal) model.Decimal {
	return kg.Div(model.NewDecimalFromInt(1000)).Round(3)
}

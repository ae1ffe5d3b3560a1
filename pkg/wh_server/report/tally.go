package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
)

const (
	VoucherTypePurchase = "Purchase Import"
	VoucherTypeSales    = "Sales Export"
)

// TallyFilter selects the documents exported to Tally. Without dates the last month up to today
// is exported.
type TallyFilter struct {
	DateFrom  *model.Date     `json:"from_date"`
	DateTo    *model.Date     `json:"to_date"`
	Customer  string          `json:"customer"`
	Broker    string          `json:"broker"`
	Product   string          `json:"product"`
	Warehouse string          `json:"warehouse"`
	DocStatus model.DocStatus `json:"outward_status"` // Outwards only. Empty exports all but the cancelled ones.
}

// TallyInward is one purchase voucher. Rate is per quintal of arrival weight.
type TallyInward struct {
	SupplierAccount string        `json:"supplier_account"`
	VoucherType     string        `json:"voucher_type"`
	Product         string        `json:"product_name"`
	Warehouse       string        `json:"warehouse_name"`
	Quantity        model.Decimal `json:"quantity"`
	Rate            model.Decimal `json:"rate"`
	Amount          model.Decimal `json:"amount"`
	CGSTPercent     model.Decimal `json:"cgst_percent"`
	CGSTAmount      model.Decimal `json:"cgst_amount"`
	SGSTPercent     model.Decimal `json:"sgst_percent"`
	SGSTAmount      model.Decimal `json:"sgst_amount"`
	IGSTPercent     model.Decimal `json:"igst_percent"`
	IGSTAmount      model.Decimal `json:"igst_amount"`
	VoucherNo       string        `json:"voucher_no"`
	InwardDate      model.Date    `json:"inward_date"`
	Vehicle         string        `json:"vehicle"`
	UOM             string        `json:"uom"`
}

// TallyOutward is one sales voucher. Rate is per kilogram of gross weight.
type TallyOutward struct {
	CustomerAccount string          `json:"customer_account"`
	VoucherType     string          `json:"voucher_type"`
	Broker          string          `json:"broker"`
	Product         string          `json:"product_name"`
	Warehouse       string          `json:"warehouse_name"`
	Quantity        model.Decimal   `json:"quantity"`
	Rate            model.Decimal   `json:"rate"`
	Amount          model.Decimal   `json:"amount"`
	VoucherNo       string          `json:"voucher_no"`
	OutwardDate     model.Date      `json:"outward_date"`
	Status          model.DocStatus `json:"status"`
	Vehicle         string          `json:"vehicle"`
	UOM             string          `json:"uom"`
}

func ValidateTallyFilter(filter TallyFilter) error {
	err := validation.ValidateStruct(&filter,
		validation.Field(&filter.DocStatus, validation.In(
			model.DocStatusDraft,
			model.DocStatusSubmitted,
			model.DocStatusCancelled,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return validateDateRange(filter.DateFrom, filter.DateTo)
}

func tallyQuery(ts int64, filter TallyFilter) storage.TallyQuery {
	today := model.NewDate(time.Unix(ts, 0))
	query := storage.TallyQuery{
		DateFrom:  today.AddMonths(-1),
		DateTo:    today,
		Customer:  filter.Customer,
		Broker:    filter.Broker,
		Product:   filter.Product,
		Warehouse: filter.Warehouse,
		DocStatus: filter.DocStatus,
	}
	if filter.DateFrom != nil {
		query.DateFrom = *filter.DateFrom
	}
	if filter.DateTo != nil {
		query.DateTo = *filter.DateTo
	}
	return query
}

func (r *_Reporter) TallyInwards(ctx context.Context, ts int64, filter TallyFilter) ([]TallyInward, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.TallyInwards")
	defer span.End()

	if err := ValidateTallyFilter(filter); err != nil {
		return nil, err
	}
	if filter.DocStatus != "" {
		return nil, fmt.Errorf("outward_status does not apply to inwards%w", model.ErrInvalidParameter)
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inwards, err := r.storage.QueryTallyInwards(ctx, tx, tallyQuery(ts, filter))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(inwards)))

	hundred := model.NewDecimalFromInt(100)
	return lo.Map(inwards, func(inward model.Inward, _ int) TallyInward {
		weight := inward.ArrivalWeight()
		rate := model.Decimal{}
		if !weight.IsZero() {
			rate = inward.SubTotal.Div(weight).Mul(hundred).Round(2)
		}
		return TallyInward{
			SupplierAccount: inward.Customer,
			VoucherType:     VoucherTypePurchase,
			Product:         inward.Product,
			Warehouse:       inward.Warehouse,
			Quantity:        weight.Round(2),
			Rate:            rate,
			Amount:          inward.SubTotal.Round(2),
			CGSTPercent:     inward.CGSTPercent.Round(2),
			CGSTAmount:      inward.CGSTAmount.Round(2),
			SGSTPercent:     inward.SGSTPercent.Round(2),
			SGSTAmount:      inward.SGSTAmount.Round(2),
			IGSTPercent:     inward.IGSTPercent.Round(2),
			IGSTAmount:      inward.IGSTAmount.Round(2),
			VoucherNo:       inward.ID,
			InwardDate:      inward.InwardDate,
			Vehicle:         inward.Vehicle,
			UOM:             "nos",
		}
	}), nil
}

func (r *_Reporter) TallyOutwards(ctx context.Context, ts int64, filter TallyFilter) ([]TallyOutward, error) {
	ctx, span := otlp_util.Start(ctx, "wh_server/report/Reporter.TallyOutwards")
	defer span.End()

	if err := ValidateTallyFilter(filter); err != nil {
		return nil, err
	}

	tx, ctx, err := r.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outwards, err := r.storage.QueryTallyOutwards(ctx, tx, tallyQuery(ts, filter))
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(outwards)))

	return lo.Map(outwards, func(outward model.Outward, _ int) TallyOutward {
		weight := outward.GrossWeight()
		rate := model.Decimal{}
		if !weight.IsZero() {
			rate = outward.ItemsAmount().Div(weight).Round(2)
		}
		return TallyOutward{
			CustomerAccount: outward.Customer,
			VoucherType:     VoucherTypeSales,
			Broker:          outward.Broker,
			Product:         outward.Product,
			Warehouse:       outward.Warehouse,
			Quantity:        weight.Round(2),
			Rate:            rate,
			Amount:          outward.NetTotal.Round(2),
			VoucherNo:       outward.ID,
			OutwardDate:     outward.OutwardDate,
			Status:          outward.DocStatus,
			Vehicle:         outward.Vehicle,
			UOM:             "Kg",
		}
	}), nil
}

var tallyInwardHeader = []string{
	"Supplier A/c", "Voucher Type", "Product Name", "Warehouse", "Quantity", "Rate", "Amount",
	"CGST %", "CGST", "SGST %", "SGST", "IGST %", "IGST",
	"Voucher No", "Inward Date", "Vehicle", "UNIT",
}

var tallyOutwardHeader = []string{
	"Customer A/c", "Voucher Type", "Broker", "Product Name", "Warehouse", "Quantity", "Rate", "Amount",
	"Voucher No", "Outward Date", "Status", "Vehicle", "UNIT",
}

// WriteTallyInwardsCSV writes rows in the column layout of the Tally purchase import.
func WriteTallyInwardsCSV(w io.Writer, rows []TallyInward) error {
	return writeCSV(w, tallyInwardHeader, lo.Map(rows, func(row TallyInward, _ int) []string {
		return []string{
			row.SupplierAccount,
			row.VoucherType,
			row.Product,
			row.Warehouse,
			fixed2(row.Quantity),
			fixed2(row.Rate),
			fixed2(row.Amount),
			fixed2(row.CGSTPercent),
			fixed2(row.CGSTAmount),
			fixed2(row.SGSTPercent),
			fixed2(row.SGSTAmount),
			fixed2(row.IGSTPercent),
			fixed2(row.IGSTAmount),
			row.VoucherNo,
			row.InwardDate.String(),
			row.Vehicle,
			row.UOM,
		}
	}))
}

// WriteTallyOutwardsCSV writes rows in the column layout of the Tally sales import.
func WriteTallyOutwardsCSV(w io.Writer, rows []TallyOutward) error {
	return writeCSV(w, tallyOutwardHeader, lo.Map(rows, func(row TallyOutward, _ int) []string {
		return []string{
			row.CustomerAccount,
			row.VoucherType,
			row.Broker,
			row.Product,
			row.Warehouse,
			fixed2(row.Quantity),
			fixed2(row.Rate),
			fixed2(row.Amount),
			row.VoucherNo,
			row.OutwardDate.String(),
			string(row.Status),
			row.Vehicle,
			row.UOM,
		}
	}))
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

// fixed2 formats an amount with exactly two decimals, the way Tally expects it.
func fixed2(d model.Decimal) string {
	return d.StringFixed(2)
}

package postgres_test

import (
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage/postgres"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ReportStorageTestSuite struct {
	BaseTestSuite
	storage whStorage
}

func TestReportStorage(t *testing.T) {
	suite.Run(t, new(ReportStorageTestSuite))
}

func (s *ReportStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)

	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/report"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *ReportStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func date(d string) *model.Date {
	return util.Ptr(model.NewDateFromStringNoError(d))
}

func (s *ReportStorageTestSuite) TestQueryPendingBookings() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	rows, err := s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{})
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Assert().Equal([]string{"SAUDA-0001-2025-0001", "SAUDA-2025-0001", "SAUDA-0001-2025-0002"},
		lo.Map(rows, func(row storage.PendingBookingRow, _ int) string { return row.BookingID }))

	b1 := rows[1]
	s.Assert().Equal("1000", b1.ExpectedQuantity.String())
	s.Assert().Equal("500", b1.PendingQuantity.String())
	s.Assert().Equal("25000", b1.TotalAmount.String())
	s.Assert().Equal("2025-03-01", b1.BookingDate.String())
	s.Assert().Equal(date("2025-04-10"), b1.DeliveryEndDate)
	s.Assert().Equal(date("2025-04-15"), b1.PaymentEndDate)
	s.Assert().Equal(model.BookingStatusPending, b1.Status)
	s.Assert().Nil(rows[2].DeliveryEndDate)

	rows, err = s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{Customer: "CUST-002"})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("SAUDA-0001-2025-0001", rows[0].BookingID)
	s.Assert().Equal("300", rows[0].PendingQuantity.String())

	rows, err = s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{Status: model.BookingStatusCancelled})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("SAUDA-2025-0003", rows[0].BookingID)

	rows, err = s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{DeliveryDateOn: date("2025-04-10")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("SAUDA-2025-0001", rows[0].BookingID)

	rows, err = s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{DeliveryDateFrom: date("2025-04-06"), DeliveryDateTo: date("2025-04-30")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("SAUDA-2025-0001", rows[0].BookingID)

	rows, err = s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{PaymentDateFrom: date("2025-04-20")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("SAUDA-0001-2025-0001", rows[0].BookingID)

	rows, err = s.storage.QueryPendingBookings(ctx, tx, storage.PendingBookingsQuery{Warehouse: "WH-East"})
	s.Require().NoError(err)
	s.Assert().Empty(rows)
}

func (s *ReportStorageTestSuite) TestQueryPaymentPendingOutwards() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	unsettled := []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing}
	rows, err := s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: unsettled})
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Assert().Equal("OUT-2025-0004", rows[0].ID)
	s.Assert().Equal("SAUDA-2025-0002", rows[0].BookingID)
	s.Assert().Equal("2000", rows[0].NetTotal.String())
	s.Assert().Equal("0", rows[0].AmountPaid.String())
	s.Assert().Equal(date("2025-04-08"), rows[0].PaymentDueDate)
	s.Assert().Equal("2025-04-03", rows[0].Date.String())
	s.Assert().Equal(model.PaymentStatusPending, rows[0].PaymentStatus)

	s.Assert().Equal("OUT-2025-0001", rows[1].ID)
	s.Assert().Equal("200", rows[1].AmountPaid.String())

	// No due date sorts last.
	s.Assert().Equal("OUT-2025-0005", rows[2].ID)
	s.Assert().Equal(model.PaymentStatusProcessing, rows[2].PaymentStatus)
	s.Assert().Nil(rows[2].PaymentDueDate)

	rows, err = s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: []model.PaymentStatus{model.PaymentStatusPending}})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"OUT-2025-0004", "OUT-2025-0001"}, lo.Map(rows, func(row storage.PaymentPendingRow, _ int) string { return row.ID }))

	rows, err = s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: []model.PaymentStatus{model.PaymentStatusFailed}})
	s.Require().NoError(err)
	s.Assert().Empty(rows)

	rows, err = s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: unsettled, PaymentDueFrom: date("2025-04-10")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("OUT-2025-0001", rows[0].ID)

	rows, err = s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: unsettled, PaymentDueOn: date("2025-04-08")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("OUT-2025-0004", rows[0].ID)

	rows, err = s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: unsettled, Customer: "CUST-002", Product: "Rice"})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Assert().Equal("OUT-2025-0004", rows[0].ID)

	rows, err = s.storage.QueryPaymentPendingOutwards(ctx, tx, storage.PaymentPendingQuery{Statuses: unsettled, Broker: "BRK-03"})
	s.Require().NoError(err)
	s.Assert().Empty(rows)
}

func (s *ReportStorageTestSuite) TestQueryPaymentPendingInwards() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	pending := []model.PaymentStatus{model.PaymentStatusPending}
	rows, err := s.storage.QueryPaymentPendingInwards(ctx, tx, storage.PaymentPendingQuery{Statuses: pending})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	s.Assert().Equal("IN-0001-2025-0001", rows[0].ID)
	s.Assert().Equal("SAUDA-0001-2025-0002", rows[0].BookingID)
	s.Assert().Equal("CUST-003", rows[0].Customer)
	s.Assert().Equal("2025-03-25", rows[0].Date.String())
	s.Assert().Equal("10500", rows[0].NetTotal.String())
	s.Assert().Equal("4000", rows[0].AmountPaid.String())
	s.Assert().Equal(date("2025-04-10"), rows[0].PaymentDueDate)
	s.Assert().Equal("NEFT 42", rows[0].LatestPaymentNote)

	s.Assert().Equal("IN-2025-0001", rows[1].ID)
	s.Assert().Empty(rows[1].LatestPaymentNote)

	rows, err = s.storage.QueryPaymentPendingInwards(ctx, tx, storage.PaymentPendingQuery{Statuses: []model.PaymentStatus{model.PaymentStatusFailed}})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("IN-2025-0002", rows[0].ID)
	s.Assert().Equal(model.PaymentStatusFailed, rows[0].PaymentStatus)

	rows, err = s.storage.QueryPaymentPendingInwards(ctx, tx, storage.PaymentPendingQuery{Statuses: pending, PaymentDueOn: date("2025-04-20")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("IN-2025-0001", rows[0].ID)

	rows, err = s.storage.QueryPaymentPendingInwards(ctx, tx, storage.PaymentPendingQuery{Statuses: pending, Warehouse: "WH-South", PaymentDueTo: date("2025-04-30")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("IN-0001-2025-0001", rows[0].ID)
}

func (s *ReportStorageTestSuite) TestQueryStockByWarehouse() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	rows, err := s.storage.QueryStockByWarehouse(ctx, tx, storage.StockQuery{})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	// Wheat: 10500 kg received, 550 kg dispatched; the cancelled outward is ignored.
	s.Assert().Equal("WH-North", rows[0].Warehouse)
	s.Assert().Equal(int64(199), rows[0].Bags)
	s.Assert().Equal("9950", rows[0].StockKG.String())
	s.Assert().Equal("28900", rows[0].Value.String())
	s.Assert().Equal(int64(1), rows[0].Products)

	// Maize 5000 kg less 500 kg of rice dispatched without any inward.
	s.Assert().Equal("WH-South", rows[1].Warehouse)
	s.Assert().Equal(int64(90), rows[1].Bags)
	s.Assert().Equal("4500", rows[1].StockKG.String())
	s.Assert().Equal("7600", rows[1].Value.String())
	s.Assert().Equal(int64(1), rows[1].Products)

	rows, err = s.storage.QueryStockByWarehouse(ctx, tx, storage.StockQuery{Product: "Maize"})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("WH-South", rows[0].Warehouse)
	s.Assert().Equal("5000", rows[0].StockKG.String())

	rows, err = s.storage.QueryStockByWarehouse(ctx, tx, storage.StockQuery{Product: "Rice"})
	s.Require().NoError(err)
	s.Assert().Empty(rows)

	rows, err = s.storage.QueryStockByWarehouse(ctx, tx, storage.StockQuery{InwardDateFrom: date("2025-04-01"), InwardDateTo: date("2025-04-30")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("WH-North", rows[0].Warehouse)

	rows, err = s.storage.QueryStockByWarehouse(ctx, tx, storage.StockQuery{Warehouse: "WH-East"})
	s.Require().NoError(err)
	s.Assert().Empty(rows)
}

func (s *ReportStorageTestSuite) TestQueryStockByProduct() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	rows, err := s.storage.QueryStockByProduct(ctx, tx, storage.StockQuery{})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Assert().Equal("Wheat", rows[0].Product)
	s.Assert().Equal("9950", rows[0].StockKG.String())
	s.Assert().Equal(int64(1), rows[0].Warehouses)
	s.Assert().Equal("Maize", rows[1].Product)
	s.Assert().Equal(int64(100), rows[1].Bags)
	s.Assert().Equal("5000", rows[1].StockKG.String())
	s.Assert().Equal("9700", rows[1].Value.String())

	rows, err = s.storage.QueryStockByProduct(ctx, tx, storage.StockQuery{Warehouse: "WH-North"})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("Wheat", rows[0].Product)

	rows, err = s.storage.QueryStockByProduct(ctx, tx, storage.StockQuery{InwardDateTo: date("2025-03-31")})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("Maize", rows[0].Product)
}

func (s *ReportStorageTestSuite) TestQueryStorageStockByWarehouse() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	rows, err := s.storage.QueryStorageStockByWarehouse(ctx, tx, storage.StorageStockQuery{})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Assert().Equal("WH-North", rows[0].Warehouse)
	s.Assert().Equal(int64(130), rows[0].Bags)
	s.Assert().Equal("6500", rows[0].StockKG.String())
	s.Assert().Equal("WH-South", rows[1].Warehouse)
	s.Assert().Equal("2000", rows[1].StockKG.String())

	rows, err = s.storage.QueryStorageStockByWarehouse(ctx, tx, storage.StorageStockQuery{Commodity: "Wheat"})
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Assert().Equal("4000", rows[0].StockKG.String())
	s.Assert().Equal(int64(80), rows[0].Bags)

	rows, err = s.storage.QueryStorageStockByWarehouse(ctx, tx, storage.StorageStockQuery{Warehouse: "WH-South"})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Assert().Equal("WH-South", rows[0].Warehouse)

	rows, err = s.storage.QueryStorageStockByWarehouse(ctx, tx, storage.StorageStockQuery{Warehouse: "WH-East"})
	s.Require().NoError(err)
	s.Assert().Empty(rows)
}

func (s *ReportStorageTestSuite) TestQueryTallyInwards() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	query := storage.TallyQuery{
		DateFrom: model.NewDateFromStringNoError("2025-03-01"),
		DateTo:   model.NewDateFromStringNoError("2025-04-30"),
	}
	inwards, err := s.storage.QueryTallyInwards(ctx, tx, query)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"IN-2025-0002", "IN-2025-0001", "IN-0001-2025-0001"},
		lo.Map(inwards, func(inward model.Inward, _ int) string { return inward.ID }))
	s.Assert().Equal("5000", inwards[2].ArrivalWeight().String())
	s.Assert().Equal("250", inwards[2].CGSTAmount.String())

	query.Broker = "BRK-02"
	inwards, err = s.storage.QueryTallyInwards(ctx, tx, query)
	s.Require().NoError(err)
	s.Require().Len(inwards, 1)
	s.Assert().Equal("IN-0001-2025-0001", inwards[0].ID)

	inwards, err = s.storage.QueryTallyInwards(ctx, tx, storage.TallyQuery{
		DateFrom: model.NewDateFromStringNoError("2025-04-06"),
		DateTo:   model.NewDateFromStringNoError("2025-04-06"),
	})
	s.Require().NoError(err)
	s.Require().Len(inwards, 1)
	s.Assert().Equal("IN-2025-0002", inwards[0].ID)
}

func (s *ReportStorageTestSuite) TestQueryTallyOutwards() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	query := storage.TallyQuery{
		DateFrom: model.NewDateFromStringNoError("2025-04-01"),
		DateTo:   model.NewDateFromStringNoError("2025-04-30"),
	}
	outwards, err := s.storage.QueryTallyOutwards(ctx, tx, query)
	s.Require().NoError(err)
	// Cancelled outwards, outwards without a booking and outwards of purchase bookings are left out.
	s.Assert().Equal([]string{"OUT-2025-0005", "OUT-2025-0004", "OUT-2025-0002", "OUT-2025-0001"},
		lo.Map(outwards, func(outward model.Outward, _ int) string { return outward.ID }))
	s.Assert().Equal("500", outwards[1].GrossWeight().String())
	s.Assert().Equal(model.DocStatusSubmitted, outwards[1].DocStatus)

	query.DocStatus = model.DocStatusCancelled
	outwards, err = s.storage.QueryTallyOutwards(ctx, tx, query)
	s.Require().NoError(err)
	s.Require().Len(outwards, 1)
	s.Assert().Equal("OUT-2025-0003", outwards[0].ID)

	query.DocStatus = ""
	query.Customer = "CUST-002"
	outwards, err = s.storage.QueryTallyOutwards(ctx, tx, query)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"OUT-2025-0005", "OUT-2025-0004"},
		lo.Map(outwards, func(outward model.Outward, _ int) string { return outward.ID }))
}

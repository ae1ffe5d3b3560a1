package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/report"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	mock_storage "github.com/kisanwarehouse/kisan-warehouse/test/mock/wh_server/storage"
	"github.com/stretchr/testify/suite"
)

type ReporterTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	storage  *mock_storage.MockReportStorage
	tx       *mock_storage.MockTx
	reporter report.Reporter

	ts    int64
	today model.Date
}

func TestReporter(t *testing.T) {
	suite.Run(t, new(ReporterTestSuite))
}

func (s *ReporterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockReportStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.reporter = report.NewReporter(s.storage)

	s.ts = time.Date(2025, 4, 10, 15, 30, 0, 0, time.UTC).Unix()
	s.today = model.NewDateFromStringNoError("2025-04-10")
}

func (s *ReporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReporterTestSuite) date(d string) *model.Date {
	return util.Ptr(model.NewDateFromStringNoError(d))
}

func (s *ReporterTestSuite) TestPendingBookingsDefaultsToToday() {
	expectedQuery := storage.PendingBookingsQuery{
		Customer:       "CUST-001",
		DeliveryDateOn: &s.today,
	}
	row := storage.PendingBookingRow{
		BookingID:        "SAUDA-2025-0001",
		Customer:         "CUST-001",
		BookingDate:      model.NewDateFromStringNoError("2025-03-01"),
		ExpectedQuantity: model.MustDecimal("1000"),
		PendingQuantity:  model.MustDecimal("400"),
		DeliveryEndDate:  &s.today,
		TotalAmount:      model.MustDecimal("50000"),
		Status:           model.BookingStatusPending,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPendingBookings(gomock.Any(), s.tx, expectedQuery).Return([]storage.PendingBookingRow{row}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.PendingBookings(s.ctx, s.ts, report.PendingBookingsFilter{Customer: "CUST-001"})
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("SAUDA-2025-0001", result[0].BookingID)
	s.Assert().Equal("400", result[0].PendingQuantity.String())
	s.Assert().Equal(0, result[0].DaysOverdue)
	s.Assert().Equal(report.UrgencyDueToday, result[0].Urgency)
}

func (s *ReporterTestSuite) TestPendingBookingsUrgency() {
	filter := report.PendingBookingsFilter{ShowAll: true}
	rows := []storage.PendingBookingRow{
		{BookingID: "SAUDA-2025-0001", DeliveryEndDate: s.date("2025-04-01")},
		{BookingID: "SAUDA-2025-0002", DeliveryEndDate: s.date("2025-04-10")},
		{BookingID: "SAUDA-2025-0003", DeliveryEndDate: s.date("2025-04-15")},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPendingBookings(gomock.Any(), s.tx, storage.PendingBookingsQuery{}).Return(rows, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.PendingBookings(s.ctx, s.ts, filter)
	s.Require().NoError(err)
	s.Require().Len(result, 3)

	s.Assert().Equal(9, result[0].DaysOverdue)
	s.Assert().Equal(report.UrgencyOverdue, result[0].Urgency)
	s.Assert().Equal(0, result[1].DaysOverdue)
	s.Assert().Equal(report.UrgencyDueToday, result[1].Urgency)
	s.Assert().Equal(0, result[2].DaysOverdue)
	s.Assert().Equal(report.UrgencyUpcoming, result[2].Urgency)
}

func (s *ReporterTestSuite) TestPendingBookingsWithDeliveryRange() {
	filter := report.PendingBookingsFilter{
		Status:           model.BookingStatusCancelled,
		DeliveryDateFrom: s.date("2025-04-01"),
		DeliveryDateTo:   s.date("2025-04-30"),
	}
	expectedQuery := storage.PendingBookingsQuery{
		Status:           model.BookingStatusCancelled,
		DeliveryDateFrom: filter.DeliveryDateFrom,
		DeliveryDateTo:   filter.DeliveryDateTo,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPendingBookings(gomock.Any(), s.tx, expectedQuery).Return(nil, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.PendingBookings(s.ctx, s.ts, filter)
	s.Require().NoError(err)
	s.Assert().Empty(result)
}

func (s *ReporterTestSuite) TestPendingBookingsInvalidFilter() {
	_, err := s.reporter.PendingBookings(s.ctx, s.ts, report.PendingBookingsFilter{Status: "archived"})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.reporter.PendingBookings(s.ctx, s.ts, report.PendingBookingsFilter{
		DeliveryDateFrom: s.date("2025-05-01"),
		DeliveryDateTo:   s.date("2025-04-01"),
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ReporterTestSuite) TestPaymentPendingOutwards() {
	filter := report.PaymentPendingFilter{Broker: "BRK-01", ShowAll: true}
	rows := []storage.PaymentPendingRow{
		{
			ID:             "OUT-2025-0001",
			BookingID:      "SAUDA-2025-0001",
			Broker:         "BRK-01",
			NetTotal:       model.MustDecimal("10000.555"),
			AmountPaid:     model.MustDecimal("2500"),
			PaymentDueDate: s.date("2025-04-07"),
			PaymentStatus:  model.PaymentStatusPending,
		},
		{
			ID:             "OUT-2025-0002",
			Broker:         "BRK-01",
			NetTotal:       model.MustDecimal("800"),
			AmountPaid:     model.MustDecimal("0"),
			PaymentDueDate: s.date("2025-04-10"),
			PaymentStatus:  model.PaymentStatusProcessing,
		},
		{
			ID:             "OUT-2025-0003",
			Broker:         "BRK-01",
			NetTotal:       model.MustDecimal("300"),
			AmountPaid:     model.MustDecimal("100"),
			PaymentDueDate: s.date("2025-04-12"),
			PaymentStatus:  model.PaymentStatusPending,
		},
		{
			ID:            "OUT-2025-0004",
			Broker:        "BRK-01",
			NetTotal:      model.MustDecimal("50"),
			AmountPaid:    model.MustDecimal("0"),
			PaymentStatus: model.PaymentStatusPending,
		},
	}
	expectedQuery := storage.PaymentPendingQuery{
		Broker:   "BRK-01",
		Statuses: []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPaymentPendingOutwards(gomock.Any(), s.tx, expectedQuery).Return(rows, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.PaymentPendingOutwards(s.ctx, s.ts, filter)
	s.Require().NoError(err)
	s.Require().Len(result, 4)

	s.Assert().Equal("OUT-2025-0001", result[0].OutwardID)
	s.Assert().Equal("7500.56", result[0].Outstanding.String())
	s.Assert().Equal("3 Days Overdue", result[0].DaysStatus)
	s.Assert().Equal(report.UrgencyOverdue, result[0].Urgency)

	s.Assert().Equal("800", result[1].Outstanding.String())
	s.Assert().Equal("Due Today", result[1].DaysStatus)
	s.Assert().Equal(report.UrgencyDueToday, result[1].Urgency)
	s.Assert().Equal(model.PaymentStatusProcessing, result[1].PaymentStatus)

	s.Assert().Equal("Due in 2 Days", result[2].DaysStatus)
	s.Assert().Equal(report.UrgencyUpcoming, result[2].Urgency)

	s.Assert().Empty(result[3].DaysStatus)
	s.Assert().Empty(result[3].Urgency)
}

func (s *ReporterTestSuite) TestPaymentPendingOutwardsDefaultsToToday() {
	expectedQuery := storage.PaymentPendingQuery{
		Customer:     "CUST-001",
		Statuses:     []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusProcessing},
		PaymentDueOn: &s.today,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPaymentPendingOutwards(gomock.Any(), s.tx, expectedQuery).Return(nil, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.PaymentPendingOutwards(s.ctx, s.ts, report.PaymentPendingFilter{Customer: "CUST-001"})
	s.Require().NoError(err)
	s.Assert().Empty(result)
}

func (s *ReporterTestSuite) TestPaymentPendingOutwardsWithStatusAndRange() {
	filter := report.PaymentPendingFilter{
		PaymentStatus:  model.PaymentStatusFailed,
		PaymentDueFrom: s.date("2025-04-01"),
		PaymentDueTo:   s.date("2025-04-30"),
	}
	expectedQuery := storage.PaymentPendingQuery{
		Statuses:       []model.PaymentStatus{model.PaymentStatusFailed},
		PaymentDueFrom: filter.PaymentDueFrom,
		PaymentDueTo:   filter.PaymentDueTo,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPaymentPendingOutwards(gomock.Any(), s.tx, expectedQuery).Return(nil, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.reporter.PaymentPendingOutwards(s.ctx, s.ts, filter)
	s.Require().NoError(err)
}

func (s *ReporterTestSuite) TestPaymentPendingOutwardsInvalidFilter() {
	_, err := s.reporter.PaymentPendingOutwards(s.ctx, s.ts, report.PaymentPendingFilter{
		PaymentDueFrom: s.date("2025-04-11"),
		PaymentDueTo:   s.date("2025-04-10"),
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.reporter.PaymentPendingOutwards(s.ctx, s.ts, report.PaymentPendingFilter{PaymentStatus: "paid"})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ReporterTestSuite) TestPaymentPendingInwards() {
	filter := report.PaymentPendingFilter{Warehouse: "WH-A", ShowAll: true}
	expectedQuery := storage.PaymentPendingQuery{
		Warehouse: "WH-A",
		Statuses:  []model.PaymentStatus{model.PaymentStatusPending},
	}
	rows := []storage.PaymentPendingRow{
		{
			ID:                "IN-0001-2025-0001",
			BookingID:         "SAUDA-0001-2025-0002",
			Customer:          "SUP-0001",
			Warehouse:         "WH-A",
			Date:              model.NewDateFromStringNoError("2025-04-01"),
			NetTotal:          model.MustDecimal("52500.1"),
			AmountPaid:        model.MustDecimal("20000"),
			PaymentDueDate:    s.date("2025-04-08"),
			PaymentStatus:     model.PaymentStatusPending,
			LatestPaymentNote: "NEFT 1234",
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPaymentPendingInwards(gomock.Any(), s.tx, expectedQuery).Return(rows, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.PaymentPendingInwards(s.ctx, s.ts, filter)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("IN-0001-2025-0001", result[0].InwardID)
	s.Assert().Equal("SUP-0001", result[0].Supplier)
	s.Assert().Equal(model.NewDateFromStringNoError("2025-04-01"), result[0].InwardDate)
	s.Assert().Equal("32500.1", result[0].Outstanding.String())
	s.Assert().Equal("2 Days Overdue", result[0].DaysStatus)
	s.Assert().Equal(report.UrgencyOverdue, result[0].Urgency)
	s.Assert().Equal("NEFT 1234", result[0].LatestPaymentNote)
}

func (s *ReporterTestSuite) TestPaymentPendingInwardsDefaultsToToday() {
	expectedQuery := storage.PaymentPendingQuery{
		Statuses:     []model.PaymentStatus{model.PaymentStatusProcessing},
		PaymentDueOn: &s.today,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryPaymentPendingInwards(gomock.Any(), s.tx, expectedQuery).Return(nil, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.reporter.PaymentPendingInwards(s.ctx, s.ts, report.PaymentPendingFilter{PaymentStatus: model.PaymentStatusProcessing})
	s.Require().NoError(err)
}

func (s *ReporterTestSuite) TestStockByWarehouse() {
	rows := []storage.WarehouseStockRow{
		{Warehouse: "WH-North", Products: 2, Bags: 120, StockKG: model.MustDecimal("6000"), Value: model.MustDecimal("150000.004")},
		{Warehouse: "WH-South", Products: 1, Bags: 3, StockKG: model.MustDecimal("152.4567"), Value: model.MustDecimal("3800")},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryStockByWarehouse(gomock.Any(), s.tx, storage.StockQuery{Product: "Wheat"}).Return(rows, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.StockByWarehouse(s.ctx, s.ts, report.StockFilter{Product: "Wheat"})
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Assert().Equal("6", result[0].StockTons.String())
	s.Assert().Equal("150000", result[0].Value.String())
	s.Assert().Equal(int64(2), result[0].Products)
	s.Assert().Equal("152.46", result[1].StockKG.String())
	s.Assert().Equal("0.152", result[1].StockTons.String())
	s.Assert().Equal(int64(3), result[1].Bags)
}

func (s *ReporterTestSuite) TestStockPeriods() {
	// s.ts is 2025-04-10.
	testCases := []struct {
		filter   report.StockFilter
		from, to *model.Date
	}{
		{report.StockFilter{}, nil, nil},
		{report.StockFilter{Period: report.PeriodToday}, s.date("2025-04-10"), s.date("2025-04-10")},
		{report.StockFilter{Period: report.PeriodYesterday}, s.date("2025-04-09"), s.date("2025-04-09")},
		{report.StockFilter{Period: report.PeriodLast7Days}, s.date("2025-04-03"), s.date("2025-04-10")},
		{report.StockFilter{Period: report.PeriodCurrentMonth}, s.date("2025-04-01"), s.date("2025-04-10")},
		{report.StockFilter{Period: report.PeriodLastMonth}, s.date("2025-03-01"), s.date("2025-03-31")},
		{report.StockFilter{Period: report.PeriodCustom, DateFrom: s.date("2025-02-01")}, s.date("2025-02-01"), nil},
	}

	for _, tc := range testCases {
		expectedQuery := storage.StockQuery{InwardDateFrom: tc.from, InwardDateTo: tc.to}
		gomock.InOrder(
			s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
			s.storage.EXPECT().QueryStockByProduct(gomock.Any(), s.tx, expectedQuery).Return(nil, nil),
			s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
		)
		_, err := s.reporter.StockByProduct(s.ctx, s.ts, tc.filter)
		s.Require().NoError(err, tc.filter.Period)
	}
}

func (s *ReporterTestSuite) TestStockByProduct() {
	rows := []storage.ProductStockRow{
		{Product: "Maize", Warehouses: 2, Bags: 50, StockKG: model.MustDecimal("2500.5"), Value: model.MustDecimal("50000.1")},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryStockByProduct(gomock.Any(), s.tx, storage.StockQuery{Warehouse: "WH-A"}).Return(rows, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.StockByProduct(s.ctx, s.ts, report.StockFilter{Warehouse: "WH-A"})
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("Maize", result[0].Product)
	s.Assert().Equal(int64(2), result[0].Warehouses)
	s.Assert().Equal("2.501", result[0].StockTons.String())
	s.Assert().Equal("50000.1", result[0].Value.String())
}

func (s *ReporterTestSuite) TestStockInvalidFilter() {
	_, err := s.reporter.StockByWarehouse(s.ctx, s.ts, report.StockFilter{Period: "last_year"})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.reporter.StockByWarehouse(s.ctx, s.ts, report.StockFilter{Period: report.PeriodToday, DateFrom: s.date("2025-04-01")})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.reporter.StockByProduct(s.ctx, s.ts, report.StockFilter{
		Period:   report.PeriodCustom,
		DateFrom: s.date("2025-04-11"),
		DateTo:   s.date("2025-04-01"),
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ReporterTestSuite) TestStorageStockByWarehouse() {
	rows := []storage.StorageStockRow{
		{Warehouse: "WH-North", Bags: 120, StockKG: model.MustDecimal("6000")},
		{Warehouse: "WH-South", Bags: 3, StockKG: model.MustDecimal("152.4567")},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryStorageStockByWarehouse(gomock.Any(), s.tx, storage.StorageStockQuery{Commodity: "Wheat"}).Return(rows, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.StorageStockByWarehouse(s.ctx, report.StorageStockFilter{Commodity: "Wheat"})
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Assert().Equal("6", result[0].StockTons.String())
	s.Assert().Equal("0.152", result[1].StockTons.String())
	s.Assert().Equal(int64(3), result[1].Bags)
}

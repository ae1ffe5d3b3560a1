package report_test

import (
	"bytes"

	"github.com/golang/mock/gomock"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/report"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func (s *ReporterTestSuite) tallyInward() model.Inward {
	return model.Inward{
		ID:          "IN-0001-2025-0001",
		Customer:    "SUP-0001",
		Product:     "Maize",
		Warehouse:   "WH-A",
		Vehicle:     "MP09AB1234",
		InwardDate:  model.NewDateFromStringNoError("2025-04-02"),
		SubTotal:    model.MustDecimal("50000.1"),
		CGSTPercent: model.MustDecimal("2.5"),
		CGSTAmount:  model.MustDecimal("1250"),
		SGSTPercent: model.MustDecimal("2.5"),
		SGSTAmount:  model.MustDecimal("1250"),
		Items: []model.InwardItem{
			{Bags: 40, ArrivalWeight: model.MustDecimal("2000"), Amount: model.MustDecimal("40000.1")},
			{Bags: 10, ArrivalWeight: model.MustDecimal("500.5"), Amount: model.MustDecimal("10000")},
		},
	}
}

func (s *ReporterTestSuite) tallyOutward() model.Outward {
	return model.Outward{
		ID:          "OUT-0001-2025-0003",
		DocStatus:   model.DocStatusSubmitted,
		Customer:    "CUST-001",
		Broker:      "BRK-01",
		Product:     "Wheat",
		Warehouse:   "WH-North",
		Vehicle:     "MP09CD5678",
		OutwardDate: model.NewDateFromStringNoError("2025-04-05"),
		NetTotal:    model.MustDecimal("19000"),
		Items: []model.OutwardItem{
			{Bags: 10, GrossWeight: model.MustDecimal("500"), Amount: model.MustDecimal("12500")},
			{Bags: 5, GrossWeight: model.MustDecimal("250.25"), Amount: model.MustDecimal("6300")},
		},
	}
}

func (s *ReporterTestSuite) TestTallyInwards() {
	expectedQuery := storage.TallyQuery{
		DateFrom: model.NewDateFromStringNoError("2025-03-10"),
		DateTo:   s.today,
		Product:  "Maize",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryTallyInwards(gomock.Any(), s.tx, expectedQuery).Return([]model.Inward{s.tallyInward()}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.TallyInwards(s.ctx, s.ts, report.TallyFilter{Product: "Maize"})
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("SUP-0001", result[0].SupplierAccount)
	s.Assert().Equal(report.VoucherTypePurchase, result[0].VoucherType)
	s.Assert().Equal("2500.5", result[0].Quantity.String())
	s.Assert().Equal("1999.6", result[0].Rate.String())
	s.Assert().Equal("50000.1", result[0].Amount.String())
	s.Assert().Equal("IN-0001-2025-0001", result[0].VoucherNo)
	s.Assert().Equal("nos", result[0].UOM)

	buf := bytes.Buffer{}
	s.Require().NoError(report.WriteTallyInwardsCSV(&buf, result))
	s.Assert().Equal(
		"Supplier A/c,Voucher Type,Product Name,Warehouse,Quantity,Rate,Amount,CGST %,CGST,SGST %,SGST,IGST %,IGST,Voucher No,Inward Date,Vehicle,UNIT\n"+
			"SUP-0001,Purchase Import,Maize,WH-A,2500.50,1999.60,50000.10,2.50,1250.00,2.50,1250.00,0.00,0.00,IN-0001-2025-0001,2025-04-02,MP09AB1234,nos\n",
		buf.String(),
	)
}

func (s *ReporterTestSuite) TestTallyInwardsRejectsOutwardStatus() {
	_, err := s.reporter.TallyInwards(s.ctx, s.ts, report.TallyFilter{DocStatus: model.DocStatusSubmitted})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ReporterTestSuite) TestTallyOutwards() {
	filter := report.TallyFilter{
		DateFrom:  s.date("2025-04-01"),
		DateTo:    s.date("2025-04-30"),
		DocStatus: model.DocStatusSubmitted,
	}
	expectedQuery := storage.TallyQuery{
		DateFrom:  model.NewDateFromStringNoError("2025-04-01"),
		DateTo:    model.NewDateFromStringNoError("2025-04-30"),
		DocStatus: model.DocStatusSubmitted,
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryTallyOutwards(gomock.Any(), s.tx, expectedQuery).Return([]model.Outward{s.tallyOutward()}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.TallyOutwards(s.ctx, s.ts, filter)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().Equal("CUST-001", result[0].CustomerAccount)
	s.Assert().Equal(report.VoucherTypeSales, result[0].VoucherType)
	s.Assert().Equal("750.25", result[0].Quantity.String())
	s.Assert().Equal("25.06", result[0].Rate.String())
	s.Assert().Equal("19000", result[0].Amount.String())
	s.Assert().Equal(model.DocStatusSubmitted, result[0].Status)
	s.Assert().Equal("Kg", result[0].UOM)

	buf := bytes.Buffer{}
	s.Require().NoError(report.WriteTallyOutwardsCSV(&buf, result))
	s.Assert().Equal(
		"Customer A/c,Voucher Type,Broker,Product Name,Warehouse,Quantity,Rate,Amount,Voucher No,Outward Date,Status,Vehicle,UNIT\n"+
			"CUST-001,Sales Export,BRK-01,Wheat,WH-North,750.25,25.06,19000.00,OUT-0001-2025-0003,2025-04-05,submitted,MP09CD5678,Kg\n",
		buf.String(),
	)
}

func (s *ReporterTestSuite) TestTallyOutwardsWithoutWeight() {
	outward := s.tallyOutward()
	outward.Items = nil

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().QueryTallyOutwards(gomock.Any(), s.tx, gomock.Any()).Return([]model.Outward{outward}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.reporter.TallyOutwards(s.ctx, s.ts, report.TallyFilter{})
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Assert().True(result[0].Rate.IsZero())
	s.Assert().True(result[0].Quantity.IsZero())
}

func (s *ReporterTestSuite) TestTallyInvalidFilter() {
	_, err := s.reporter.TallyOutwards(s.ctx, s.ts, report.TallyFilter{DocStatus: "archived"})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	_, err = s.reporter.TallyOutwards(s.ctx, s.ts, report.TallyFilter{
		DateFrom: s.date("2025-04-30"),
		DateTo:   s.date("2025-04-01"),
	})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

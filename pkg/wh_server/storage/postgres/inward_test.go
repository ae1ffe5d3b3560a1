package postgres_test

import (
	"testing"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage/postgres"
	"github.com/stretchr/testify/suite"
)

type InwardStorageTestSuite struct {
	BaseTestSuite
	storage whStorage
}

func TestInwardStorage(t *testing.T) {
	suite.Run(t, new(InwardStorageTestSuite))
}

func (s *InwardStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *InwardStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func newTestInward(id string, booking string, weights ...string) model.Inward {
	inward := model.Inward{
		ID:            id,
		Version:       1,
		Booking:       booking,
		Customer:      "SUP-001",
		Broker:        "BRK-01",
		Product:       "Maize",
		Warehouse:     "WH-South",
		InwardDate:    model.NewDateFromStringNoError("2025-04-05"),
		SubTotal:      model.MustDecimal("1000"),
		CGSTPercent:   model.MustDecimal("2.5"),
		CGSTAmount:    model.MustDecimal("25"),
		SGSTPercent:   model.MustDecimal("2.5"),
		SGSTAmount:    model.MustDecimal("25"),
		IGSTPercent:   model.MustDecimal("0"),
		IGSTAmount:    model.MustDecimal("0"),
		NetTotal:      model.MustDecimal("1050"),
		AmountPaid:    model.MustDecimal("0"),
		PaymentStatus: model.PaymentStatusPending,
		CreatedAt:     1743811200,
		CreatedBy:     "clerk",
		UpdatedAt:     1743811200,
		UpdatedBy:     "clerk",
	}
	for i, w := range weights {
		inward.Items = append(inward.Items, model.InwardItem{
			ID:            id + "-" + string(rune('a'+i)),
			Bags:          20,
			ArrivalWeight: model.MustDecimal(w),
			Amount:        model.MustDecimal("500"),
		})
	}
	return inward
}

func (s *InwardStorageTestSuite) TestStoreAndListInwards() {
	first := newTestInward("IN-0001-2025-0001", "SAUDA-0001-2025-0002", "1000", "250.5")
	first.Firm = "FIRM-0001"
	first.PaymentDueDate = util.Ptr(model.NewDateFromStringNoError("2025-05-05"))
	second := newTestInward("IN-2025-0001", "", "400")

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)
	s.Require().NoError(s.storage.StoreInward(ctx, tx, first))
	s.Require().NoError(s.storage.StoreInward(ctx, tx, second))

	paid := first
	paid.Version = 2
	paid.AmountPaid = model.MustDecimal("1050")
	paid.PaymentStatus = model.PaymentStatusSuccess
	paid.Payments = []model.InwardPayment{{
		ID:          "pay-1",
		PaymentDate: model.NewDateFromStringNoError("2025-04-20"),
		Amount:      model.MustDecimal("1050"),
		Note:        "RTGS 77",
		CreatedAt:   1745107200,
		CreatedBy:   "accountant",
	}}
	s.Require().NoError(s.storage.StoreInward(ctx, tx, paid))
	s.Require().NoError(tx.Commit(ctx))

	tx, ctx, err = s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	result, err := s.storage.ListInwards(ctx, tx, storage.ListInwardsRequest{Limit: 10})
	s.Require().NoError(err)
	s.Assert().Equal(2, result.Total)
	s.Assert().Equal([]model.Inward{paid, second}, result.Records)

	result, err = s.storage.ListInwards(ctx, tx, storage.ListInwardsRequest{Limit: 10, PaymentStatuses: []model.PaymentStatus{model.PaymentStatusPending}})
	s.Require().NoError(err)
	s.Assert().Equal([]model.Inward{second}, result.Records)

	result, err = s.storage.ListInwards(ctx, tx, storage.ListInwardsRequest{Limit: 10, Firm: "FIRM-0001", Booking: "SAUDA-0001-2025-0002"})
	s.Require().NoError(err)
	s.Assert().Equal([]model.Inward{paid}, result.Records)

	result, err = s.storage.ListInwards(ctx, tx, storage.ListInwardsRequest{Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Assert().Equal(2, result.Total)
	s.Assert().Equal([]model.Inward{second}, result.Records)

	var bags int64
	var weight, amountPaid string
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT bags, arrival_weight::TEXT, amount_paid::TEXT FROM inward WHERE id = $1`, first.ID).Scan(&bags, &weight, &amountPaid))
	s.Assert().Equal(int64(40), bags)
	s.Assert().Equal("1250.5", weight)
	s.Assert().Equal("1050", amountPaid)

	var historyCount int
	s.Require().NoError(s.pgPool.QueryRow(s.ctx, `SELECT COUNT(*) FROM inward_history WHERE id = $1`, first.ID).Scan(&historyCount))
	s.Assert().Equal(2, historyCount)
}

func (s *InwardStorageTestSuite) TestLockInward() {
	inward := newTestInward("IN-2025-0001", "", "75")

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)
	s.Require().NoError(s.storage.StoreInward(ctx, tx, inward))

	locked, err := s.storage.LockInward(ctx, tx, inward.ID)
	s.Require().NoError(err)
	s.Assert().Equal(inward, locked)

	_, err = s.storage.LockInward(ctx, tx, "IN-2025-0404")
	s.Require().ErrorIs(err, model.ErrInwardNotFound)
}

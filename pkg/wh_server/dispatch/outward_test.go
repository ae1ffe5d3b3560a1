package dispatch_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/dispatch"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	mock_storage "github.com/kisanwarehouse/kisan-warehouse/test/mock/wh_server/storage"
	"github.com/stretchr/testify/suite"
)

type OutwardManagerTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	storage *mock_storage.MockDispatchStorage
	tx      *mock_storage.MockTx
	manager dispatch.OutwardManager

	booking model.Booking
}

func TestOutwardManager(t *testing.T) {
	suite.Run(t, new(OutwardManagerTestSuite))
}

func (s *OutwardManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockDispatchStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.manager = dispatch.NewOutwardManager(s.storage, naming.NewGenerator(s.storage), dispatch.NewValidator(s.storage))

	paymentEnd := model.NewDateFromStringNoError("2025-07-15")
	s.booking = model.Booking{
		ID:               "SAUDA-0001-2025-0001",
		Version:          1,
		Firm:             "FIRM-0001",
		Type:             model.BookingTypeOutward,
		Status:           model.BookingStatusPending,
		Customer:         "CUST-0001",
		Broker:           "BRK-0001",
		Product:          "Wheat",
		Warehouse:        "WH-A",
		ExpectedQuantity: d("100"),
		PaymentEndDate:   &paymentEnd,
	}
}

func (s *OutwardManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OutwardManagerTestSuite) createRequest(weights ...string) dispatch.CreateOutwardRequest {
	req := dispatch.CreateOutwardRequest{
		Requester:   "operator",
		Booking:     s.booking.ID,
		Vehicle:     "MP09AB1234",
		OutwardDate: model.NewDateFromStringNoError("2025-06-01"),
		NetTotal:    d("5000"),
		AmountPaid:  d("1000"),
	}
	for _, w := range weights {
		req.Items = append(req.Items, dispatch.OutwardItemRequest{Bags: 10, GrossWeight: d(w), Amount: d("2500")})
	}
	return req
}

func (s *OutwardManagerTestSuite) TestCreate() {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Unix()
	req := s.createRequest("20", "20")

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().IncrementSequence(gomock.Any(), s.tx, ts, storage.SequenceKey{Prefix: "OUT", Firm: "FIRM-0001", Year: 2025}).Return(int64(3), nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().GetDispatchedQuantity(gomock.Any(), s.tx, s.booking.ID, "OUT-0001-2025-0003").Return(d("60"), nil),
		s.storage.EXPECT().StoreOutward(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, outward model.Outward) error {
				s.Assert().Equal("OUT-0001-2025-0003", outward.ID)
				s.Assert().Equal(model.DocStatusDraft, outward.DocStatus)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	outward, err := s.manager.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal("OUT-0001-2025-0003", outward.ID)
	s.Assert().Equal(int64(1), outward.Version)
	s.Assert().Equal("FIRM-0001", outward.Firm)
	s.Assert().Equal("CUST-0001", outward.Customer)
	s.Assert().Equal("BRK-0001", outward.Broker)
	s.Assert().Equal("Wheat", outward.Product)
	s.Assert().Equal("WH-A", outward.Warehouse)
	s.Assert().Equal(s.booking.PaymentEndDate, outward.PaymentDueDate)
	s.Assert().Equal(model.PaymentStatusPending, outward.PaymentStatus)
	s.Assert().True(d("40").Equal(outward.GrossWeight()))
	s.Require().Len(outward.Items, 2)
	s.Assert().NotEmpty(outward.Items[0].ID)
	s.Assert().NotEqual(outward.Items[0].ID, outward.Items[1].ID)
	s.Assert().Equal(ts, outward.CreatedAt)
	s.Assert().Equal("operator", outward.CreatedBy)
}

func (s *OutwardManagerTestSuite) TestCreateExceedingBooking() {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Unix()
	req := s.createRequest("45")

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().IncrementSequence(gomock.Any(), s.tx, ts, gomock.Any()).Return(int64(3), nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().GetDispatchedQuantity(gomock.Any(), s.tx, s.booking.ID, "OUT-0001-2025-0003").Return(d("60"), nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	outward, err := s.manager.Create(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrQuantityLimitExceeded)
	s.Assert().Empty(outward.ID)
}

func (s *OutwardManagerTestSuite) TestCreateWithoutBooking() {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Unix()
	req := s.createRequest("1000")
	req.Booking = ""
	req.Customer = "CUST-0002"

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().IncrementSequence(gomock.Any(), s.tx, ts, storage.SequenceKey{Prefix: "OUT", Year: 2025}).Return(int64(1), nil),
		s.storage.EXPECT().StoreOutward(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	outward, err := s.manager.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal("OUT-2025-0001", outward.ID)
	s.Assert().Equal("CUST-0002", outward.Customer)
}

func (s *OutwardManagerTestSuite) TestCreateSequenceFailure() {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Unix()
	req := s.createRequest("10")

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().IncrementSequence(gomock.Any(), s.tx, ts, gomock.Any()).Return(int64(0), model.ErrSequenceAllocation),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Create(s.ctx, ts, req)
	s.Require().ErrorIs(err, model.ErrSequenceAllocation)
}

func (s *OutwardManagerTestSuite) TestCreateInvalidRequest() {
	req := s.createRequest()
	_, err := s.manager.Create(s.ctx, time.Now().Unix(), req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	req = s.createRequest("-1")
	_, err = s.manager.Create(s.ctx, time.Now().Unix(), req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	req = s.createRequest("1")
	req.Requester = ""
	_, err = s.manager.Create(s.ctx, time.Now().Unix(), req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)

	req = s.createRequest("1")
	req.PaymentStatus = "paid"
	_, err = s.manager.Create(s.ctx, time.Now().Unix(), req)
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *OutwardManagerTestSuite) TestCreatePaymentStatus() {
	ts := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Unix()

	paid := s.createRequest("10")
	paid.Booking = ""
	paid.AmountPaid = d("5000")

	processing := s.createRequest("10")
	processing.Booking = ""
	processing.PaymentStatus = model.PaymentStatusProcessing

	s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil).Times(2)
	s.storage.EXPECT().IncrementSequence(gomock.Any(), s.tx, ts, storage.SequenceKey{Prefix: "OUT", Year: 2025}).Return(int64(1), nil)
	s.storage.EXPECT().IncrementSequence(gomock.Any(), s.tx, ts, storage.SequenceKey{Prefix: "OUT", Year: 2025}).Return(int64(2), nil)
	s.storage.EXPECT().StoreOutward(gomock.Any(), s.tx, gomock.Any()).Return(nil).Times(2)
	s.tx.EXPECT().Commit(gomock.Any()).Return(nil).Times(2)
	s.tx.EXPECT().Rollback(gomock.Any()).Return(nil).Times(2)

	outward, err := s.manager.Create(s.ctx, ts, paid)
	s.Require().NoError(err)
	s.Assert().Equal(model.PaymentStatusSuccess, outward.PaymentStatus)

	outward, err = s.manager.Create(s.ctx, ts, processing)
	s.Require().NoError(err)
	s.Assert().Equal(model.PaymentStatusProcessing, outward.PaymentStatus)
}

func (s *OutwardManagerTestSuite) TestUpdateExcludesItself() {
	ts := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC).Unix()
	existing := model.Outward{
		ID:        "OUT-0001-2025-0003",
		Version:   1,
		Firm:      "FIRM-0001",
		Booking:   s.booking.ID,
		DocStatus: model.DocStatusDraft,
		Items:     []model.OutwardItem{{ID: "item-1", GrossWeight: d("30")}},
		CreatedAt: 100,
		CreatedBy: "operator",
	}
	req := dispatch.UpdateOutwardRequest{CreateOutwardRequest: s.createRequest("40"), ID: existing.ID}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, existing.ID).Return(existing, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().GetDispatchedQuantity(gomock.Any(), s.tx, s.booking.ID, existing.ID).Return(d("60"), nil),
		s.storage.EXPECT().StoreOutward(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	outward, err := s.manager.Update(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Equal(existing.ID, outward.ID)
	s.Assert().Equal(int64(2), outward.Version)
	s.Assert().Equal("FIRM-0001", outward.Firm)
	s.Assert().Equal(int64(100), outward.CreatedAt)
	s.Assert().Equal(ts, outward.UpdatedAt)
	s.Assert().True(d("40").Equal(outward.GrossWeight()))
}

func (s *OutwardManagerTestSuite) TestUpdateSubmittedOutward() {
	existing := model.Outward{ID: "OUT-0001-2025-0003", Booking: s.booking.ID, DocStatus: model.DocStatusSubmitted}
	req := dispatch.UpdateOutwardRequest{CreateOutwardRequest: s.createRequest("1"), ID: existing.ID}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, existing.ID).Return(existing, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Update(s.ctx, time.Now().Unix(), req)
	s.Require().ErrorIs(err, model.ErrOutwardNotDraft)
}

func (s *OutwardManagerTestSuite) TestSubmit() {
	ts := time.Now().Unix()
	existing := model.Outward{
		ID:        "OUT-0001-2025-0003",
		Version:   2,
		Booking:   s.booking.ID,
		DocStatus: model.DocStatusDraft,
		Items:     []model.OutwardItem{{ID: "item-1", GrossWeight: d("40")}},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, existing.ID).Return(existing, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().GetDispatchedQuantity(gomock.Any(), s.tx, s.booking.ID, existing.ID).Return(d("60"), nil),
		s.storage.EXPECT().StoreOutward(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	outward, err := s.manager.Submit(s.ctx, ts, dispatch.OutwardActionRequest{Requester: "manager", ID: existing.ID})
	s.Require().NoError(err)
	s.Assert().Equal(model.DocStatusSubmitted, outward.DocStatus)
	s.Assert().Equal(int64(3), outward.Version)
	s.Assert().Equal("manager", outward.UpdatedBy)
}

func (s *OutwardManagerTestSuite) TestSubmitRejectedAfterOtherDispatches() {
	existing := model.Outward{
		ID:        "OUT-0001-2025-0003",
		Booking:   s.booking.ID,
		DocStatus: model.DocStatusDraft,
		Items:     []model.OutwardItem{{ID: "item-1", GrossWeight: d("45")}},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, existing.ID).Return(existing, nil),
		s.storage.EXPECT().LockBooking(gomock.Any(), s.tx, s.booking.ID).Return(s.booking, nil),
		s.storage.EXPECT().GetDispatchedQuantity(gomock.Any(), s.tx, s.booking.ID, existing.ID).Return(d("60"), nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Submit(s.ctx, time.Now().Unix(), dispatch.OutwardActionRequest{Requester: "manager", ID: existing.ID})
	s.Require().ErrorIs(err, model.ErrQuantityLimitExceeded)
}

func (s *OutwardManagerTestSuite) TestCancel() {
	existing := model.Outward{ID: "OUT-0001-2025-0003", Version: 1, Booking: s.booking.ID, DocStatus: model.DocStatusSubmitted}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, existing.ID).Return(existing, nil),
		s.storage.EXPECT().StoreOutward(gomock.Any(), s.tx, gomock.Any()).Return(nil),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	outward, err := s.manager.Cancel(s.ctx, time.Now().Unix(), dispatch.OutwardActionRequest{Requester: "manager", ID: existing.ID})
	s.Require().NoError(err)
	s.Assert().Equal(model.DocStatusCancelled, outward.DocStatus)
	s.Assert().Equal(int64(2), outward.Version)
}

func (s *OutwardManagerTestSuite) TestCancelTwice() {
	existing := model.Outward{ID: "OUT-0001-2025-0003", DocStatus: model.DocStatusCancelled}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, existing.ID).Return(existing, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Cancel(s.ctx, time.Now().Unix(), dispatch.OutwardActionRequest{Requester: "manager", ID: existing.ID})
	s.Require().ErrorIs(err, model.ErrOutwardCancelled)
}

func (s *OutwardManagerTestSuite) TestCancelNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().LockOutward(gomock.Any(), s.tx, "OUT-0001-2025-0099").Return(model.Outward{}, model.ErrOutwardNotFound),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Cancel(s.ctx, time.Now().Unix(), dispatch.OutwardActionRequest{Requester: "manager", ID: "OUT-0001-2025-0099"})
	s.Require().ErrorIs(err, model.ErrOutwardNotFound)
}

func (s *OutwardManagerTestSuite) TestGetNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOutwards(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListOutwardsResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.manager.Get(s.ctx, "OUT-0001-2025-0099")
	s.Require().ErrorIs(err, model.ErrOutwardNotFound)
}

func (s *OutwardManagerTestSuite) TestList() {
	req := storage.ListOutwardsRequest{Limit: 10, Booking: s.booking.ID}
	expected := storage.ListOutwardsResult{Total: 1, Records: []model.Outward{{ID: "OUT-0001-2025-0001"}}}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListOutwards(gomock.Any(), s.tx, req).Return(expected, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.manager.List(s.ctx, req)
	s.Require().NoError(err)
	s.Assert().Equal(expected, result)

	_, err = s.manager.List(s.ctx, storage.ListOutwardsRequest{Limit: 0})
	s.Require().ErrorIs(err, model.ErrInvalidParameter)
}

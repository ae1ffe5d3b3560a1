package postgres_test

import (
	"testing"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage/postgres"
	"github.com/stretchr/testify/suite"
)

type ReceiptStorageTestSuite struct {
	BaseTestSuite
	storage whStorage
}

func TestReceiptStorage(t *testing.T) {
	suite.Run(t, new(ReceiptStorageTestSuite))
}

func (s *ReceiptStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *ReceiptStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *ReceiptStorageTestSuite) TestInwardAawak() {
	aawak := model.InwardAawak{
		ID:         "AAWAK-0001-2025-0001",
		LotNumber:  "0001",
		Firm:       "FIRM-0001",
		Customer:   "CUST-001",
		Commodity:  "Wheat",
		Warehouse:  "WH-North",
		InwardDate: model.NewDateFromStringNoError("2025-04-01"),
		Bags:       100,
		NetWeight:  model.MustDecimal("5000"),
		ChamberAllocations: []model.ChamberAllocation{
			{
				Floor:          "G",
				Chamber:        "C1",
				Bags:           100,
				AllocationDate: util.Ptr(model.NewDateFromStringNoError("2025-04-01")),
				ValidTo:        util.Ptr(model.NewDateFromStringNoError("2025-10-01")),
				Weight:         model.MustDecimal("5000"),
			},
		},
		CreatedAt: 1743465600,
		CreatedBy: "clerk",
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)

	s.Require().NoError(s.storage.StoreInwardAawak(ctx, tx, aawak))
	result, err := s.storage.GetInwardAawak(ctx, tx, aawak.ID)
	s.Require().NoError(err)
	s.Assert().Equal(aawak, result)

	_, err = s.storage.GetInwardAawak(ctx, tx, "AAWAK-9999")
	s.Require().ErrorIs(err, model.ErrInwardAawakNotFound)

	// IDs are unique.
	s.Require().Error(s.storage.StoreInwardAawak(ctx, tx, aawak))
}

func (s *ReceiptStorageTestSuite) TestOutwardJawaks() {
	jawaks := []model.OutwardJawak{
		{
			ID:          "JAWAK-0001-2025-0001",
			LotNumber:   "0001",
			Firm:        "FIRM-0001",
			InwardAawak: "AAWAK-0001-2025-0001",
			Customer:    "CUST-001",
			Commodity:   "Wheat",
			Warehouse:   "WH-North",
			OutwardDate: model.NewDateFromStringNoError("2025-05-01"),
			Bags:        20,
			NetWeight:   model.MustDecimal("1000"),
			RentAmount:  model.MustDecimal("150"),
			CreatedAt:   1746057600,
			CreatedBy:   "clerk",
		},
		{
			ID:          "JAWAK-2025-0001",
			LotNumber:   "0001",
			Customer:    "CUST-002",
			Commodity:   "Rice",
			Warehouse:   "WH-South",
			OutwardDate: model.NewDateFromStringNoError("2025-05-02"),
			Bags:        5,
			NetWeight:   model.MustDecimal("250"),
			RentAmount:  model.MustDecimal("40"),
			CreatedAt:   1746144000,
			CreatedBy:   "clerk",
		},
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true))
	s.Require().NoError(err)
	defer tx.Rollback(ctx)
	for _, j := range jawaks {
		s.Require().NoError(s.storage.StoreOutwardJawak(ctx, tx, j))
	}

	result, err := s.storage.ListOutwardJawaks(ctx, tx, []string{"JAWAK-2025-0001", "JAWAK-0001-2025-0001"})
	s.Require().NoError(err)
	s.Assert().Equal([]model.OutwardJawak{jawaks[1], jawaks[0]}, result)

	_, err = s.storage.ListOutwardJawaks(ctx, tx, []string{"JAWAK-2025-0001", "JAWAK-9999"})
	s.Require().ErrorIs(err, model.ErrOutwardJawakNotFound)
}

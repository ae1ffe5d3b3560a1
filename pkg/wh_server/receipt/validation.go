package receipt

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
)

func (a ChamberAllocationRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Chamber, validation.Required),
		validation.Field(&a.Bags, validation.Min(int64(0))),
		validation.Field(&a.Weight, model.NonNegative),
	)
}

func ValidateCreateInwardAawakRequest(req CreateInwardAawakRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Firm, validation.Required),
		validation.Field(&req.Customer, validation.Required),
		validation.Field(&req.Commodity, validation.Required),
		validation.Field(&req.Warehouse, validation.Required),
		validation.Field(&req.InwardDate, model.RequiredDate),
		validation.Field(&req.Bags, validation.Min(int64(0))),
		validation.Field(&req.NetWeight, model.NonNegative),
		validation.Field(&req.ChamberAllocations),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateCreateOutwardJawakRequest(req CreateOutwardJawakRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.OutwardDate, model.RequiredDate),
		validation.Field(&req.Bags, validation.Min(int64(0))),
		validation.Field(&req.NetWeight, model.NonNegative),
		validation.Field(&req.RentAmount, model.NonNegative),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

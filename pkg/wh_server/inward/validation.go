package inward

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

var percent = validation.By(func(value interface{}) error {
	d, ok := value.(model.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() || d.GreaterThan(model.NewDecimalFromInt(100)) {
		return errors.New("must be between 0 and 100")
	}
	return nil
})

var positive = validation.By(func(value interface{}) error {
	d, ok := value.(model.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if !d.GreaterThan(model.Decimal{}) {
		return errors.New("must be greater than 0")
	}
	return nil
})

func (item InwardItemRequest) Validate() error {
	return validation.ValidateStruct(&item,
		validation.Field(&item.Bags, validation.Min(int64(0))),
		validation.Field(&item.ArrivalWeight, model.NonNegative),
		validation.Field(&item.Amount, model.NonNegative),
	)
}

func ValidateCreateInwardRequest(req CreateInwardRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.InwardDate, model.RequiredDate),
		validation.Field(&req.CGSTPercent, percent),
		validation.Field(&req.SGSTPercent, percent),
		validation.Field(&req.IGSTPercent, percent),
		validation.Field(&req.Items, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	if req.IGSTPercent.GreaterThan(model.Decimal{}) && (req.CGSTPercent.GreaterThan(model.Decimal{}) || req.SGSTPercent.GreaterThan(model.Decimal{})) {
		return fmt.Errorf("igst_percent: cannot be combined with cgst or sgst.%w", model.ErrInvalidParameter)
	}
	if req.Booking == "" && (req.Customer == "" || req.Product == "" || req.Warehouse == "") {
		return fmt.Errorf("customer, product and warehouse are required without a booking%w", model.ErrInvalidParameter)
	}
	return nil
}

func ValidateRecordPaymentRequest(req RecordPaymentRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.PaymentDate, model.RequiredDate),
		validation.Field(&req.Amount, positive),
		validation.Field(&req.PaymentStatus, validation.In(model.PaymentStatuses...)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListInwardsRequest(req storage.ListInwardsRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1)),
		validation.Field(&req.PaymentStatuses, validation.Each(validation.In(model.PaymentStatuses...))),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

package dispatch

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func (item OutwardItemRequest) Validate() error {
	return validation.ValidateStruct(&item,
		validation.Field(&item.Bags, validation.Min(int64(0))),
		validation.Field(&item.GrossWeight, model.NonNegative),
		validation.Field(&item.Amount, model.NonNegative),
	)
}

func validateCreateOutwardRequest(req CreateOutwardRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.OutwardDate, model.RequiredDate),
		validation.Field(&req.NetTotal, model.NonNegative),
		validation.Field(&req.AmountPaid, model.NonNegative),
		validation.Field(&req.PaymentStatus, validation.In(model.PaymentStatuses...)),
		validation.Field(&req.Items, validation.Required),
	)
}

func ValidateCreateOutwardRequest(req CreateOutwardRequest) error {
	if err := validateCreateOutwardRequest(req); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateUpdateOutwardRequest(req UpdateOutwardRequest) error {
	if req.ID == "" {
		return fmt.Errorf("id: cannot be blank.%w", model.ErrInvalidParameter)
	}
	return ValidateCreateOutwardRequest(req.CreateOutwardRequest)
}

func ValidateOutwardActionRequest(req OutwardActionRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListOutwardsRequest(req storage.ListOutwardsRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1)),
		validation.Field(&req.DocStatuses, validation.Each(validation.In(
			model.DocStatusDraft,
			model.DocStatusSubmitted,
			model.DocStatusCancelled,
		))),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

package booking

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
)

func ValidateCreateBookingRequest(req CreateBookingRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Type, validation.In(model.BookingTypeInward, model.BookingTypeOutward)),
		validation.Field(&req.Customer, validation.Required),
		validation.Field(&req.Product, validation.Required),
		validation.Field(&req.ExpectedQuantity, model.NonNegative),
		validation.Field(&req.Rate, model.NonNegative),
		validation.Field(&req.BookingAmount, model.NonNegative),
		validation.Field(&req.BookingDate, model.RequiredDate),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateSetStatusRequest(req SetStatusRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In(
			model.BookingStatusPending,
			model.BookingStatusCompleted,
			model.BookingStatusCancelled,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateListBookingsRequest(req storage.ListBookingsRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1)),
		validation.Field(&req.Statuses, validation.Each(validation.In(
			model.BookingStatusPending,
			model.BookingStatusCompleted,
			model.BookingStatusCancelled,
		))),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

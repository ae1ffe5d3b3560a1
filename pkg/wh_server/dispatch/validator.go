package dispatch

import (
	"context"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Validator checks an outward against the expected quantity of its booking.
type Validator interface {
	// Validate returns a *model.QuantityLimitError when the outward, together with the other draft
	// and submitted outwards of the same booking, exceeds the booking's expected quantity.
	// Outwards without a booking always pass. It never writes.
	Validate(ctx context.Context, tx storage.Tx, outward model.Outward) error
}

type ValidatorStorage interface {
	LockBooking(ctx context.Context, tx storage.Tx, bookingID string) (model.Booking, error)
	GetDispatchedQuantity(ctx context.Context, tx storage.Tx, bookingID string, excludeOutwardID string) (model.Decimal, error)
}

type _Validator struct {
	storage       ValidatorStorage
	rejectedCount metric.Int64Counter
}

func NewValidator(s ValidatorStorage) Validator {
	return &_Validator{
		storage:       s,
		rejectedCount: otlp_util.NewInt64Counter("wh_server.dispatch.rejected.count", metric.WithDescription("The total number of outwards rejected for exceeding the booking quantity")),
	}
}

func (v *_Validator) Validate(ctx context.Context, tx storage.Tx, outward model.Outward) error {
	if outward.Booking == "" {
		return nil
	}

	ctx, span := otlp_util.Start(ctx, "wh_server/dispatch/Validator.Validate",
		trace.WithAttributes(attribute.String("booking", outward.Booking), attribute.String("outward", outward.ID)),
	)
	defer span.End()

	booking, err := v.storage.LockBooking(ctx, tx, outward.Booking)
	if err != nil {
		return err
	}

	alreadyDispatched, err := v.storage.GetDispatchedQuantity(ctx, tx, outward.Booking, outward.ID)
	if err != nil {
		return err
	}

	err = CheckQuantity(booking.ID, booking.ExpectedQuantity, alreadyDispatched, outward.GrossWeight())
	if err != nil {
		logrus.Debugf("outward %q rejected: %v", outward.ID, err)
		v.rejectedCount.Add(ctx, 1, metric.WithAttributes(attribute.String("booking", outward.Booking)))
		return err
	}
	return nil
}

// CheckQuantity rejects when alreadyDispatched + current is strictly greater than expected.
func CheckQuantity(booking string, expected, alreadyDispatched, current model.Decimal) error {
	total := alreadyDispatched.Add(current)
	if !total.GreaterThan(expected) {
		return nil
	}

	return &model.QuantityLimitError{
		Booking:           booking,
		ExpectedQuantity:  expected,
		AlreadyDispatched: alreadyDispatched,
		CurrentQuantity:   current,
		Total:             total,
		Excess:            total.Sub(expected),
	}
}

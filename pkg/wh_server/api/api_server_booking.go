package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/booking"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/firm"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/middleware"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

type DispatchedQuantityResponse struct {
	Booking           string        `json:"booking"`
	ExpectedQuantity  model.Decimal `json:"expected_quantity"`
	AlreadyDispatched model.Decimal `json:"already_dispatched"`
	Remaining         model.Decimal `json:"remaining"`
}

func (a *API) createFirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req firm.CreateFirmRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)

	result, err := a.ctrl.Firm.CreateFirm(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) getFirm(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Firm.GetFirm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req booking.CreateBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)

	result, err := a.ctrl.Booking.CreateBooking(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) listBookings(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := parsePage(w, r)
	if !ok {
		return
	}
	req := storage.ListBookingsRequest{
		Offset:     offset,
		Limit:      limit,
		Firm:       r.URL.Query().Get("firm"),
		BookingIDs: queryList(r, "ids"),
		Statuses: lo.Map(queryList(r, "status"), func(s string, _ int) model.BookingStatus {
			return model.BookingStatus(s)
		}),
	}

	result, err := a.ctrl.Booking.ListBookings(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getBooking(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Booking.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) setBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req booking.SetStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)
	req.ID = mux.Vars(r)["id"]

	result, err := a.ctrl.Booking.SetStatus(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// getDispatchedQuantity reports how much of the booking is still free. The optional exclude
// parameter leaves out the outward being edited.
func (a *API) getDispatchedQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	b, err := a.ctrl.Booking.GetBooking(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	dispatched, err := a.ctrl.Booking.GetDispatchedQuantity(ctx, id, r.URL.Query().Get("exclude"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DispatchedQuantityResponse{
		Booking:           id,
		ExpectedQuantity:  b.ExpectedQuantity,
		AlreadyDispatched: dispatched,
		Remaining:         b.ExpectedQuantity.Sub(dispatched),
	})
}

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/inward"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/middleware"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

func (a *API) createInward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inward.CreateInwardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)

	result, err := a.ctrl.Inward.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) recordInwardPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inward.RecordPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)
	req.ID = mux.Vars(r)["id"]

	result, err := a.ctrl.Inward.RecordPayment(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getInward(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Inward.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) listInwards(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := parsePage(w, r)
	if !ok {
		return
	}
	req := storage.ListInwardsRequest{
		Offset:    offset,
		Limit:     limit,
		Firm:      r.URL.Query().Get("firm"),
		Booking:   r.URL.Query().Get("booking"),
		InwardIDs: queryList(r, "ids"),
		PaymentStatuses: lo.Map(queryList(r, "payment_status"), func(s string, _ int) model.PaymentStatus {
			return model.PaymentStatus(s)
		}),
	}

	result, err := a.ctrl.Inward.List(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

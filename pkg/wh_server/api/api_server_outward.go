package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/dispatch"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/middleware"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/receipt"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage"
	"github.com/samber/lo"
)

func (a *API) createOutward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dispatch.CreateOutwardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)

	result, err := a.ctrl.Outward.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) updateOutward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dispatch.UpdateOutwardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)
	req.ID = mux.Vars(r)["id"]

	result, err := a.ctrl.Outward.Update(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) submitOutward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := dispatch.OutwardActionRequest{
		Requester: middleware.Requester(ctx),
		ID:        mux.Vars(r)["id"],
	}

	result, err := a.ctrl.Outward.Submit(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) cancelOutward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := dispatch.OutwardActionRequest{
		Requester: middleware.Requester(ctx),
		ID:        mux.Vars(r)["id"],
	}

	result, err := a.ctrl.Outward.Cancel(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getOutward(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Outward.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) listOutwards(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := parsePage(w, r)
	if !ok {
		return
	}
	req := storage.ListOutwardsRequest{
		Offset:     offset,
		Limit:      limit,
		Firm:       r.URL.Query().Get("firm"),
		Booking:    r.URL.Query().Get("booking"),
		OutwardIDs: queryList(r, "ids"),
		DocStatuses: lo.Map(queryList(r, "doc_status"), func(s string, _ int) model.DocStatus {
			return model.DocStatus(s)
		}),
	}

	result, err := a.ctrl.Outward.List(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) createInwardAawak(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req receipt.CreateInwardAawakRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)

	result, err := a.ctrl.Receipt.CreateInwardAawak(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) getInwardAawak(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Receipt.GetInwardAawak(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) createOutwardJawak(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req receipt.CreateOutwardJawakRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Requester = middleware.Requester(ctx)

	result, err := a.ctrl.Receipt.CreateOutwardJawak(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (a *API) getOutwardJawak(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Receipt.GetOutwardJawak(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// listOutwardJawaks returns several jawaks at once, in the order of the ids parameter.
func (a *API) listOutwardJawaks(w http.ResponseWriter, r *http.Request) {
	result, err := a.ctrl.Receipt.ListOutwardJawaks(r.Context(), queryList(r, "ids"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

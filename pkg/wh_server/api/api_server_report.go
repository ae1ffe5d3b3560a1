package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/report"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/verification"
	"github.com/sirupsen/logrus"
)

func (a *API) pendingBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := report.PendingBookingsFilter{
		Customer:  q.Get("customer"),
		Broker:    q.Get("broker"),
		Product:   q.Get("product"),
		Warehouse: q.Get("warehouse"),
		Status:    model.BookingStatus(q.Get("status")),
	}

	var ok bool
	if filter.ShowAll, ok = queryBool(w, r, "show_all"); !ok {
		return
	}
	if filter.DeliveryDateFrom, ok = queryDate(w, r, "delivery_date_from"); !ok {
		return
	}
	if filter.DeliveryDateTo, ok = queryDate(w, r, "delivery_date_to"); !ok {
		return
	}
	if filter.PaymentDateFrom, ok = queryDate(w, r, "payment_date_from"); !ok {
		return
	}
	if filter.PaymentDateTo, ok = queryDate(w, r, "payment_date_to"); !ok {
		return
	}

	result, err := a.ctrl.Reporter.PendingBookings(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func paymentPendingFilter(w http.ResponseWriter, r *http.Request) (report.PaymentPendingFilter, bool) {
	q := r.URL.Query()
	filter := report.PaymentPendingFilter{
		Customer:      q.Get("customer"),
		Broker:        q.Get("broker"),
		Product:       q.Get("product"),
		Warehouse:     q.Get("warehouse"),
		PaymentStatus: model.PaymentStatus(q.Get("payment_status")),
	}

	var ok bool
	if filter.ShowAll, ok = queryBool(w, r, "show_all"); !ok {
		return filter, false
	}
	if filter.PaymentDueFrom, ok = queryDate(w, r, "payment_due_from"); !ok {
		return filter, false
	}
	if filter.PaymentDueTo, ok = queryDate(w, r, "payment_due_to"); !ok {
		return filter, false
	}
	return filter, true
}

func (a *API) paymentPendingOutwards(w http.ResponseWriter, r *http.Request) {
	filter, ok := paymentPendingFilter(w, r)
	if !ok {
		return
	}

	result, err := a.ctrl.Reporter.PaymentPendingOutwards(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) paymentPendingInwards(w http.ResponseWriter, r *http.Request) {
	filter, ok := paymentPendingFilter(w, r)
	if !ok {
		return
	}

	result, err := a.ctrl.Reporter.PaymentPendingInwards(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func stockFilter(w http.ResponseWriter, r *http.Request) (report.StockFilter, bool) {
	q := r.URL.Query()
	filter := report.StockFilter{
		Warehouse: q.Get("warehouse"),
		Product:   q.Get("product"),
		Period:    report.Period(q.Get("period")),
	}

	var ok bool
	if filter.DateFrom, ok = queryDate(w, r, "date_from"); !ok {
		return filter, false
	}
	if filter.DateTo, ok = queryDate(w, r, "date_to"); !ok {
		return filter, false
	}
	return filter, true
}

func (a *API) stockByWarehouse(w http.ResponseWriter, r *http.Request) {
	filter, ok := stockFilter(w, r)
	if !ok {
		return
	}

	result, err := a.ctrl.Reporter.StockByWarehouse(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) stockByProduct(w http.ResponseWriter, r *http.Request) {
	filter, ok := stockFilter(w, r)
	if !ok {
		return
	}

	result, err := a.ctrl.Reporter.StockByProduct(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) storageStockByWarehouse(w http.ResponseWriter, r *http.Request) {
	filter := report.StorageStockFilter{
		Warehouse: r.URL.Query().Get("warehouse"),
		Commodity: r.URL.Query().Get("commodity"),
	}

	result, err := a.ctrl.Reporter.StorageStockByWarehouse(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func tallyFilter(w http.ResponseWriter, r *http.Request) (report.TallyFilter, bool) {
	q := r.URL.Query()
	filter := report.TallyFilter{
		Customer:  q.Get("customer"),
		Broker:    q.Get("broker"),
		Product:   q.Get("product"),
		Warehouse: q.Get("warehouse"),
		DocStatus: model.DocStatus(q.Get("outward_status")),
	}

	var ok bool
	if filter.DateFrom, ok = queryDate(w, r, "from_date"); !ok {
		return filter, false
	}
	if filter.DateTo, ok = queryDate(w, r, "to_date"); !ok {
		return filter, false
	}
	return filter, true
}

// tallyInward answers with JSON, or with the Tally import file when format=csv.
func (a *API) tallyInward(w http.ResponseWriter, r *http.Request) {
	filter, ok := tallyFilter(w, r)
	if !ok {
		return
	}

	result, err := a.ctrl.Reporter.TallyInwards(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, "tally_inward.csv", func(out io.Writer) error { return report.WriteTallyInwardsCSV(out, result) })
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) tallyOutward(w http.ResponseWriter, r *http.Request) {
	filter, ok := tallyFilter(w, r)
	if !ok {
		return
	}

	result, err := a.ctrl.Reporter.TallyOutwards(r.Context(), time.Now().Unix(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, "tally_outward.csv", func(out io.Writer) error { return report.WriteTallyOutwardsCSV(out, result) })
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeCSV(w http.ResponseWriter, filename string, write func(out io.Writer) error) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := write(w); err != nil {
		logrus.Warnf("failed to write csv response: %v", err)
	}
}

// Verification outcomes, failed ones included, are returned with 200. Only a malformed request body
// is rejected.
func (a *API) verifyPAN(w http.ResponseWriter, r *http.Request) {
	var req verification.PANRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, a.ctrl.Verifier.VerifyPAN(r.Context(), time.Now().Unix(), req))
}

func (a *API) verifyGSTIN(w http.ResponseWriter, r *http.Request) {
	var req verification.GSTINRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, a.ctrl.Verifier.VerifyGSTIN(r.Context(), time.Now().Unix(), req))
}

func (a *API) verifyAadhaar(w http.ResponseWriter, r *http.Request) {
	var req verification.AadhaarRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, a.ctrl.Verifier.VerifyAadhaar(r.Context(), time.Now().Unix(), req))
}

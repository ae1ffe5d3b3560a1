package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/util"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/auth"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/booking"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/dispatch"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/firm"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/inward"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/middleware"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/model"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/naming"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/receipt"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/report"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/storage/postgres"
	"github.com/kisanwarehouse/kisan-warehouse/pkg/wh_server/verification"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 50

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
	APIKeys      []auth.APIKey               `yaml:"api_keys"`
	Verification verification.Config         `yaml:"verification"`
}

// Controllers groups everything the API delegates to.
type Controllers struct {
	APIKeyAuth auth.APIKeyAuthenticator
	Firm       firm.Manager
	Booking    booking.Manager
	Outward    dispatch.OutwardManager
	Inward     inward.Manager
	Receipt    receipt.Manager
	Reporter   report.Reporter
	Verifier   verification.Verifier
}

type API struct {
	ctrl Controllers

	closeStorage func()
	httpServer   *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	apiKeyAuth, err := auth.NewStaticAPIKeyAuthenticator(cfg.APIKeys)
	if err != nil {
		return nil, err
	}

	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	generator := naming.NewGenerator(storage)
	ctrl := Controllers{
		APIKeyAuth: apiKeyAuth,
		Firm:       firm.NewManager(storage, generator),
		Booking:    booking.NewManager(storage, storage, generator),
		Outward:    dispatch.NewOutwardManager(storage, generator, dispatch.NewValidator(storage)),
		Inward:     inward.NewManager(storage, storage, storage, generator),
		Receipt:    receipt.NewManager(storage, storage, generator),
		Reporter:   report.NewReporter(storage),
		Verifier:   verification.NewClient(cfg.Verification),
	}
	api, err := NewAPIWithController(ctrl, cfg.LocalAddress)
	if err != nil {
		storage.Close()
		return nil, err
	}
	api.closeStorage = storage.Close

	return api, nil
}

func NewAPIWithController(ctrl Controllers, localAddress string) (*API, error) {
	apiServer := &API{
		ctrl: ctrl,
	}

	r := mux.NewRouter()
	r.Use(middleware.Log)
	r.HandleFunc("/health", apiServer.health).Methods(http.MethodGet)

	authRouter := r.NewRoute().Subrouter()
	authRouter.Use(middleware.NewAPIKeyAuth(ctrl.APIKeyAuth).Authenticate)

	authRouter.HandleFunc("/firm", apiServer.createFirm).Methods(http.MethodPost)
	authRouter.HandleFunc("/firm/{id}", apiServer.getFirm).Methods(http.MethodGet)

	authRouter.HandleFunc("/booking", apiServer.createBooking).Methods(http.MethodPost)
	authRouter.HandleFunc("/booking", apiServer.listBookings).Methods(http.MethodGet)
	authRouter.HandleFunc("/booking/{id}", apiServer.getBooking).Methods(http.MethodGet)
	authRouter.HandleFunc("/booking/{id}/status", apiServer.setBookingStatus).Methods(http.MethodPost)
	authRouter.HandleFunc("/booking/{id}/dispatched_quantity", apiServer.getDispatchedQuantity).Methods(http.MethodGet)

	authRouter.HandleFunc("/outward", apiServer.createOutward).Methods(http.MethodPost)
	authRouter.HandleFunc("/outward", apiServer.listOutwards).Methods(http.MethodGet)
	authRouter.HandleFunc("/outward/{id}", apiServer.getOutward).Methods(http.MethodGet)
	authRouter.HandleFunc("/outward/{id}", apiServer.updateOutward).Methods(http.MethodPost)
	authRouter.HandleFunc("/outward/{id}/submit", apiServer.submitOutward).Methods(http.MethodPost)
	authRouter.HandleFunc("/outward/{id}/cancel", apiServer.cancelOutward).Methods(http.MethodPost)

	authRouter.HandleFunc("/inward", apiServer.createInward).Methods(http.MethodPost)
	authRouter.HandleFunc("/inward", apiServer.listInwards).Methods(http.MethodGet)
	authRouter.HandleFunc("/inward/{id}", apiServer.getInward).Methods(http.MethodGet)
	authRouter.HandleFunc("/inward/{id}/payment", apiServer.recordInwardPayment).Methods(http.MethodPost)

	authRouter.HandleFunc("/inward_aawak", apiServer.createInwardAawak).Methods(http.MethodPost)
	authRouter.HandleFunc("/inward_aawak/{id}", apiServer.getInwardAawak).Methods(http.MethodGet)
	authRouter.HandleFunc("/outward_jawak", apiServer.createOutwardJawak).Methods(http.MethodPost)
	authRouter.HandleFunc("/outward_jawak", apiServer.listOutwardJawaks).Methods(http.MethodGet)
	authRouter.HandleFunc("/outward_jawak/{id}", apiServer.getOutwardJawak).Methods(http.MethodGet)

	authRouter.HandleFunc("/report/pending_bookings", apiServer.pendingBookings).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/payment_pending_outwards", apiServer.paymentPendingOutwards).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/payment_pending_inwards", apiServer.paymentPendingInwards).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/stock_by_warehouse", apiServer.stockByWarehouse).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/stock_by_product", apiServer.stockByProduct).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/storage_stock_by_warehouse", apiServer.storageStockByWarehouse).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/tally_inward", apiServer.tallyInward).Methods(http.MethodGet)
	authRouter.HandleFunc("/report/tally_outward", apiServer.tallyOutward).Methods(http.MethodGet)

	authRouter.HandleFunc("/verification/pan", apiServer.verifyPAN).Methods(http.MethodPost)
	authRouter.HandleFunc("/verification/gstin", apiServer.verifyGSTIN).Methods(http.MethodPost)
	authRouter.HandleFunc("/verification/aadhaar", apiServer.verifyAadhaar).Methods(http.MethodPost)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	err := a.httpServer.Shutdown(ctx)
	if a.closeStorage != nil {
		a.closeStorage()
	}
	return err
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// writeError maps err onto the response status. Quantity limit errors are checked before
// ErrInvalidParameter because they wrap it.
func writeError(w http.ResponseWriter, err error) {
	var limitErr *model.QuantityLimitError
	switch {
	case errors.As(err, &limitErr):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, model.ErrInvalidParameter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrFirmNotFound),
		errors.Is(err, model.ErrBookingNotFound),
		errors.Is(err, model.ErrOutwardNotFound),
		errors.Is(err, model.ErrInwardNotFound),
		errors.Is(err, model.ErrInwardAawakNotFound),
		errors.Is(err, model.ErrOutwardJawakNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrBookingNotPending),
		errors.Is(err, model.ErrOutwardNotDraft),
		errors.Is(err, model.ErrOutwardCancelled):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func parsePage(w http.ResponseWriter, r *http.Request) (offset int, limit int, ok bool) {
	limit = defaultListLimit
	offsetStr := r.URL.Query().Get("offset")
	limitStr := r.URL.Query().Get("limit")
	if offsetStr != "" {
		v, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil || v < 0 {
			http.Error(w, "offset is invalid", http.StatusBadRequest)
			return 0, 0, false
		}
		offset = int(v)
	}
	if limitStr != "" {
		v, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || v < 1 {
			http.Error(w, "limit is invalid", http.StatusBadRequest)
			return 0, 0, false
		}
		limit = int(v)
	}
	return offset, limit, true
}

// queryList reads a comma separated query parameter.
func queryList(r *http.Request, name string) []string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func queryBool(w http.ResponseWriter, r *http.Request, name string) (bool, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("%s is invalid", name), http.StatusBadRequest)
		return false, false
	}
	return b, true
}

func queryDate(w http.ResponseWriter, r *http.Request, name string) (*model.Date, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, true
	}
	d, err := model.NewDateFromString(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("%s is invalid", name), http.StatusBadRequest)
		return nil, false
	}
	return &d, true
}

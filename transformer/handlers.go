package transformer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	fthealth "github.com/Financial-Times/go-fthealth/v1_1"
	"github.com/Financial-Times/go-logger"
	"github.com/Financial-Times/http-handlers-go/httphandlers"
	"github.com/Financial-Times/ivms101-transformer/ivms101"
	"github.com/Financial-Times/ivms101-transformer/payload"
	status "github.com/Financial-Times/service-status-go/httphandlers"
	transactionidutils "github.com/Financial-Times/transactionid-utils-go"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

type TransformerHandler struct {
	svc            Service
	requestTimeout time.Duration
	defaultVersion ivms101.PayloadVersionCode
}

type versionResponse struct {
	PayloadVersion ivms101.PayloadVersionCode `json:"payloadVersion"`
}

func NewHandler(svc Service, timeout time.Duration, defaultVersion ivms101.PayloadVersionCode) TransformerHandler {
	return TransformerHandler{svc: svc, requestTimeout: timeout, defaultVersion: defaultVersion}
}

func (h *TransformerHandler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	tid := transactionidutils.GetTransactionIDFromRequest(r)
	w.Header().Set(transactionidutils.TransactionIDHeader, tid)
	w.Header().Set("Content-Type", "application/json")

	target := h.defaultVersion
	if v := r.URL.Query().Get("version"); v != "" {
		parsed, err := ivms101.ParseVersion(v)
		if err != nil {
			logger.WithError(err).WithTransactionID(tid).Warn("Rejected conversion request")
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		target = parsed
	}

	record, err := payload.Decode(r.Body)
	if err != nil {
		logger.WithError(err).WithTransactionID(tid).Warn("Could not decode IVMS101 payload")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(transactionidutils.TransactionAwareContext(r.Context(), tid), h.requestTimeout)
	defer cancel()

	converted, err := h.convert(ctx, target, record)
	if err != nil {
		logger.WithError(err).WithTransactionID(tid).Error("Error converting IVMS101 payload")
		writeMessage(w, statusFor(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := payload.Encode(w, converted); err != nil {
		logger.WithError(err).WithTransactionID(tid).Error("Error writing converted payload")
	}
}

func (h *TransformerHandler) convert(ctx context.Context, target ivms101.PayloadVersionCode, record ivms101.Record) (ivms101.Record, error) {
	type conversion struct {
		Record ivms101.Record
		Err    error
	}

	ch := make(chan conversion, 1)
	go func() {
		converted, err := h.svc.Convert(ctx, target, record)
		ch <- conversion{Record: converted, Err: err}
	}()

	select {
	case c := <-ch:
		return c.Record, c.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *TransformerHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	tid := transactionidutils.GetTransactionIDFromRequest(r)
	w.Header().Set(transactionidutils.TransactionIDHeader, tid)
	w.Header().Set("Content-Type", "application/json")

	record, err := payload.Decode(r.Body)
	if err != nil {
		logger.WithError(err).WithTransactionID(tid).Warn("Could not decode IVMS101 payload")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	json.NewEncoder(w).Encode(versionResponse{PayloadVersion: h.svc.Detect(record)})
}

func (h *TransformerHandler) RegisterHandlers(healthService *HealthService, requestLoggingEnabled bool) *http.ServeMux {
	logger.Info("Registering handlers")

	router := mux.NewRouter()
	ch := handlers.MethodHandler{
		"POST": http.HandlerFunc(h.ConvertHandler),
	}
	vh := handlers.MethodHandler{
		"POST": http.HandlerFunc(h.VersionHandler),
	}
	router.Handle("/ivms101/convert", ch)
	router.Handle("/ivms101/version", vh)

	var monitoringRouter http.Handler = router
	if requestLoggingEnabled {
		monitoringRouter = httphandlers.TransactionAwareRequestLoggingHandler(log.StandardLogger(), monitoringRouter)
	}
	monitoringRouter = httphandlers.HTTPMetricsHandler(metrics.DefaultRegistry, monitoringRouter)

	logger.Info("Registering admin handlers")

	serveMux := http.NewServeMux()
	serveMux.HandleFunc("/__health", fthealth.Handler(healthService.HealthCheck()))
	serveMux.HandleFunc(status.GTGPath, status.NewGoodToGoHandler(healthService.GTG))
	serveMux.HandleFunc(status.BuildInfoPath, status.BuildInfoHandler)
	serveMux.Handle("/", monitoringRouter)

	return serveMux
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoRecord):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	w.WriteHeader(statusCode)
	//nolint:errcheck
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

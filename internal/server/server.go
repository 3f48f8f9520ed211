//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mock
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/equipped-hq/tradein-service/internal/metrics"
	"github.com/equipped-hq/tradein-service/internal/repository"
	"github.com/equipped-hq/tradein-service/internal/shipping"
	"github.com/equipped-hq/tradein-service/internal/tradein"
	"github.com/equipped-hq/tradein-service/internal/valuation"
)

type Lifecycle interface {
	CreateFromValuation(ctx context.Context, valuationID string) (*repository.TradeIn, error)
	GenerateLabel(ctx context.Context, tradeInID string) (*repository.ShippingLabel, error)
	GetTracking(ctx context.Context, trackingNumber string) (*shipping.Tracking, error)
	RecordInspection(ctx context.Context, tradeInID string, req tradein.InspectionRequest) (*repository.Inspection, error)
	CreateAdjustment(ctx context.Context, tradeInID string, req tradein.AdjustmentRequest) (*repository.ValueAdjustment, error)
	AcceptAdjustment(ctx context.Context, tradeInID, adjustmentID string) (*repository.TradeIn, error)
	DisputeAdjustment(ctx context.Context, tradeInID, adjustmentID, reason string) (*repository.TradeIn, error)
	ApplyCredit(ctx context.Context, tradeInID string, amount int) (*repository.TradeIn, error)
	Get(ctx context.Context, tradeInID string) (*tradein.Details, error)
}

type Valuer interface {
	GetValuation(serial, model string, assessment valuation.Assessment) valuation.ValuationResponse
	LookupDevice(serial string) valuation.DeviceLookupResponse
	FindMyStatus(serial string) valuation.FindMyStatusResponse
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	lifecycle    Lifecycle
	valuer       Valuer
	valuations   valuation.Store
	userRepo     UserRepo
	server       *http.Server
	logger       *zap.Logger
	AuditManager *AuditManager
}

func New(lifecycle Lifecycle, valuer Valuer, valuations valuation.Store, userRepo UserRepo, auditManager *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		lifecycle:    lifecycle,
		valuer:       valuer,
		valuations:   valuations,
		userRepo:     userRepo,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go s.handleShutdown()

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	s.logger.Info("received signal, initiating graceful shutdown", zap.String("signal", sig.String()))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown failed", zap.Error(err))
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Use(s.auditLogMiddleware)
	router.Use(s.basicAuthMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/lookup/{serial}", s.handleLookupDevice).Methods(http.MethodGet)
	router.HandleFunc("/valuation", s.handleGetValuation).Methods(http.MethodPost)
	router.HandleFunc("/findmy/{serial}", s.handleFindMyStatus).Methods(http.MethodGet)

	router.HandleFunc("/trade-ins", s.handleCreateTradeIn).Methods(http.MethodPost)
	router.HandleFunc("/trade-ins/{id}", s.handleGetTradeIn).Methods(http.MethodGet)
	router.HandleFunc("/trade-ins/{id}/label", s.handleGenerateLabel).Methods(http.MethodPost)
	router.HandleFunc("/trade-ins/{id}/inspection", s.handleRecordInspection).Methods(http.MethodPost)
	router.HandleFunc("/trade-ins/{id}/adjustment", s.handleCreateAdjustment).Methods(http.MethodPost)
	router.HandleFunc("/trade-ins/{id}/adjustment/{adjustmentID}/accept", s.handleAcceptAdjustment).Methods(http.MethodPost)
	router.HandleFunc("/trade-ins/{id}/adjustment/{adjustmentID}/dispute", s.handleDisputeAdjustment).Methods(http.MethodPost)
	router.HandleFunc("/trade-ins/{id}/credit", s.handleApplyCredit).Methods(http.MethodPost)

	router.HandleFunc("/tracking/{trackingNumber}", s.handleGetTracking).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondLifecycleError maps controller sentinels onto HTTP status codes.
func (s *Server) respondLifecycleError(w http.ResponseWriter, operation string, err error) {
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()

	switch {
	case errors.Is(err, tradein.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tradein.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, tradein.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, tradein.ErrUpstream):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("operation failed", zap.String("operation", operation), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *Server) handleLookupDevice(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]
	if serial == "" {
		respondError(w, http.StatusBadRequest, "Missing serial")
		return
	}

	result := s.valuer.LookupDevice(serial)
	if !result.Success {
		respondJSON(w, http.StatusNotFound, result)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetValuation(w http.ResponseWriter, r *http.Request) {
	var valuationRequest struct {
		Serial     string               `json:"serial"`
		Model      string               `json:"model"`
		Assessment valuation.Assessment `json:"assessment"`
	}

	if err := json.NewDecoder(r.Body).Decode(&valuationRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if valuationRequest.Serial == "" {
		respondError(w, http.StatusBadRequest, "Missing serial")
		return
	}

	result := s.valuer.GetValuation(valuationRequest.Serial, valuationRequest.Model, valuationRequest.Assessment)
	if !result.Success {
		respondJSON(w, http.StatusNotFound, result)
		return
	}

	if err := s.valuations.Save(r.Context(), result); err != nil {
		s.logger.Error("failed to save valuation", zap.String("valuation_id", result.ValuationID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.ValuationsIssuedTotal.Inc()
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleFindMyStatus(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]
	if serial == "" {
		respondError(w, http.StatusBadRequest, "Missing serial")
		return
	}

	respondJSON(w, http.StatusOK, s.valuer.FindMyStatus(serial))
}

func (s *Server) handleCreateTradeIn(w http.ResponseWriter, r *http.Request) {
	var createRequest struct {
		ValuationID string `json:"valuation_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if createRequest.ValuationID == "" {
		respondError(w, http.StatusBadRequest, "Missing valuation_id")
		return
	}

	item, err := s.lifecycle.CreateFromValuation(r.Context(), createRequest.ValuationID)
	if err != nil {
		s.respondLifecycleError(w, "create_trade_in", err)
		return
	}

	metrics.TradeInsCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleGetTradeIn(w http.ResponseWriter, r *http.Request) {
	tradeInID := mux.Vars(r)["id"]
	if tradeInID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in ID")
		return
	}

	details, err := s.lifecycle.Get(r.Context(), tradeInID)
	if err != nil {
		s.respondLifecycleError(w, "get_trade_in", err)
		return
	}

	respondJSON(w, http.StatusOK, details)
}

func (s *Server) handleGenerateLabel(w http.ResponseWriter, r *http.Request) {
	tradeInID := mux.Vars(r)["id"]
	if tradeInID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in ID")
		return
	}

	label, err := s.lifecycle.GenerateLabel(r.Context(), tradeInID)
	if err != nil {
		s.respondLifecycleError(w, "generate_label", err)
		return
	}

	metrics.LabelsGeneratedTotal.Inc()
	respondJSON(w, http.StatusCreated, label)
}

func (s *Server) handleGetTracking(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]
	if trackingNumber == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking number")
		return
	}

	tracking, err := s.lifecycle.GetTracking(r.Context(), trackingNumber)
	if err != nil {
		s.respondLifecycleError(w, "get_tracking", err)
		return
	}

	respondJSON(w, http.StatusOK, tracking)
}

func (s *Server) handleRecordInspection(w http.ResponseWriter, r *http.Request) {
	tradeInID := mux.Vars(r)["id"]
	if tradeInID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in ID")
		return
	}

	var inspectionRequest tradein.InspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&inspectionRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inspection, err := s.lifecycle.RecordInspection(r.Context(), tradeInID, inspectionRequest)
	if err != nil {
		s.respondLifecycleError(w, "record_inspection", err)
		return
	}

	metrics.InspectionsRecordedTotal.Inc()
	respondJSON(w, http.StatusCreated, inspection)
}

func (s *Server) handleCreateAdjustment(w http.ResponseWriter, r *http.Request) {
	tradeInID := mux.Vars(r)["id"]
	if tradeInID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in ID")
		return
	}

	var adjustmentRequest tradein.AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&adjustmentRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	adjustment, err := s.lifecycle.CreateAdjustment(r.Context(), tradeInID, adjustmentRequest)
	if err != nil {
		s.respondLifecycleError(w, "create_adjustment", err)
		return
	}

	respondJSON(w, http.StatusCreated, adjustment)
}

func (s *Server) handleAcceptAdjustment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tradeInID, adjustmentID := vars["id"], vars["adjustmentID"]
	if tradeInID == "" || adjustmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in or adjustment ID")
		return
	}

	item, err := s.lifecycle.AcceptAdjustment(r.Context(), tradeInID, adjustmentID)
	if err != nil {
		s.respondLifecycleError(w, "accept_adjustment", err)
		return
	}

	metrics.CreditsAppliedTotal.Inc()
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleDisputeAdjustment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tradeInID, adjustmentID := vars["id"], vars["adjustmentID"]
	if tradeInID == "" || adjustmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in or adjustment ID")
		return
	}

	var disputeRequest struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&disputeRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.lifecycle.DisputeAdjustment(r.Context(), tradeInID, adjustmentID, disputeRequest.Reason)
	if err != nil {
		s.respondLifecycleError(w, "dispute_adjustment", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (s *Server) handleApplyCredit(w http.ResponseWriter, r *http.Request) {
	tradeInID := mux.Vars(r)["id"]
	if tradeInID == "" {
		respondError(w, http.StatusBadRequest, "Missing trade-in ID")
		return
	}

	var creditRequest struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creditRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.lifecycle.ApplyCredit(r.Context(), tradeInID, creditRequest.Amount)
	if err != nil {
		s.respondLifecycleError(w, "apply_credit", err)
		return
	}

	metrics.CreditsAppliedTotal.Inc()
	respondJSON(w, http.StatusOK, item)
}

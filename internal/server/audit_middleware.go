package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		if tradeInID, ok := mux.Vars(r)["id"]; ok {
			entry.TradeInID = tradeInID
		} else if strings.Contains(r.URL.Path, "/trade-ins/") {
			parts := strings.Split(r.URL.Path, "/")
			for i, part := range parts {
				if part == "trade-ins" && i+1 < len(parts) {
					entry.TradeInID = parts[i+1]
					break
				}
			}
		}

		if entry.TradeInID != "" && r.Method != http.MethodGet {
			if details, err := s.lifecycle.Get(r.Context(), entry.TradeInID); err == nil {
				entry.OldStatus = details.TradeIn.Status
			}
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		rec := newRecordingResponseWriter(w)

		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.Status()
		entry.Response = string(rec.Body())

		if entry.TradeInID != "" && r.Method != http.MethodGet && rec.Status() < http.StatusBadRequest {
			if details, err := s.lifecycle.Get(r.Context(), entry.TradeInID); err == nil {
				entry.NewStatus = details.TradeIn.Status
			}
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/lookup/"):
		return "handleLookupDevice"
	case path == "/valuation":
		return "handleGetValuation"
	case strings.HasPrefix(path, "/findmy/"):
		return "handleFindMyStatus"
	case strings.HasPrefix(path, "/tracking/"):
		return "handleGetTracking"
	case strings.HasPrefix(path, "/trade-ins"):
		switch {
		case strings.HasSuffix(path, "/label"):
			return "handleGenerateLabel"
		case strings.HasSuffix(path, "/inspection"):
			return "handleRecordInspection"
		case strings.HasSuffix(path, "/accept"):
			return "handleAcceptAdjustment"
		case strings.HasSuffix(path, "/dispute"):
			return "handleDisputeAdjustment"
		case strings.HasSuffix(path, "/adjustment"):
			return "handleCreateAdjustment"
		case strings.HasSuffix(path, "/credit"):
			return "handleApplyCredit"
		case method == http.MethodPost:
			return "handleCreateTradeIn"
		case method == http.MethodGet:
			return "handleGetTradeIn"
		}
	}
	return "unknown"
}

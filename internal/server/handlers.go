package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/algebra/internal/config"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/format"
	"github.com/agbru/algebra/internal/poly"
	"github.com/agbru/algebra/internal/service"
	"github.com/agbru/algebra/internal/sysmon"
)

// handleHealth responds to liveness checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	resp := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}
	if stats, err := sysmon.Sample(r.Context()); err == nil {
		resp["system"] = stats
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// handleAlgorithms lists the multiplication strategies accepted by /v1/mul.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{"algorithms": config.Algorithms})
}

// handleMetrics serves the Prometheus exposition.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.metrics.Handler().ServeHTTP(w, r)
}

// handleMul multiplies the operands given as query parameters (GET) or as
// a MulRequest body (POST).
func (s *Server) handleMul(w http.ResponseWriter, r *http.Request) {
	var req MulRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req = MulRequest{A: q.Get("a"), B: q.Get("b"), Algo: q.Get("algo")}
	case http.MethodPost:
		if !s.decodeBody(w, r, &req) {
			return
		}
	default:
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if req.A == "" || req.B == "" {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing 'a' or 'b' operand")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()
	res, err := s.service.Multiply(ctx, req.A, req.B, req.Algo)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, MulResponse{
		Product:   res.Product.String(),
		Bits:      res.Product.BitLen(),
		Algorithm: res.Algorithm,
		Duration:  format.FormatExecutionDuration(res.Duration),
	})
}

// handlePoly runs a polynomial operation given as query parameters (GET)
// or as a PolyRequest body (POST).
func (s *Server) handlePoly(w http.ResponseWriter, r *http.Request) {
	var req PolyRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req = PolyRequest{Op: q.Get("op"), Expr: q.Get("expr"), Arg: q.Get("arg"), Coef: q.Get("coef"), Variable: q.Get("var")}
	case http.MethodPost:
		if !s.decodeBody(w, r, &req) {
			return
		}
	default:
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if req.Expr == "" {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing 'expr' parameter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()
	res, err := s.service.EvaluatePoly(ctx, service.PolyRequest{
		Op: req.Op, Expr: req.Expr, Arg: req.Arg, Coef: req.Coef, Variable: req.Variable,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, res)
}

// decodeBody decodes a JSON body into dst, writing a 400 or 413 on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	var (
		parseErr  apperrors.ParseError
		configErr apperrors.ConfigError
		valErr    apperrors.ValidationError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.As(err, &parseErr), errors.As(err, &configErr), errors.As(err, &valErr):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDivisionByZero), errors.Is(err, poly.ErrInexactDivision):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", err)
	}
	s.writeErrorResponse(w, status, err.Error())
}

// writeJSONResponse writes data as JSON with the given status.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", err)
	}
}

// writeErrorResponse writes a standardized error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

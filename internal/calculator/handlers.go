package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go-calculator/internal/handlers"
	"go-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// errMissingOperand is returned when a request omits a or b.
var errMissingOperand = errors.New("missing operand")

// API serves a single Calculator over HTTP. Requests are serialized with a
// mutex since Calculator itself does no locking.
type API struct {
	mu   sync.Mutex
	calc *Calculator
}

// NewAPI wraps calc. The caller must not use calc directly afterwards.
func NewAPI(calc *Calculator) *API {
	return &API{calc: calc}
}

// Len returns the current history length.
func (api *API) Len() int {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.calc.Len()
}

// ---------------------------------------------------------------------------
// Handlers — binary operations
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func (api *API) Add(w http.ResponseWriter, r *http.Request) {
	api.handleBinaryOp(w, r, "add", func(c *Calculator, a, b Number) (Number, error) {
		return c.Add(a, b), nil
	})
}

// Subtract handles POST /calculator/subtract
func (api *API) Subtract(w http.ResponseWriter, r *http.Request) {
	api.handleBinaryOp(w, r, "subtract", func(c *Calculator, a, b Number) (Number, error) {
		return c.Subtract(a, b), nil
	})
}

// Multiply handles POST /calculator/multiply
func (api *API) Multiply(w http.ResponseWriter, r *http.Request) {
	api.handleBinaryOp(w, r, "multiply", func(c *Calculator, a, b Number) (Number, error) {
		return c.Multiply(a, b), nil
	})
}

// Divide handles POST /calculator/divide. A zero divisor yields 400 and no
// history entry.
func (api *API) Divide(w http.ResponseWriter, r *http.Request) {
	api.handleBinaryOp(w, r, "divide", func(c *Calculator, a, b Number) (Number, error) {
		return c.Divide(a, b)
	})
}

// Power handles POST /calculator/power
func (api *API) Power(w http.ResponseWriter, r *http.Request) {
	api.handleBinaryOp(w, r, "power", func(c *Calculator, a, b Number) (Number, error) {
		return c.Power(a, b), nil
	})
}

// handleBinaryOp is the shared implementation for all binary calculator operations:
// decode, compute under the lock, then span, metrics, log and response.
func (api *API) handleBinaryOp(w http.ResponseWriter, r *http.Request, opName string, compute func(*Calculator, Number, Number) (Number, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if req.A == nil || req.B == nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, errMissingOperand.Error(), errMissingOperand, http.StatusBadRequest, w)
		return
	}
	a, b := *req.A, *req.B

	span.SetAttributes(
		attribute.String("calculator.operand.a", a.String()),
		attribute.String("calculator.operand.b", b.String()),
	)

	// Timed for the duration histogram.
	start := time.Now()
	api.mu.Lock()
	result, err := compute(api.calc, a, b)
	var record string
	if err == nil {
		record = api.calc.last()
	}
	api.mu.Unlock()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result.Float64(), attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result.String()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.result", result.String()))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Stringer("a", a),
		zap.Stringer("b", b),
		zap.Stringer("result", result),
		zap.String("record", record),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         a,
		B:         b,
		Result:    result,
		Record:    record,
	})
}

// ---------------------------------------------------------------------------
// Handlers — history
// ---------------------------------------------------------------------------

// History handles GET /calculator/history
func (api *API) History(w http.ResponseWriter, r *http.Request) {
	api.mu.Lock()
	history := api.calc.History()
	api.mu.Unlock()

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		History: history,
		Count:   len(history),
	})
}

// ClearHistory handles DELETE /calculator/history
func (api *API) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	_, span := tracer.Start(ctx, "calculator.clear_history")
	defer span.End()

	api.mu.Lock()
	cleared := api.calc.Len()
	api.calc.ClearHistory()
	api.mu.Unlock()

	span.SetAttributes(attribute.Int("calculator.history.cleared", cleared))

	logger.Info("calculator history cleared",
		zap.Int("cleared", cleared),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}

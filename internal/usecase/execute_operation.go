package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/flowhost/sfbridge/internal/domain"
)

// ExecuteOperationUseCase is the operation dispatcher: it turns a raw
// operation tag and parameter bag from the host into a tool invocation.
// Parse, resolve, sanitize, invoke; every error kind passes through to the
// caller unchanged.
type ExecuteOperationUseCase struct {
	resolver    ToolResolver
	invoker     ToolInvoker
	logger      *slog.Logger
	tracer      trace.Tracer
	invocations metric.Int64Counter
}

// NewExecuteOperationUseCase creates the dispatcher.
func NewExecuteOperationUseCase(resolver ToolResolver, invoker ToolInvoker, logger *slog.Logger) *ExecuteOperationUseCase {
	meter := otel.Meter("sfbridge/usecase")
	invocations, err := meter.Int64Counter("sfbridge.operation.invocations",
		metric.WithDescription("Number of operation executions, by operation and outcome."))
	if err != nil {
		logger.Warn("failed to create invocation counter", slog.Any("error", err))
	}
	return &ExecuteOperationUseCase{
		resolver:    resolver,
		invoker:     invoker,
		logger:      logger.With("usecase", "ExecuteOperation"),
		tracer:      otel.Tracer("sfbridge/usecase"),
		invocations: invocations,
	}
}

// Execute runs one operation. The bag is sanitized before dispatch:
// credential survives verbatim (materialized first), the operation tag and
// empty optional fields are stripped, and everything else keeps its order.
func (uc *ExecuteOperationUseCase) Execute(ctx context.Context, operation string, params *domain.Params) (*domain.Result, error) {
	invocationID := uuid.NewString()
	log := uc.logger.With(
		slog.String("operation", operation),
		slog.String("invocation_id", invocationID),
	)

	ctx, span := uc.tracer.Start(ctx, "operation.execute",
		trace.WithAttributes(attribute.String("sfbridge.operation", operation)))
	defer span.End()

	op, err := domain.ParseOperation(operation)
	if err != nil {
		log.Warn("unknown operation tag", slog.Any("error", err))
		uc.record(ctx, operation, "unknown_operation")
		span.SetStatus(codes.Error, "unknown operation")
		return nil, err
	}

	desc, err := uc.resolver.Resolve(op)
	if err != nil {
		log.Warn("no tool for operation", slog.Any("error", err))
		uc.record(ctx, operation, "unknown_operation")
		span.SetStatus(codes.Error, "no tool")
		return nil, err
	}
	span.SetAttributes(attribute.String("sfbridge.tool", desc.ID))

	sanitized := params.Sanitize()
	log.Debug("dispatching operation",
		slog.String("tool", desc.ID),
		slog.Int("params_in", params.Len()),
		slog.Int("params_out", sanitized.Len()),
	)

	result, err := uc.invoker.Invoke(ctx, desc, sanitized)
	if err != nil {
		log.Error("operation failed", slog.Any("error", err))
		uc.record(ctx, operation, "error")
		span.SetStatus(codes.Error, "invocation failed")
		return nil, err
	}

	log.Info("operation succeeded", slog.String("tool", desc.ID))
	uc.record(ctx, operation, "ok")
	return result, nil
}

func (uc *ExecuteOperationUseCase) record(ctx context.Context, operation, outcome string) {
	if uc.invocations == nil {
		return
	}
	uc.invocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

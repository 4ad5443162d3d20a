package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
)

var errTrailingData = errors.New("unexpected data after arguments")

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (order.Snapshot, error)
	}

	AgreeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AgreeOrderCommand) (order.Snapshot, error)
	}

	ConfirmDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmDeliveryCommand) (order.Snapshot, error)
	}

	FinalizeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.FinalizeOrderCommand) (order.Snapshot, error)
	}

	// Recorder receives one observation per submission.
	Recorder interface {
		ObserveSubmission(operation, outcome string, elapsed time.Duration)
	}
)

// Handlers are the command handlers the gateway dispatches to.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	AgreeOrder      AgreeOrderHandler
	ConfirmDelivery ConfirmDeliveryHandler
	FinalizeOrder   FinalizeOrderHandler
}

type Gateway struct {
	handlers Handlers
	recorder Recorder
	logger   *slog.Logger
}

// NewGateway returns a gateway over handlers. recorder may be nil.
func NewGateway(handlers Handlers, recorder Recorder, logger *slog.Logger) (*Gateway, error) {
	if handlers.CreateOrder == nil || handlers.AgreeOrder == nil ||
		handlers.ConfirmDelivery == nil || handlers.FinalizeOrder == nil {
		return nil, errors.New("submission gateway needs all four command handlers")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		handlers: handlers,
		recorder: recorder,
		logger:   logger.With("component", "submission"),
	}, nil
}

// Submit executes req and reports its outcome. It never returns an error:
// failures are in Result.ErrorKind.
func (g *Gateway) Submit(ctx context.Context, req Request) Result {
	started := time.Now()

	snapshot, err := g.dispatch(ctx, req)

	res := g.result(req, snapshot, err)
	if g.recorder != nil {
		outcome := "ok"
		if !res.Success {
			outcome = string(res.ErrorKind)
		}
		g.recorder.ObserveSubmission(string(req.Operation), outcome, time.Since(started))
	}
	return res
}

func (g *Gateway) dispatch(ctx context.Context, req Request) (order.Snapshot, error) {
	if err := req.Caller.Validate(); err != nil {
		return order.Snapshot{}, kernel.NewKindError(kernel.KindInvalidRequest, fmt.Errorf("caller: %w", err))
	}

	switch req.Operation {
	case CreateOrder:
		return g.createOrder(ctx, req)
	case AgreeOrder:
		return g.agreeOrder(ctx, req)
	case ConfirmDelivery:
		return g.confirmDelivery(ctx, req)
	case FinalizeOrder:
		return g.finalizeOrder(ctx, req)
	default:
		return order.Snapshot{}, kernel.NewKindErrorf(kernel.KindInvalidRequest, "unknown operation %q", req.Operation)
	}
}

func (g *Gateway) createOrder(ctx context.Context, req Request) (order.Snapshot, error) {
	var args createOrderArguments
	if err := decodeArguments(req.Arguments, &args); err != nil {
		return order.Snapshot{}, invalidArguments(err)
	}
	if args.GoodsValue == nil || args.ServiceFee == nil {
		return order.Snapshot{}, kernel.NewKindErrorf(kernel.KindInvalidRequest, "goodsValue and serviceFee are required")
	}

	id := kernel.NewUUID()
	if req.OrderID != "" {
		parsed, err := parseOrderID(req.OrderID)
		if err != nil {
			return order.Snapshot{}, err
		}
		id = parsed
	}

	var carrier *kernel.Address
	if args.Carrier != nil {
		addr, err := kernel.NewAddress(*args.Carrier)
		if err != nil {
			return order.Snapshot{}, invalidArguments(err)
		}
		carrier = &addr
	}

	cmd, err := commands.NewCreateOrderCommand(id, req.Caller, *args.GoodsValue, *args.ServiceFee, carrier)
	if err != nil {
		return order.Snapshot{}, err
	}
	return g.handlers.CreateOrder.Handle(ctx, cmd)
}

func (g *Gateway) agreeOrder(ctx context.Context, req Request) (order.Snapshot, error) {
	id, err := parseOrderID(req.OrderID)
	if err != nil {
		return order.Snapshot{}, err
	}
	var args agreeOrderArguments
	if err = decodeArguments(req.Arguments, &args); err != nil {
		return order.Snapshot{}, invalidArguments(err)
	}
	if args.Role == nil {
		return order.Snapshot{}, kernel.NewKindErrorf(kernel.KindInvalidRequest, "role is required")
	}
	role, err := order.RoleFromInt(*args.Role)
	if err != nil {
		return order.Snapshot{}, invalidArguments(err)
	}

	cmd, err := commands.NewAgreeOrderCommand(id, req.Caller, role)
	if err != nil {
		return order.Snapshot{}, err
	}
	return g.handlers.AgreeOrder.Handle(ctx, cmd)
}

func (g *Gateway) confirmDelivery(ctx context.Context, req Request) (order.Snapshot, error) {
	id, err := parseOrderID(req.OrderID)
	if err != nil {
		return order.Snapshot{}, err
	}
	if err = decodeArguments(req.Arguments, &struct{}{}); err != nil {
		return order.Snapshot{}, invalidArguments(err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(id, req.Caller)
	if err != nil {
		return order.Snapshot{}, err
	}
	return g.handlers.ConfirmDelivery.Handle(ctx, cmd)
}

func (g *Gateway) finalizeOrder(ctx context.Context, req Request) (order.Snapshot, error) {
	id, err := parseOrderID(req.OrderID)
	if err != nil {
		return order.Snapshot{}, err
	}
	if err = decodeArguments(req.Arguments, &struct{}{}); err != nil {
		return order.Snapshot{}, invalidArguments(err)
	}

	cmd, err := commands.NewFinalizeOrderCommand(id, req.Caller)
	if err != nil {
		return order.Snapshot{}, err
	}
	return g.handlers.FinalizeOrder.Handle(ctx, cmd)
}

// result maps err to a kind. Errors without a kind are infrastructure
// failures: they are logged with their cause and reported as Internal
// without details.
func (g *Gateway) result(req Request, snapshot order.Snapshot, err error) Result {
	if err == nil {
		return Result{Success: true, Order: &snapshot}
	}

	kind, ok := kernel.KindOf(err)
	if !ok {
		g.logger.Error("submission failed",
			"operation", req.Operation,
			"orderId", req.OrderID,
			"caller", req.Caller.String(),
			"error", err,
		)
		return Result{ErrorKind: kernel.KindInternal, Message: "internal error"}
	}

	g.logger.Debug("submission rejected",
		"operation", req.Operation,
		"orderId", req.OrderID,
		"kind", kind,
		"error", err,
	)
	return Result{ErrorKind: kind, Message: err.Error()}
}

func parseOrderID(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, kernel.NewKindErrorf(kernel.KindInvalidRequest, "orderId is required")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, invalidArguments(err)
	}
	return id, nil
}

func invalidArguments(err error) error {
	return kernel.NewKindError(kernel.KindInvalidRequest, err)
}

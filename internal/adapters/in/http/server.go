// Package http exposes the escrow ledger over REST with echo. Mutations go
// through the submission gateway; reads go straight to the query handlers.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/submission"
	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"
	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/queries"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
	"github.com/M-ayank2005/Carryaptos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	// CallerHeader carries the address of the authenticated caller. It is set
	// by the platform in front of this service.
	CallerHeader         = "X-Caller-Address"
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// Checker reports the health of one dependency.
type Checker func(ctx context.Context) error

// Handlers are the use cases served over HTTP.
type Handlers struct {
	Gateway           *submission.Gateway
	DepositFunds      commands.DepositFundsCommandHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersByPartyQueryHandler
	ListLedgerEntries queries.ListLedgerEntriesQueryHandler
	GetAccount        queries.GetAccountQueryHandler
	GetCustody        queries.GetCustodySummaryQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers       Handlers
	idempotency    ports.IdempotencyStore
	idempotencyTTL time.Duration
	checks         map[string]Checker
	logger         *slog.Logger
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithIdempotency enables replay of stored results for requests carrying an
// Idempotency-Key header.
func WithIdempotency(store ports.IdempotencyStore, ttl time.Duration) Option {
	return func(s *Server) {
		s.idempotency = store
		s.idempotencyTTL = ttl
	}
}

// WithHealthCheck adds a dependency to GET /health.
func WithHealthCheck(name string, check Checker) Option {
	return func(s *Server) {
		s.checks[name] = check
	}
}

func NewServer(handlers Handlers, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		handlers: handlers,
		checks:   make(map[string]Checker),
		logger:   logger.With("component", "http"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitTransaction handles POST /api/v1/transactions.
func (s *Server) SubmitTransaction(c echo.Context, params servers.SubmitTransactionParams) error {
	caller, err := kernel.NewAddress(valueOf(params.XCallerAddress))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apiError(http.StatusUnauthorized, "",
			"missing or invalid "+CallerHeader+" header"))
	}

	body, err := readBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiError(http.StatusBadRequest, kernel.KindInvalidRequest, err.Error()))
	}

	key := strings.TrimSpace(valueOf(params.IdempotencyKey))
	if key == "" || s.idempotency == nil {
		status, res := s.submit(c.Request().Context(), caller, body)
		return c.JSON(status, res)
	}
	return s.submitOnce(c, caller, key, body)
}

func (s *Server) submit(ctx context.Context, caller kernel.Address, body []byte) (int, servers.TransactionResult) {
	req, err := decodeRequest(body)
	if err != nil {
		res := submission.Result{ErrorKind: kernel.KindInvalidRequest, Message: err.Error()}
		return statusFor(res), toTransactionResult(res)
	}

	res := s.handlers.Gateway.Submit(ctx, toSubmissionRequest(caller, req))
	return statusFor(res), toTransactionResult(res)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(c, kernel.NewKindError(kernel.KindInvalidRequest, err))
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	snapshot, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(snapshot))
}

// ListOrders handles GET /api/v1/orders?party=.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	party, err := kernel.NewAddress(params.Party)
	if err != nil {
		return s.fail(c, kernel.NewKindError(kernel.KindInvalidRequest, err))
	}
	query, err := queries.NewListOrdersByPartyQuery(party)
	if err != nil {
		return s.fail(c, err)
	}

	snapshots, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Order, len(snapshots))
	for i, snapshot := range snapshots {
		response[i] = toOrder(snapshot)
	}
	return c.JSON(http.StatusOK, response)
}

// ListOrderLedger handles GET /api/v1/orders/{id}/ledger.
func (s *Server) ListOrderLedger(c echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(c, kernel.NewKindError(kernel.KindInvalidRequest, err))
	}
	query, err := queries.NewListLedgerEntriesQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	entries, err := s.handlers.ListLedgerEntries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.LedgerEntry, len(entries))
	for i, entry := range entries {
		response[i] = toLedgerEntry(entry)
	}
	return c.JSON(http.StatusOK, response)
}

// GetAccount handles GET /api/v1/accounts/{address}.
func (s *Server) GetAccount(c echo.Context, address servers.Address) error {
	owner, err := kernel.NewAddress(address)
	if err != nil {
		return s.fail(c, kernel.NewKindError(kernel.KindInvalidRequest, err))
	}
	query, err := queries.NewGetAccountQuery(owner)
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.handlers.GetAccount.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toAccount(res.Address, res.Balance))
}

// Deposit handles POST /api/v1/accounts/{address}/deposits.
func (s *Server) Deposit(c echo.Context, address servers.Address) error {
	owner, err := kernel.NewAddress(address)
	if err != nil {
		return s.fail(c, kernel.NewKindError(kernel.KindInvalidRequest, err))
	}

	var body servers.DepositRequest
	if err = c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, apiError(http.StatusBadRequest, kernel.KindInvalidRequest,
			"body must be {\"amount\": \"<decimal>\"}"))
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return s.fail(c, kernel.NewKindErrorf(kernel.KindInvalidAmount, "amount %q: %w", body.Amount, err))
	}

	cmd, err := commands.NewDepositFundsCommand(owner, amount)
	if err != nil {
		return s.fail(c, err)
	}
	balance, err := s.handlers.DepositFunds.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAccount(owner, balance))
}

// GetCustody handles GET /api/v1/custody.
func (s *Server) GetCustody(c echo.Context) error {
	res, err := s.handlers.GetCustody.Handle(c.Request().Context(), queries.NewGetCustodySummaryQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCustodySummary(res))
}

// GetHealth handles GET /health. It answers 503 when any dependency check
// fails.
func (s *Server) GetHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	res := servers.HealthStatus{Status: servers.HealthStatusStatusOk}
	status := http.StatusOK
	if len(s.checks) == 0 {
		return c.JSON(status, res)
	}

	checks := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warn("health check failed", "check", name, "error", err)
			checks[name] = err.Error()
			res.Status = servers.HealthStatusStatusDegraded
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	res.Checks = &checks
	return c.JSON(status, res)
}

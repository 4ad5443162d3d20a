package http

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// storedResult is what the idempotency store keeps per (caller, key). A
// pending record marks a request that holds the key and has not finished.
type storedResult struct {
	Fingerprint string                    `json:"fingerprint"`
	Pending     bool                      `json:"pending,omitempty"`
	Status      int                       `json:"status,omitempty"`
	Result      servers.TransactionResult `json:"result"`
}

// submitOnce reserves the key before executing, so exactly one request per
// (caller, key) reaches the gateway. Requests arriving while the key is
// reserved get 409; later ones get the stored result, or 422 when their body
// differs from the one that took the key.
func (s *Server) submitOnce(c echo.Context, caller kernel.Address, key string, body []byte) error {
	ctx := c.Request().Context()
	storeKey := caller.String() + "|" + key
	fingerprint := fingerprintOf(body)

	pending, err := json.Marshal(storedResult{Fingerprint: fingerprint, Pending: true})
	if err != nil {
		return errors.Wrap(err, "encode idempotency reservation")
	}
	reserved, err := s.idempotency.Put(ctx, storeKey, pending, s.idempotencyTTL)
	if err != nil {
		return s.storeUnavailable(c, caller, err)
	}
	if !reserved {
		record, found, err := s.lookup(ctx, storeKey)
		if err != nil {
			return s.storeUnavailable(c, caller, err)
		}
		if !found {
			// The holder's record expired between the two calls.
			return c.JSON(http.StatusConflict, apiError(http.StatusConflict, "",
				IdempotencyKeyHeader+" is in use, retry the request"))
		}
		return respondStored(c, record, fingerprint)
	}

	status, res := s.submit(ctx, caller, body)
	raw, err := json.Marshal(storedResult{Fingerprint: fingerprint, Status: status, Result: res})
	if err != nil {
		s.logger.Error("encode idempotency record", "error", err)
		return c.JSON(status, res)
	}
	// The transition is committed; record it even if the client went away.
	if err = s.idempotency.Set(context.WithoutCancel(ctx), storeKey, raw, s.idempotencyTTL); err != nil {
		s.logger.Error("store idempotency record", "caller", caller.String(), "error", err)
	}
	return c.JSON(status, res)
}

func (s *Server) storeUnavailable(c echo.Context, caller kernel.Address, err error) error {
	s.logger.Error("idempotency store", "caller", caller.String(), "error", err)
	return c.JSON(http.StatusServiceUnavailable,
		apiError(http.StatusServiceUnavailable, "", "idempotency store unavailable"))
}

func (s *Server) lookup(ctx context.Context, storeKey string) (storedResult, bool, error) {
	raw, found, err := s.idempotency.Get(ctx, storeKey)
	if err != nil || !found {
		return storedResult{}, false, err
	}

	var record storedResult
	if err = json.Unmarshal(raw, &record); err != nil {
		return storedResult{}, false, errors.Wrap(err, "decode idempotency record")
	}
	return record, true, nil
}

func respondStored(c echo.Context, record storedResult, fingerprint string) error {
	if record.Fingerprint != fingerprint {
		return c.JSON(http.StatusUnprocessableEntity, apiError(http.StatusUnprocessableEntity, "",
			IdempotencyKeyHeader+" was already used with a different request"))
	}
	if record.Pending {
		return c.JSON(http.StatusConflict, apiError(http.StatusConflict, "",
			"a request with this "+IdempotencyKeyHeader+" is still in progress"))
	}

	c.Response().Header().Set(ReplayedHeader, "true")
	return c.JSON(record.Status, record.Result)
}

func fingerprintOf(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/submission"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const maxBodyBytes = 64 << 10

var kindStatus = map[kernel.ErrorKind]int{
	kernel.KindInvalidAmount:       http.StatusBadRequest,
	kernel.KindInvalidRequest:      http.StatusBadRequest,
	kernel.KindInsufficientFunds:   http.StatusPaymentRequired,
	kernel.KindUnauthorized:        http.StatusForbidden,
	kernel.KindOrderNotFound:       http.StatusNotFound,
	kernel.KindInvalidState:        http.StatusConflict,
	kernel.KindAlreadyAgreed:       http.StatusConflict,
	kernel.KindAgreementIncomplete: http.StatusConflict,
	kernel.KindAlreadyFinalized:    http.StatusConflict,
	kernel.KindInternal:            http.StatusInternalServerError,
}

// StatusForKind maps an error kind to its HTTP status.
func StatusForKind(kind kernel.ErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func statusFor(res submission.Result) int {
	if res.Success {
		return http.StatusOK
	}
	return StatusForKind(res.ErrorKind)
}

// apiError builds the body of every non-Result error response. kind may be
// empty.
func apiError(status int, kind kernel.ErrorKind, message string) servers.Error {
	e := servers.Error{Code: status, Message: message}
	if kind != "" {
		k := servers.ErrorKind(kind)
		e.Kind = &k
	}
	return e
}

// fail writes err as an Error. Errors without a kind are logged and hidden.
func (s *Server) fail(c echo.Context, err error) error {
	kind, ok := kernel.KindOf(err)
	if !ok {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError,
			apiError(http.StatusInternalServerError, kernel.KindInternal, "internal error"))
	}

	status := StatusForKind(kind)
	return c.JSON(status, apiError(status, kind, err.Error()))
}

// handleError renders errors returned by routing, parameter binding and
// middleware in the same Error shape the handlers use.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	var kind kernel.ErrorKind
	if status == http.StatusBadRequest {
		kind = kernel.KindInvalidRequest
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, apiError(status, kind, message))
	}
	if err != nil {
		s.logger.Error("write error response", "error", err)
	}
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}
	return body, nil
}

func decodeRequest(body []byte) (servers.TransactionRequest, error) {
	var req servers.TransactionRequest
	if len(body) == 0 {
		return req, errors.New("request body is empty")
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("malformed request: %w", err)
	}
	return req, nil
}

package http

import (
	"net/http"
	"sync"

	"github.com/M-ayank2005/Carryaptos/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDoc sync.Once

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc []byte

func (d openAPIDoc) ReadDoc() string {
	return string(d)
}

// RegisterRoutes mounts the API, its request validation and the swagger UI
// on e. metrics may be nil.
func (s *Server) RegisterRoutes(e *echo.Echo, metrics http.Handler) error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return errors.Wrap(err, "load openapi document")
	}
	doc, err := spec.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode openapi document")
	}
	validate, err := requestValidator(spec)
	if err != nil {
		return errors.Wrap(err, "build request validator")
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, openAPIDoc(doc))
	})

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.BodyLimit("64K"))
	e.Use(validate)

	servers.RegisterHandlers(e, s)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	return nil
}

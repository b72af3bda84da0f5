package http

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// GetSwagger parses the embedded API document.
func GetSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	return doc, nil
}

// OpenAPIValidator rejects requests that do not match doc with 400. Routes
// missing from doc, such as /swagger/*, pass through unchecked.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// match on path only
	doc.Servers = nil

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}
	if reqErr.Parameter != nil {
		return fmt.Sprintf("parameter %s: %s", reqErr.Parameter.Name, reqErr.Reason)
	}
	if reqErr.Err != nil {
		return "request body: " + reqErr.Err.Error()
	}
	return reqErr.Reason
}

// apiDoc serves the API document to echo-swagger.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// registerSwaggerDoc publishes doc under swag.Name, the instance echo-swagger
// reads by default. swag panics when a name is registered twice.
func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(data)})
	})
	return nil
}

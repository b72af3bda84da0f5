package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types of openapi.yaml.
type (
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	Event struct {
		Trigger        string             `json:"trigger"`
		Action         *string            `json:"action,omitempty"`
		NumberPlate    *string            `json:"numberPlate,omitempty"`
		CustomerName   *string            `json:"customerName,omitempty"`
		GrossWeightKg  *float64           `json:"grossWeightKg,omitempty"`
		AddressID      *string            `json:"addressId,omitempty"`
		NoAddress      *bool              `json:"noAddress,omitempty"`
		ProductIDs     []string           `json:"productIds,omitempty"`
		Quantities     map[string]float64 `json:"quantities,omitempty"`
		LoadedWeightKg *float64           `json:"loadedWeightKg,omitempty"`
	}

	Session struct {
		ID              openapi_types.UUID `json:"id"`
		Step            string             `json:"step"`
		EnabledTriggers []string           `json:"enabledTriggers"`
		Draft           Draft              `json:"draft"`
		Document        *Document          `json:"document,omitempty"`
		StartedAt       time.Time          `json:"startedAt"`
		LastActivity    time.Time          `json:"lastActivity"`
	}

	Draft struct {
		Action         string              `json:"action,omitempty"`
		NumberPlate    string              `json:"numberPlate,omitempty"`
		CustomerName   string              `json:"customerName,omitempty"`
		IsRegistered   bool                `json:"isRegistered"`
		GrossWeightKg  *float64            `json:"grossWeightKg,omitempty"`
		AddressChosen  bool                `json:"addressChosen"`
		Address        *Address            `json:"address,omitempty"`
		ProductIDs     []string            `json:"productIds,omitempty"`
		Quantities     map[string]float64  `json:"quantities,omitempty"`
		OrderID        *openapi_types.UUID `json:"orderId,omitempty"`
		LoadedWeightKg *float64            `json:"loadedWeightKg,omitempty"`
		TareWeightKg   *float64            `json:"tareWeightKg,omitempty"`
		NetWeightKg    *float64            `json:"netWeightKg,omitempty"`
	}

	Document struct {
		Kind           string             `json:"kind"`
		Number         string             `json:"number"`
		IssuedAt       time.Time          `json:"issuedAt"`
		Language       string             `json:"language"`
		OrderID        openapi_types.UUID `json:"orderId"`
		TruckID        string             `json:"truckId"`
		CustomerName   string             `json:"customerName"`
		Address        *Address           `json:"address,omitempty"`
		TareWeightKg   float64            `json:"tareWeightKg"`
		LoadedWeightKg float64            `json:"loadedWeightKg"`
		NetWeightKg    float64            `json:"netWeightKg"`
		NetTons        string             `json:"netTons"`
		Lines          []DocumentLine     `json:"lines"`
		Subtotal       string             `json:"subtotal,omitempty"`
		VATRate        string             `json:"vatRate,omitempty"`
		VAT            string             `json:"vat,omitempty"`
		Total          string             `json:"total,omitempty"`
	}

	DocumentLine struct {
		ProductID       string  `json:"productId"`
		ProductName     string  `json:"productName"`
		OrderedQuantity float64 `json:"orderedQuantity"`
		ActualTons      string  `json:"actualTons"`
		PricePerTon     string  `json:"pricePerTon,omitempty"`
		Amount          string  `json:"amount,omitempty"`
	}

	Product struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Description   string  `json:"description,omitempty"`
		StockyardArea string  `json:"stockyardArea"`
		Availability  string  `json:"availability"`
		Unit          string  `json:"unit"`
		Price         *string `json:"price,omitempty"`
	}

	Address struct {
		ID         string `json:"id"`
		Street     string `json:"street"`
		City       string `json:"city"`
		PostalCode string `json:"postalCode"`
		Country    string `json:"country"`
	}

	PlateLookup struct {
		NumberPlate  string `json:"numberPlate"`
		CustomerName string `json:"customerName,omitempty"`
		Known        bool   `json:"known"`
		IsRegistered bool   `json:"isRegistered"`
	}

	Order struct {
		ID            openapi_types.UUID `json:"id"`
		TruckID       string             `json:"truckId"`
		CustomerName  string             `json:"customerName"`
		Kind          string             `json:"kind"`
		Status        string             `json:"status"`
		Lines         []OrderLine        `json:"lines"`
		Address       *Address           `json:"address,omitempty"`
		GrossWeightKg float64            `json:"grossWeightKg"`
		TareWeightKg  *float64           `json:"tareWeightKg,omitempty"`
		NetWeightKg   *float64           `json:"netWeightKg,omitempty"`
		Notes         []Note             `json:"notes,omitempty"`
	}

	OrderLine struct {
		ProductID string  `json:"productId"`
		Quantity  float64 `json:"quantity"`
	}

	Note struct {
		Text string    `json:"text"`
		At   time.Time `json:"at"`
	}

	NewNote struct {
		Text string `json:"text"`
	}
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	GetHealth(ctx echo.Context) error
	StartSession(ctx echo.Context) error
	GetSession(ctx echo.Context, sessionID openapi_types.UUID) error
	ApplySessionEvent(ctx echo.Context, sessionID openapi_types.UUID) error
	GetProducts(ctx echo.Context) error
	GetAddresses(ctx echo.Context) error
	LookupPlate(ctx echo.Context, plate string) error
	GetOrders(ctx echo.Context) error
	StartOrderLoading(ctx echo.Context, orderID openapi_types.UUID) error
	CompleteOrder(ctx echo.Context, orderID openapi_types.UUID) error
	AddOrderNote(ctx echo.Context, orderID openapi_types.UUID) error
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// serverInterfaceWrapper binds path parameters before calling the server.
type serverInterfaceWrapper struct {
	handler ServerInterface
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *serverInterfaceWrapper) withSessionID(call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindUUID(ctx, "sessionId")
		if err != nil {
			return err
		}
		return call(ctx, id)
	}
}

func (w *serverInterfaceWrapper) withOrderID(call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindUUID(ctx, "orderId")
		if err != nil {
			return err
		}
		return call(ctx, id)
	}
}

func (w *serverInterfaceWrapper) LookupPlate(ctx echo.Context) error {
	var plate string
	err := runtime.BindStyledParameterWithOptions("simple", "plate", ctx.Param("plate"), &plate,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter plate: %s", err))
	}
	return w.handler.LookupPlate(ctx, plate)
}

// RegisterHandlers adds every route of openapi.yaml to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &serverInterfaceWrapper{handler: si}

	router.GET("/health", si.GetHealth)
	router.POST("/api/v1/sessions", si.StartSession)
	router.GET("/api/v1/sessions/:sessionId", w.withSessionID(si.GetSession))
	router.POST("/api/v1/sessions/:sessionId/events", w.withSessionID(si.ApplySessionEvent))
	router.GET("/api/v1/products", si.GetProducts)
	router.GET("/api/v1/addresses", si.GetAddresses)
	router.GET("/api/v1/plates/:plate", w.LookupPlate)
	router.GET("/api/v1/orders", si.GetOrders)
	router.POST("/api/v1/orders/:orderId/start", w.withOrderID(si.StartOrderLoading))
	router.POST("/api/v1/orders/:orderId/complete", w.withOrderID(si.CompleteOrder))
	router.POST("/api/v1/orders/:orderId/notes", w.withOrderID(si.AddOrderNote))
}

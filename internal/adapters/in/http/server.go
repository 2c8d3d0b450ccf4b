// Package http exposes the application's use cases as a JSON API over
// echo. Routes are registered explicitly; authentication happens in the
// identity gateway upstream and arrives here as trusted headers.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agrilease/internal/core/application/usecases/commands"
	"agrilease/internal/core/application/usecases/queries"
	"agrilease/internal/core/domain/model/actor"
	"agrilease/internal/core/domain/model/device"
	"agrilease/internal/core/domain/model/kernel"
	"agrilease/internal/core/domain/model/lease"
	"agrilease/internal/core/domain/model/order"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/ports"
	"agrilease/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeviceHandler       commands.CreateDeviceCommandHandler
	changeDeviceStatusHandler commands.ChangeDeviceStatusCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	rejectOrderHandler        commands.RejectOrderCommandHandler
	createLeaseHandler        commands.CreateLeaseFromOrderCommandHandler
	endLeaseHandler           commands.EndLeaseCommandHandler
	assignOperatorHandler     commands.AssignOperatorCommandHandler
	createPricingRuleHandler  commands.CreatePricingRuleCommandHandler

	// Query handlers
	discoverDevicesHandler    queries.DiscoverDevicesQueryHandler
	getActivePricingHandler   queries.GetActivePricingQueryHandler
	getOrdersByRequesterHandler queries.GetOrdersByRequesterQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createDeviceHandler commands.CreateDeviceCommandHandler,
	changeDeviceStatusHandler commands.ChangeDeviceStatusCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	createLeaseHandler commands.CreateLeaseFromOrderCommandHandler,
	endLeaseHandler commands.EndLeaseCommandHandler,
	assignOperatorHandler commands.AssignOperatorCommandHandler,
	createPricingRuleHandler commands.CreatePricingRuleCommandHandler,
	discoverDevicesHandler queries.DiscoverDevicesQueryHandler,
	getActivePricingHandler queries.GetActivePricingQueryHandler,
	getOrdersByRequesterHandler queries.GetOrdersByRequesterQueryHandler,
) *Server {
	return &Server{
		createDeviceHandler:         createDeviceHandler,
		changeDeviceStatusHandler:   changeDeviceStatusHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		createLeaseHandler:          createLeaseHandler,
		endLeaseHandler:             endLeaseHandler,
		assignOperatorHandler:       assignOperatorHandler,
		createPricingRuleHandler:    createPricingRuleHandler,
		discoverDevicesHandler:      discoverDevicesHandler,
		getActivePricingHandler:     getActivePricingHandler,
		getOrdersByRequesterHandler: getOrdersByRequesterHandler,
	}
}

// RegisterRoutes binds the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/devices", s.CreateDevice)
	api.POST("/devices/:id/status", s.ChangeDeviceStatus)
	api.GET("/devices", s.DiscoverDevices)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetMyOrders)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/lease", s.CreateLease)

	api.POST("/leases/:id/end", s.EndLease)
	api.POST("/leases/:id/operators", s.AssignOperator)

	api.POST("/pricing-rules", s.CreatePricingRule)
	api.GET("/pricing/active", s.GetActivePricing)
}

// CreateDeviceRequest is the body of POST /api/v1/devices.
type CreateDeviceRequest struct {
	DeviceType string  `json:"deviceType"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Pincode    string  `json:"pincode"`
}

// CreatedResponse carries the identifier of a newly created entity.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateDevice handles POST /api/v1/devices.
func (s *Server) CreateDevice(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateDeviceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Lat, req.Lon)
	if err != nil {
		return respondError(ctx, err)
	}
	pincode, err := kernel.NewPincode(req.Pincode)
	if err != nil {
		return respondError(ctx, err)
	}

	deviceID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeviceCommand(deviceID, requester.Role(), req.DeviceType, location, pincode)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createDeviceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deviceID.String()})
}

// ChangeDeviceStatusRequest is the body of POST /api/v1/devices/:id/status.
type ChangeDeviceStatusRequest struct {
	Status string `json:"status"`
}

// ChangeDeviceStatus handles POST /api/v1/devices/:id/status.
func (s *Server) ChangeDeviceStatus(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	deviceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid device ID")
	}

	var req ChangeDeviceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toStatus, err := device.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeDeviceStatusCommand(deviceID, requester.Role(), toStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeDeviceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeviceResponse is one discoverable device in GET /api/v1/devices.
type DeviceResponse struct {
	ID             string   `json:"id"`
	DeviceType     string   `json:"deviceType"`
	Pincode        string   `json:"pincode"`
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	Leased         bool     `json:"leased"`
	DistanceKm     *float64 `json:"distanceKm,omitempty"`
	IndicativeRate *int64   `json:"indicativeRate,omitempty"`
	RateMetric     string   `json:"rateMetric,omitempty"`
}

// DiscoverDevices handles GET /api/v1/devices.
func (s *Server) DiscoverDevices(ctx echo.Context) error {
	// Discovery is open to unauthenticated searchers: without identity
	// headers the search runs with no lease-visibility filter.
	searcherRole := actor.RoleUnknown
	if ctx.Request().Header.Get(HeaderActorID) != "" || ctx.Request().Header.Get(HeaderActorRole) != "" {
		requester, err := RequestActor(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		searcherRole = requester.Role()
	}

	var near *kernel.GeoPoint
	if latStr, lonStr := ctx.QueryParam("lat"), ctx.QueryParam("lon"); latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return badRequest(ctx, "Invalid coordinates")
		}
		point, pointErr := kernel.NewGeoPoint(lat, lon)
		if pointErr != nil {
			return respondError(ctx, pointErr)
		}
		near = &point
	}

	asOf, err := parseTimeParam(ctx.QueryParam("asOf"))
	if err != nil {
		return badRequest(ctx, "Invalid asOf timestamp")
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query, err := queries.NewDiscoverDevicesQuery(
		searcherRole, ctx.QueryParam("deviceType"), near, asOf, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	devices, err := s.discoverDevicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeviceResponse, len(devices))
	for i, d := range devices {
		response[i] = DeviceResponse{
			ID:             d.ID.String(),
			DeviceType:     d.DeviceType,
			Pincode:        d.Pincode.String(),
			Lat:            d.Location.Lat(),
			Lon:            d.Location.Lon(),
			Leased:         d.Leased,
			DistanceKm:     d.DistanceKm,
			IndicativeRate: d.IndicativeRate,
			RateMetric:     d.RateMetric,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	DeviceID   string    `json:"deviceId"`
	QtyHours   *int      `json:"qtyHours,omitempty"`
	QtyAcres   *int      `json:"qtyAcres,omitempty"`
	PeriodFrom time.Time `json:"periodFrom"`
	PeriodTo   time.Time `json:"periodTo"`
	Note       string    `json:"note,omitempty"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deviceID, err := kernel.UUIDFromString(req.DeviceID)
	if err != nil {
		return badRequest(ctx, "Invalid device ID")
	}
	quantity, err := order.NewQuantity(req.QtyHours, req.QtyAcres)
	if err != nil {
		return respondError(ctx, err)
	}
	period, err := kernel.NewDateRange(req.PeriodFrom, req.PeriodTo)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, deviceID, requester.ID(), requester.Role(), quantity, period, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// OrderResponse is one order in GET /api/v1/orders.
type OrderResponse struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"deviceId"`
	OrderType  string    `json:"orderType"`
	Status     string    `json:"status"`
	PeriodFrom time.Time `json:"periodFrom"`
	PeriodTo   time.Time `json:"periodTo"`
	Note       string    `json:"note,omitempty"`
	LeaseID    *string   `json:"leaseId,omitempty"`
}

// GetMyOrders handles GET /api/v1/orders - the requester's own orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByRequesterQuery(requester.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByRequesterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:         o.ID.String(),
			DeviceID:   o.DeviceID.String(),
			OrderType:  o.OrderType,
			Status:     o.Status,
			PeriodFrom: o.PeriodFrom,
			PeriodTo:   o.PeriodTo,
			Note:       o.Note,
		}
		if o.LeaseID != nil {
			leaseID := o.LeaseID.String()
			response[i].LeaseID = &leaseID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, requester.ID(), requester.Role(), toStatus, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderNoteRequest is the optional note body of cancel and reject calls.
type OrderNoteRequest struct {
	Note string `json:"note,omitempty"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req OrderNoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, requester.ID(), req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req OrderNoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, requester.ID(), requester.Role(), req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachmentRequest is one uploaded file; Content is base64 in JSON.
type AttachmentRequest struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// CreateLeaseRequest is the body of POST /api/v1/orders/:id/lease.
type CreateLeaseRequest struct {
	Deposit     int64               `json:"deposit"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// CreateLease handles POST /api/v1/orders/:id/lease - converts an
// accepted lease order into a lease.
func (s *Server) CreateLease(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CreateLeaseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	attachments := make([]ports.FileUpload, len(req.Attachments))
	for i, a := range req.Attachments {
		attachments[i] = ports.FileUpload{Name: a.Name, Content: a.Content}
	}

	leaseID := kernel.NewUUID()
	cmd, err := commands.NewCreateLeaseFromOrderCommand(
		leaseID, orderID, requester.Role(), req.Deposit, attachments)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createLeaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: leaseID.String()})
}

// EndLeaseRequest is the body of POST /api/v1/leases/:id/end.
type EndLeaseRequest struct {
	Status string `json:"status"`
}

// EndLease handles POST /api/v1/leases/:id/end - completes or terminates
// a lease.
func (s *Server) EndLease(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	if requester.Role() != actor.RoleAdministrator {
		return respondError(ctx, errs.NewForbiddenError(requester.ID().String(), "end lease"))
	}

	leaseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid lease ID")
	}

	var req EndLeaseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toStatus, err := lease.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewEndLeaseCommand(leaseID, toStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.endLeaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOperatorRequest is the body of POST /api/v1/leases/:id/operators.
type AssignOperatorRequest struct {
	OperatorID string    `json:"operatorId"`
	Role       string    `json:"role"`
	AssignedAt time.Time `json:"assignedAt"`
}

// AssignOperator handles POST /api/v1/leases/:id/operators.
func (s *Server) AssignOperator(ctx echo.Context) error {
	if _, err := RequestActor(ctx); err != nil {
		return respondError(ctx, err)
	}

	leaseID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid lease ID")
	}

	var req AssignOperatorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return badRequest(ctx, "Invalid operator ID")
	}
	role, err := lease.OperatorRoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	assignedAt := req.AssignedAt
	if assignedAt.IsZero() {
		assignedAt = time.Now()
	}

	cmd, err := commands.NewAssignOperatorCommand(leaseID, operatorID, role, assignedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignOperatorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateRequest is one metric rate in a pricing rule.
type RateRequest struct {
	Metric       string `json:"metric"`
	PricePerUnit int64  `json:"pricePerUnit"`
}

// CreatePricingRuleRequest is the body of POST /api/v1/pricing-rules.
type CreatePricingRuleRequest struct {
	DeviceType    string        `json:"deviceType"`
	Pincode       string        `json:"pincode"`
	Rates         []RateRequest `json:"rates"`
	EffectiveFrom time.Time     `json:"effectiveFrom"`
	EffectiveTo   *time.Time    `json:"effectiveTo,omitempty"`
}

// RuleConflictResponse reports a collision with an existing rule.
type RuleConflictResponse struct {
	ExistingRuleID string `json:"existingRuleId"`
	Blocking       bool   `json:"blocking"`
	Reason         string `json:"reason"`
}

// CreatePricingRuleResponse is the result of rule creation, warnings
// included.
type CreatePricingRuleResponse struct {
	ID        string                 `json:"id"`
	Conflicts []RuleConflictResponse `json:"conflicts,omitempty"`
}

// CreatePricingRule handles POST /api/v1/pricing-rules.
func (s *Server) CreatePricingRule(ctx echo.Context) error {
	requester, err := RequestActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreatePricingRuleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pincode, err := kernel.NewPincode(req.Pincode)
	if err != nil {
		return respondError(ctx, err)
	}

	rates := make([]pricing.Rate, 0, len(req.Rates))
	for _, r := range req.Rates {
		metric, metricErr := pricing.MetricFromString(r.Metric)
		if metricErr != nil {
			return respondError(ctx, metricErr)
		}
		rate, rateErr := pricing.NewRate(metric, r.PricePerUnit)
		if rateErr != nil {
			return respondError(ctx, rateErr)
		}
		rates = append(rates, rate)
	}

	ruleID := kernel.NewUUID()
	cmd, err := commands.NewCreatePricingRuleCommand(
		ruleID, requester.Role(), req.DeviceType, pincode, rates, req.EffectiveFrom, req.EffectiveTo)
	if err != nil {
		return respondError(ctx, err)
	}

	conflicts, err := s.createPricingRuleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := CreatePricingRuleResponse{ID: ruleID.String()}
	for _, c := range conflicts {
		response.Conflicts = append(response.Conflicts, RuleConflictResponse{
			ExistingRuleID: c.ExistingRuleID,
			Blocking:       c.Blocking,
			Reason:         c.Reason,
		})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// ActivePricingResponse is the rule in force for a scope and date.
type ActivePricingResponse struct {
	RuleID        string         `json:"ruleId"`
	IsDefault     bool           `json:"isDefault"`
	EffectiveFrom time.Time      `json:"effectiveFrom"`
	EffectiveTo   *time.Time     `json:"effectiveTo,omitempty"`
	Rates         []RateResponse `json:"rates"`
}

// RateResponse is one metric rate of the active rule.
type RateResponse struct {
	Metric       string `json:"metric"`
	PricePerUnit int64  `json:"pricePerUnit"`
}

// GetActivePricing handles GET /api/v1/pricing/active.
func (s *Server) GetActivePricing(ctx echo.Context) error {
	pincode, err := kernel.NewPincode(ctx.QueryParam("pincode"))
	if err != nil {
		return respondError(ctx, err)
	}

	asOf, err := parseTimeParam(ctx.QueryParam("asOf"))
	if err != nil {
		return badRequest(ctx, "Invalid asOf timestamp")
	}

	query, err := queries.NewGetActivePricingQuery(ctx.QueryParam("deviceType"), pincode, asOf)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getActivePricingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ActivePricingResponse{
		RuleID:        result.RuleID.String(),
		IsDefault:     result.IsDefault,
		EffectiveFrom: result.EffectiveFrom,
		EffectiveTo:   result.EffectiveTo,
		Rates:         make([]RateResponse, len(result.Rates)),
	}
	for i, rate := range result.Rates {
		response.Rates[i] = RateResponse{Metric: rate.Metric, PricePerUnit: rate.PricePerUnit}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}

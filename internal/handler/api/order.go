package api

import (
	"errors"
	"net/http"

	reqdto "hoteldesk/internal/handler/dto/request"
	resdto "hoteldesk/internal/handler/dto/response"
	"hoteldesk/internal/pkg/errs"
	"hoteldesk/internal/usecase/commands"
	"hoteldesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	commands commands.OrderCommands
	queries  queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, qs queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Open order
// @Description Open a POS ticket for a table
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenOrderRequest true "Order request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Open(c *gin.Context) {
	var req reqdto.OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Open(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get order
// @Description Get an order with lines and derived totals
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetOrder(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List orders
// @Description List a restaurant's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param restaurant_id query string true "Restaurant ID"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.OrderView
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	restaurantID, ok := parseUUIDQuery(c, "restaurant_id")
	if !ok {
		return
	}
	if restaurantID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "restaurant_id is required",
		})
		return
	}

	limit := parseInt32Query(c, "limit", 50)
	offset := parseInt32Query(c, "offset", 0)

	orders, err := h.queries.ListOrders(c.Request.Context(), *restaurantID, c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Set order line
// @Description Add a menu item, change its quantity, or remove it at quantity zero
// @Tags orders
// @Accept json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.SetOrderLineRequest true "Line request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/lines [put]
func (h *OrderHandler) SetLine(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.SetOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.SetLine(c.Request.Context(), id, req.ToInput()); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Checkout order
// @Description Settle the order in cash and book the takings
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CheckoutRequest true "Tendered amount"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.Checkout(c.Request.Context(), id, commands.CheckoutInput{
		TenderedCents: req.TenderedCents,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Void order
// @Description Void an open order; settled orders cannot be voided
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/void [post]
func (h *OrderHandler) Void(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.Void(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, errs.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found or unavailable",
		})
	case errors.Is(err, errs.ErrOrderNotOpen):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is not open",
		})
	case errors.Is(err, errs.ErrEmptyOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Order has no lines",
		})
	case errors.Is(err, errs.ErrInsufficientTender):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Tendered amount is below the total due",
		})
	case errors.Is(err, errs.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "hoteldesk/internal/handler/dto/request"
	resdto "hoteldesk/internal/handler/dto/response"
	"hoteldesk/internal/pkg/clock"
	"hoteldesk/internal/pkg/errs"
	"hoteldesk/internal/usecase/commands"
	"hoteldesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// FinanceHandler serves the transaction ledger and the occupancy and
// revenue reports.
type FinanceHandler struct {
	commands commands.FinanceCommands
	queries  queries.FinanceQueries
	clk      clock.Clock
}

func NewFinanceHandler(cmds commands.FinanceCommands, qs queries.FinanceQueries, clk clock.Clock) *FinanceHandler {
	return &FinanceHandler{
		commands: cmds,
		queries:  qs,
		clk:      clk,
	}
}

// @Summary Record transaction
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordTransactionRequest true "Transaction request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /finance/transactions [post]
func (h *FinanceHandler) RecordTransaction(c *gin.Context) {
	hotelID, ok := resolveHotelID(c)
	if !ok {
		return
	}

	var req reqdto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.RecordTransaction(c.Request.Context(), commands.RecordTransactionInput{
		HotelID:     hotelID,
		Kind:        req.Kind,
		AmountCents: req.AmountCents,
		Category:    req.Category,
		Reference:   req.Reference,
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete transaction
// @Tags finance
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /finance/transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteTransaction(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get transaction
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} queries.TransactionView
// @Failure 404 {object} map[string]string
// @Router /finance/transactions/{id} [get]
func (h *FinanceHandler) GetTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetTransaction(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List transactions
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string false "Hotel ID (admins only)"
// @Param kind query string false "Filter by kind (income or expense)"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} queries.TransactionView
// @Router /finance/transactions [get]
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	hotelID, ok := resolveHotelID(c)
	if !ok {
		return
	}

	from, ok := parseDateQuery(c, "from", time.Time{})
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to", time.Time{})
	if !ok {
		return
	}

	limit := parseInt32Query(c, "limit", 50)
	offset := parseInt32Query(c, "offset", 0)

	txs, err := h.queries.ListTransactions(c.Request.Context(), hotelID, c.Query("kind"), from, to, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// @Summary Occupancy report
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string false "Hotel ID (admins only)"
// @Param date query string false "Report day (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} queries.OccupancyReport
// @Router /finance/reports/occupancy [get]
func (h *FinanceHandler) OccupancyReport(c *gin.Context) {
	hotelID, ok := resolveHotelID(c)
	if !ok {
		return
	}

	day, ok := parseDateQuery(c, "date", h.clk.Now().Truncate(24*time.Hour))
	if !ok {
		return
	}

	report, err := h.queries.OccupancyReport(c.Request.Context(), hotelID, day)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Revenue report
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string false "Hotel ID (admins only)"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD, exclusive)"
// @Success 200 {object} queries.RevenueReport
// @Failure 400 {object} map[string]string
// @Router /finance/reports/revenue [get]
func (h *FinanceHandler) RevenueReport(c *gin.Context) {
	hotelID, ok := resolveHotelID(c)
	if !ok {
		return
	}

	from, ok := parseDateQuery(c, "from", time.Time{})
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to", time.Time{})
	if !ok {
		return
	}
	if from.IsZero() || to.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "from and to are required",
		})
		return
	}

	report, err := h.queries.RevenueReport(c.Request.Context(), hotelID, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *FinanceHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTransactionNotFound),
		errors.Is(err, errs.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
		})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
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

func parseDateQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return day, true
}

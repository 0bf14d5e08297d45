package api

import (
	"errors"
	"net/http"

	reqdto "hoteldesk/internal/handler/dto/request"
	resdto "hoteldesk/internal/handler/dto/response"
	"hoteldesk/internal/handler/middleware"
	"hoteldesk/internal/pkg/errs"
	"hoteldesk/internal/usecase/commands"
	"hoteldesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves hotels, rooms, restaurants, menus, departments, staff
// and booking agents.
type CatalogHandler struct {
	commands commands.CatalogCommands
	queries  queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, qs queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create hotel
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels [post]
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateHotel(c.Request.Context(), commands.CreateHotelInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		OwnerID: userID,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get hotel
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} queries.HotelView
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetHotel(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List hotels
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param owner_id query string false "Filter by owner"
// @Success 200 {array} queries.HotelView
// @Router /hotels [get]
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	ownerID, ok := parseUUIDQuery(c, "owner_id")
	if !ok {
		return
	}

	hotels, err := h.queries.ListHotels(c.Request.Context(), ownerID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// @Summary Update hotel
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [patch]
func (h *CatalogHandler) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.commands.UpdateHotel(c.Request.Context(), id, commands.UpdateHotelInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{id}/rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateRoom(c.Request.Context(), commands.CreateRoomInput{
		HotelID:          hotelID,
		Number:           req.Number,
		RoomType:         req.RoomType,
		NightlyRateCents: req.NightlyRateCents,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List rooms
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param status query string false "Filter by status"
// @Success 200 {array} queries.RoomView
// @Router /hotels/{id}/rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	rooms, err := h.queries.ListRooms(c.Request.Context(), hotelID, c.Query("status"))
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Update room
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.commands.UpdateRoom(c.Request.Context(), id, commands.UpdateRoomInput{
		RoomType:         req.RoomType,
		NightlyRateCents: req.NightlyRateCents,
		Status:           req.Status,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create restaurant
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRestaurantRequest true "Restaurant request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /restaurants [post]
func (h *CatalogHandler) CreateRestaurant(c *gin.Context) {
	var req reqdto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateRestaurant(c.Request.Context(), commands.CreateRestaurantInput{
		Name:    req.Name,
		HotelID: req.HotelID,
		Cuisine: req.Cuisine,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List restaurants
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string false "Filter by hotel"
// @Success 200 {array} queries.RestaurantView
// @Router /restaurants [get]
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	hotelID, ok := parseUUIDQuery(c, "hotel_id")
	if !ok {
		return
	}

	restaurants, err := h.queries.ListRestaurants(c.Request.Context(), hotelID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// @Summary Create menu item
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.CreateMenuItemRequest true "Menu item request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /restaurants/{id}/menu-items [post]
func (h *CatalogHandler) CreateMenuItem(c *gin.Context) {
	restaurantID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateMenuItem(c.Request.Context(), commands.CreateMenuItemInput{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Category:     req.Category,
		PriceCents:   req.PriceCents,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List menu items
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param available query bool false "Only available items"
// @Success 200 {array} queries.MenuItemView
// @Router /restaurants/{id}/menu-items [get]
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	restaurantID, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := h.queries.ListMenuItems(c.Request.Context(), restaurantID, c.Query("available") == "true")
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Update menu item
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /menu-items/{id} [patch]
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.commands.UpdateMenuItem(c.Request.Context(), id, commands.UpdateMenuItemInput{
		Name:       req.Name,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Available:  req.Available,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create department
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateDepartmentRequest true "Department request"
// @Success 201 {object} resdto.CreatedResponse
// @Router /hotels/{id}/departments [post]
func (h *CatalogHandler) CreateDepartment(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateDepartment(c.Request.Context(), commands.CreateDepartmentInput{
		HotelID: hotelID,
		Name:    req.Name,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List departments
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {array} queries.DepartmentView
// @Router /hotels/{id}/departments [get]
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	departments, err := h.queries.ListDepartments(c.Request.Context(), hotelID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// @Summary Create staff member
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStaffRequest true "Staff request"
// @Success 201 {object} resdto.CreatedResponse
// @Router /staff [post]
func (h *CatalogHandler) CreateStaff(c *gin.Context) {
	var req reqdto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateStaff(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List staff
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param department_id query string true "Department ID"
// @Success 200 {array} queries.StaffView
// @Router /staff [get]
func (h *CatalogHandler) ListStaff(c *gin.Context) {
	departmentID, ok := parseUUIDQuery(c, "department_id")
	if !ok {
		return
	}
	if departmentID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "department_id is required",
		})
		return
	}

	members, err := h.queries.ListStaff(c.Request.Context(), *departmentID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// @Summary Deactivate staff member
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /staff/{id} [delete]
func (h *CatalogHandler) DeactivateStaff(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commands.DeactivateStaff(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create booking agent
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAgentRequest true "Agent request"
// @Success 201 {object} resdto.CreatedResponse
// @Router /agents [post]
func (h *CatalogHandler) CreateAgent(c *gin.Context) {
	var req reqdto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.CreateAgent(c.Request.Context(), commands.CreateAgentInput{
		Name:              req.Name,
		Agency:            req.Agency,
		CommissionPercent: req.CommissionPercent,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List booking agents
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AgentView
// @Router /agents [get]
func (h *CatalogHandler) ListAgents(c *gin.Context) {
	agents, err := h.queries.ListAgents(c.Request.Context())
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *CatalogHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrHotelNotFound),
		errors.Is(err, errs.ErrRoomNotFound),
		errors.Is(err, errs.ErrRestaurantNotFound),
		errors.Is(err, errs.ErrMenuItemNotFound),
		errors.Is(err, errs.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
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

func (h *CatalogHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrHotelNotFound),
		errors.Is(err, errs.ErrRoomNotFound),
		errors.Is(err, errs.ErrRestaurantNotFound),
		errors.Is(err, errs.ErrMenuItemNotFound),
		errors.Is(err, errs.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Resource not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package api

import (
	"net/http"
	"strconv"

	"hoteldesk/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// resolveHotelID prefers the caller's own hotel scope; admins pass ?hotel_id.
func resolveHotelID(c *gin.Context) (uuid.UUID, bool) {
	if hotelID, ok := middleware.GetUserHotelID(c); ok {
		return hotelID, true
	}

	raw := c.Query("hotel_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "hotel_id is required",
		})
		return uuid.Nil, false
	}
	hotelID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel_id format",
		})
		return uuid.Nil, false
	}
	return hotelID, true
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return nil, false
	}
	return &id, true
}

func parseInt32Query(c *gin.Context, name string, fallback int32) int32 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

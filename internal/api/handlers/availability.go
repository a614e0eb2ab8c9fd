package handlers

import (
	"net/http"
	"strconv"

	"whatsapp-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for free slot calculation
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// GetFreeSlots computes free booking slots
// @Summary Get free slots
// @Description Compute free booking slots over the tenant's look-ahead window, merging internal appointments with external calendar events. When the external calendar cannot be reached the response is computed from internal data only and verified is false.
// @Tags availability
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID (UUID)"
// @Param contact_id query string false "Contact ID (UUID), routes tagged contacts to their calendar"
// @Param date query string false "Single day to compute (YYYY-MM-DD), overrides days"
// @Param from query string false "Range start (YYYY-MM-DD), paired with to"
// @Param to query string false "Range end (YYYY-MM-DD), inclusive"
// @Param days query int false "Number of days to compute" default(configured look-ahead)
// @Param duration_minutes query int false "Desired appointment duration" default(configured default)
// @Success 200 {object} service.FreeSlotsResponse "Computed availability"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Tenant has no calendar configured"
// @Router /availability [get]
func (h *AvailabilityHandler) GetFreeSlots(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID"})
		return
	}

	req := service.FreeSlotsRequest{TenantID: tenantID}

	if contactIDStr := c.Query("contact_id"); contactIDStr != "" {
		contactID, err := uuid.Parse(contactIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
			return
		}
		req.ContactID = &contactID
	}

	req.Date = c.Query("date")
	req.From = c.Query("from")
	req.To = c.Query("to")
	req.Days, _ = strconv.Atoi(c.DefaultQuery("days", "0"))
	req.DurationMinutes, _ = strconv.Atoi(c.DefaultQuery("duration_minutes", "0"))

	slots, err := h.availabilityService.FreeSlots(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

package handlers

import (
	"net/http"
	"strconv"

	"whatsapp-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppointmentHandler handles HTTP requests for appointments
type AppointmentHandler struct {
	appointmentService service.AppointmentServiceInterface
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService service.AppointmentServiceInterface) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// CreateAppointment books a new appointment
// @Summary Book an appointment
// @Description Book an appointment for a contact. The start time is rounded up to the slot grid; duration defaults from the calendar configuration with keyword-based extension. Conflicting intervals from the internal store or the external calendar reject the booking with the full conflict set.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body service.CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} service.AppointmentResponse "Appointment booked"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Contact not found or no calendar configured"
// @Failure 409 {object} map[string]interface{} "Schedule conflict or insufficient staff"
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointmentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// RescheduleAppointment moves an appointment to a new time
// @Summary Reschedule an appointment
// @Description Move an appointment to a new start time. The appointment is identified either by appointment_id or by contact_id and date; a lookup matching several appointments returns the candidate list for disambiguation. Moving onto the current slot is a no-op.
// @Tags appointments
// @Accept json
// @Produce json
// @Param reschedule body service.RescheduleAppointmentRequest true "Reschedule request"
// @Success 200 {object} service.AppointmentResponse "Appointment rescheduled"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 409 {object} map[string]interface{} "Schedule conflict or ambiguous match"
// @Router /appointments/reschedule [post]
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var req service.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointmentService.Reschedule(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CancelAppointment cancels an appointment
// @Summary Cancel an appointment
// @Description Cancel an appointment, keeping the row for audit. The appointment is identified either by appointment_id or by contact_id and date.
// @Tags appointments
// @Accept json
// @Produce json
// @Param cancel body service.CancelAppointmentRequest true "Cancel request"
// @Success 200 {object} service.AppointmentResponse "Appointment cancelled"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 409 {object} map[string]interface{} "Appointment not active or ambiguous match"
// @Router /appointments/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	var req service.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointmentService.Cancel(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// GetUpcomingAppointments lists a contact's upcoming appointments
// @Summary List upcoming appointments
// @Description Get the next scheduled appointments for a contact, soonest first
// @Tags appointments
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID (UUID)"
// @Param contact_id query string true "Contact ID (UUID)"
// @Param limit query int false "Maximum number of appointments" default(10)
// @Success 200 {object} service.AppointmentListResponse "Upcoming appointments"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /appointments/upcoming [get]
func (h *AppointmentHandler) GetUpcomingAppointments(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID"})
		return
	}
	contactID, err := uuid.Parse(c.Query("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	appointments, err := h.appointmentService.SearchUpcoming(tenantID, contactID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves one appointment by ID
// @Summary Get appointment by ID
// @Description Get a specific appointment by its UUID
// @Tags appointments
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID (UUID)"
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} service.AppointmentResponse "Appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appointment, err := h.appointmentService.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

package handlers

import (
	"net/http"

	"whatsapp-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for lead assignments
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// AssignLead assigns a lead to an employee
// @Summary Assign a lead
// @Description Select an employee for the contact's channel by weighted fair-share over role tiers and record the assignment. Repeating the call for the same contact and channel returns the existing assignment with created=false.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignLeadRequest true "Assignment request"
// @Success 201 {object} service.AssignmentResponse "Assignment created"
// @Success 200 {object} service.AssignmentResponse "Active assignment already existed"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Contact or tenant not found"
// @Failure 409 {object} map[string]interface{} "No eligible employee or automation suppressed"
// @Router /assignments [post]
func (h *AssignmentHandler) AssignLead(c *gin.Context) {
	var req service.AssignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Assign(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if assignment.Created {
		status = http.StatusCreated
	}
	c.JSON(status, assignment)
}

// ReleaseLead releases an active lead assignment
// @Summary Release a lead
// @Description Deactivate the active assignment for the contact's channel, decrement the monthly counter and remove the employee marker tag
// @Tags assignments
// @Accept json
// @Produce json
// @Param release body service.ReleaseLeadRequest true "Release request"
// @Success 200 {object} service.AssignmentResponse "Assignment released"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "No active assignment found"
// @Router /assignments/release [post]
func (h *AssignmentHandler) ReleaseLead(c *gin.Context) {
	var req service.ReleaseLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Release(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetActiveAssignment retrieves the active assignment for a contact and channel
// @Summary Get active assignment
// @Description Get the active assignment for a contact on a channel
// @Tags assignments
// @Accept json
// @Produce json
// @Param contact_id query string true "Contact ID (UUID)"
// @Param channel query string true "Channel name"
// @Success 200 {object} service.AssignmentResponse "Active assignment"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "No active assignment found"
// @Router /assignments/active [get]
func (h *AssignmentHandler) GetActiveAssignment(c *gin.Context) {
	contactID, err := uuid.Parse(c.Query("contact_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}
	channel := c.Query("channel")
	if channel == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Channel is required"})
		return
	}

	assignment, err := h.assignmentService.GetActive(contactID, channel)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

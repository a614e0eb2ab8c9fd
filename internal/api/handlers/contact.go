package handlers

import (
	"net/http"
	"strconv"

	"whatsapp-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact creates a new contact
// @Summary Create a new contact
// @Description Create a contact in a tenant, unique by phone number
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Successfully created contact"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Failure 409 {object} map[string]interface{} "Contact with this phone already exists"
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContact retrieves a contact by ID
// @Summary Get contact by ID
// @Description Get a specific contact by its UUID
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse "Successfully retrieved contact"
// @Failure 400 {object} map[string]interface{} "Invalid contact ID"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	contact, err := h.contactService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// GetContactsByTenant retrieves contacts for a tenant
// @Summary List contacts by tenant
// @Description Get all contacts of a tenant with pagination, or look one up by phone
// @Tags contacts
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID (UUID)"
// @Param phone query string false "Phone number for direct lookup"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ContactListResponse "Successfully retrieved contacts"
// @Failure 400 {object} map[string]interface{} "Invalid tenant ID"
// @Failure 404 {object} map[string]interface{} "Tenant or contact not found"
// @Router /contacts [get]
func (h *ContactHandler) GetContactsByTenant(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID"})
		return
	}

	if phone := c.Query("phone"); phone != "" {
		contact, err := h.contactService.GetByPhone(tenantID, phone)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, contact)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	contacts, err := h.contactService.GetByTenant(tenantID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// UpdateContact updates a contact
// @Summary Update a contact
// @Description Update a contact's display name or metadata. Tags are managed through the tag endpoints.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Contact data"
// @Success 200 {object} service.ContactResponse "Successfully updated contact"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	var req service.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// tagRequest carries a single tag name
type tagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

// AddContactTag adds a tag to a contact
// @Summary Add a tag
// @Description Add a tag to a contact. Adding the "stop bot" tag suppresses all automation for the contact.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param tag body tagRequest true "Tag to add"
// @Success 200 {object} service.ContactResponse "Contact with updated tags"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id}/tags [post]
func (h *ContactHandler) AddContactTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.AddTag(id, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// RemoveContactTag removes a tag from a contact
// @Summary Remove a tag
// @Description Remove a tag from a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param tag body tagRequest true "Tag to remove"
// @Success 200 {object} service.ContactResponse "Contact with updated tags"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id}/tags [delete]
func (h *ContactHandler) RemoveContactTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.RemoveTag(id, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

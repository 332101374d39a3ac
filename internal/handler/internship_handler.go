package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// InternshipHandler handles internship offer HTTP requests
type InternshipHandler struct {
	internshipService service.InternshipService
}

// NewInternshipHandler creates a new InternshipHandler
func NewInternshipHandler(internshipService service.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService}
}

// Create handles POST /internships
func (h *InternshipHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.internship.create")
	defer span.End()

	var req dto.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	internship, err := h.internshipService.Create(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, internship)
}

// List handles GET /internships
func (h *InternshipHandler) List(c *gin.Context) {
	internships, err := h.internshipService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, internships)
}

// Get handles GET /internships/:id
func (h *InternshipHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	internship, err := h.internshipService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, internship)
}

// Update handles PUT /internships/:id
func (h *InternshipHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	internship, err := h.internshipService.Update(c.Request.Context(), principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, internship)
}

// Delete handles DELETE /internships/:id
func (h *InternshipHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.internshipService.Delete(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// AgreementHandler handles agreement HTTP requests
type AgreementHandler struct {
	agreementService service.AgreementService
}

// NewAgreementHandler creates a new AgreementHandler
func NewAgreementHandler(agreementService service.AgreementService) *AgreementHandler {
	return &AgreementHandler{agreementService: agreementService}
}

// Create handles POST /agreements?applicationId=N. The calling teacher
// becomes the agreement's validator.
func (h *AgreementHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.agreement.create")
	defer span.End()

	applicationID, ok := queryID(c, "applicationId")
	if !ok {
		return
	}
	var req dto.CreateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	agreement, err := h.agreementService.CreateAsTeacher(ctx, principal(c), applicationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, agreement)
}

// CreateAsAdmin handles POST /agreements/admin-create?applicationId=N&teacherId=M
func (h *AgreementHandler) CreateAsAdmin(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.agreement.create_admin")
	defer span.End()

	applicationID, ok := queryID(c, "applicationId")
	if !ok {
		return
	}
	teacherID, ok := queryID(c, "teacherId")
	if !ok {
		return
	}
	var req dto.CreateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	agreement, err := h.agreementService.CreateAsAdmin(ctx, applicationID, teacherID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, agreement)
}

// List handles GET /agreements
func (h *AgreementHandler) List(c *gin.Context) {
	agreements, err := h.agreementService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, agreements)
}

// Get handles GET /agreements/:id
func (h *AgreementHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	agreement, err := h.agreementService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, agreement)
}

// Update handles PUT /agreements/:id
func (h *AgreementHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.agreement.update")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	agreement, err := h.agreementService.Update(ctx, principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, agreement)
}

// Validate handles PUT /agreements/:id/validate
func (h *AgreementHandler) Validate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.agreement.validate")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	agreement, err := h.agreementService.Validate(ctx, principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, agreement)
}

// Delete handles DELETE /agreements/:id
func (h *AgreementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.agreementService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

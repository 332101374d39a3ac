package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/service"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// maxCvSize caps uploaded CV documents at 10 MiB.
const maxCvSize = 10 << 20

// ApplicationHandler handles application HTTP requests
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create handles POST /applications. The request is multipart form
// data so the CV can travel with the application fields; the CV part
// is optional.
func (h *ApplicationHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.application.create")
	defer span.End()

	internshipID, err := strconv.ParseInt(c.PostForm("internship_id"), 10, 64)
	if err != nil || internshipID <= 0 {
		response.BadRequest(c, "invalid internship_id")
		return
	}
	req := &dto.CreateApplicationRequest{
		InternshipID: internshipID,
		CoverLetter:  c.PostForm("cover_letter"),
	}

	var cv []byte
	cvName := ""
	if file, err := c.FormFile("cv"); err == nil {
		if file.Size > maxCvSize {
			response.BadRequest(c, "cv file too large")
			return
		}
		src, err := file.Open()
		if err != nil {
			response.InternalError(c, err)
			return
		}
		defer src.Close()
		cv, err = io.ReadAll(src)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		cvName = file.Filename
	}

	application, err := h.applicationService.Create(ctx, principal(c), req, cv, cvName)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, application)
}

// CreateForStudent handles POST /applications/for-student/:studentId
func (h *ApplicationHandler) CreateForStudent(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.application.create_for_student")
	defer span.End()

	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	application, err := h.applicationService.CreateForStudent(ctx, studentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, application)
}

// List handles GET /applications
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applicationService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, applications)
}

// Get handles GET /applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	application, err := h.applicationService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, application)
}

// Update handles PUT /applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.application.update")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	application, err := h.applicationService.Update(ctx, principal(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, application)
}

// Decide handles PUT /applications/:id/decision
func (h *ApplicationHandler) Decide(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.application.decide")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	status := domain.ApplicationStatus(req.Status)
	if !status.IsValid() || status == domain.ApplicationStatusPending {
		response.BadRequest(c, "status must be ACCEPTED or REJECTED")
		return
	}

	application, err := h.applicationService.Decide(ctx, principal(c), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, application)
}

// Delete handles DELETE /applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.applicationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/security"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
)

// principal returns the authenticated principal for the request, or nil
// for anonymous requests.
func principal(c *gin.Context) *domain.Principal {
	return security.PrincipalFromContext(c.Request.Context())
}

// pathID parses the named int64 path parameter. It writes the 400
// response itself and reports false on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryID parses the named int64 query parameter, same contract as pathID.
func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// respondError maps domain errors onto the HTTP error contract.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrTeacherNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrInternshipNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrAgreementNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrAgreementAlreadyExists),
		errors.Is(err, domain.ErrInvalidAgreementState),
		errors.Is(err, domain.ErrInvalidApplicationState):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

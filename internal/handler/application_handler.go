package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/errors"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
)

// ApplicationHandler handles application tracking endpoints.
type ApplicationHandler struct {
	appService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(appService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// ApplyRequest represents a job application.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeLink  string `json:"resume_link" validate:"omitempty,url"`
}

// UpdateStatusRequest represents an application status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Apply godoc
// @Summary Apply to a job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param request body ApplyRequest true "Application data"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /applicationRoutes/apply/{jobId} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return invalidUUID("jobId")
	}

	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	app, err := h.appService.Apply(c.Request().Context(), middleware.UserID(c), jobID, req.CoverLetter, req.ResumeLink)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, app)
}

// ListForJob godoc
// @Summary List applications for an owned job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {array} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicationRoutes/job/{jobId}/applications [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return invalidUUID("jobId")
	}

	apps, err := h.appService.ListForJob(c.Request().Context(), jobID, middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus godoc
// @Summary Update the status of an application for an owned job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicationRoutes/application/{applicationId}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	applicationID, err := uuid.Parse(c.Param("applicationId"))
	if err != nil {
		return invalidUUID("applicationId")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	app, err := h.appService.UpdateStatus(c.Request().Context(), applicationID, middleware.UserID(c), req.Status)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, app)
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Application
// @Failure 401 {object} errors.ErrorResponse
// @Router /applicationRoutes/my-applications [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	apps, err := h.appService.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, apps)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/errors"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a new job posting.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description"`
	Company      string   `json:"company" validate:"required,max=255"`
	Location     string   `json:"location" validate:"max=255"`
	Salary       string   `json:"salary" validate:"max=100"`
	Requirements []string `json:"requirements"`
}

// UpdateJobRequest represents a partial update; omitted fields keep their
// prior values.
type UpdateJobRequest struct {
	Title        *string  `json:"title" validate:"omitempty,max=255"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location" validate:"omitempty,max=255"`
	Salary       *string  `json:"salary" validate:"omitempty,max=100"`
	Requirements []string `json:"requirements"`
}

// List godoc
// @Summary List jobs (paginated)
// @Tags jobs
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} model.Job
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	jobs, err := h.jobService.List(c.Request().Context(), page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetByID godoc
// @Summary Get a job with employer and applications
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID("id")
	}

	job, err := h.jobService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// MyJobs godoc
// @Summary Jobs owned by the authenticated employer
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs/myjobs [get]
func (h *JobHandler) MyJobs(c echo.Context) error {
	jobs, err := h.jobService.ListByEmployer(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	job, err := h.jobService.Create(c.Request().Context(), middleware.UserID(c), service.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: req.Requirements,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Update an owned job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID("id")
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	job, err := h.jobService.Update(c.Request().Context(), id, middleware.UserID(c), service.JobUpdates{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: req.Requirements,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete an owned job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID("id")
	}

	if err := h.jobService.Delete(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "job deleted"})
}

func invalidUUID(param string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid " + param,
		Code:  "INVALID_UUID",
	})
}

func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationFailed(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

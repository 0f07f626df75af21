package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/errors"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
)

// BookmarkHandler handles saved-job endpoints.
type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

// NewBookmarkHandler creates a new bookmark handler.
func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// Save godoc
// @Summary Bookmark a job
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /applicationRoutes/save/{jobId} [post]
func (h *BookmarkHandler) Save(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return invalidUUID("jobId")
	}

	if err := h.bookmarkService.Save(c.Request().Context(), middleware.UserID(c), jobID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "job bookmarked",
		"job_id":  jobID.String(),
	})
}

// Unsave godoc
// @Summary Remove a job bookmark
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applicationRoutes/unsave/{jobId} [delete]
func (h *BookmarkHandler) Unsave(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return invalidUUID("jobId")
	}

	if err := h.bookmarkService.Unsave(c.Request().Context(), middleware.UserID(c), jobID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "job removed from saved list",
		"job_id":  jobID.String(),
	})
}

// ListSaved godoc
// @Summary List the caller's bookmarked jobs
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Router /applicationRoutes/saved-jobs [get]
func (h *BookmarkHandler) ListSaved(c echo.Context) error {
	jobs, err := h.bookmarkService.ListSaved(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

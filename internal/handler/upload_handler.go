package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/errors"
)

// maxUploadBytes caps multipart image uploads.
const maxUploadBytes = 8 << 20

// UploadHandler stores uploaded images on disk and returns their public URL.
type UploadHandler struct {
	dir     string
	baseURL string
}

// NewUploadHandler creates a new upload handler writing into dir. Uploaded
// files are served under baseURL/images/.
func NewUploadHandler(dir, baseURL string) *UploadHandler {
	return &UploadHandler{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload godoc
// @Summary Upload an image
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "avatar file is required",
			Code:  "MISSING_FILE",
		})
	}
	if file.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file too large",
			Code:  "FILE_TOO_LARGE",
		})
	}
	if ct := file.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "only image uploads are accepted",
			Code:  "INVALID_CONTENT_TYPE",
		})
	}

	src, err := file.Open()
	if err != nil {
		return uploadFailed()
	}
	defer src.Close()

	// filepath.Base strips any path components a client smuggles into the
	// original filename.
	name := uuid.New().String() + "-" + filepath.Base(file.Filename)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return uploadFailed()
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return uploadFailed()
	}

	return c.JSON(http.StatusOK, map[string]string{
		"url": h.baseURL + "/images/" + name,
	})
}

func uploadFailed() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
		Error: "failed to store upload",
		Code:  "UPLOAD_FAILED",
	})
}

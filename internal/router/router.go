package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobboard/internal/config"
	"jobboard/internal/handler"
	"jobboard/internal/middleware"
	"jobboard/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
	applicationHandler *handler.ApplicationHandler,
	bookmarkHandler *handler.BookmarkHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Unmatched routes get a generic JSON body rather than Echo's default.
	echo.NotFoundHandler = func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "resource not found"})
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/images", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.GetByID)
	api.POST("/upload", uploadHandler.Upload)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), middleware.Identity())

	secured.GET("/auth/me", authHandler.Me)

	// Job routes (employer only). The static /jobs/myjobs segment takes
	// precedence over the public /jobs/:id parameter route.
	employerOnly := middleware.RequireRole(model.RoleEmployer)
	secured.GET("/jobs/myjobs", jobHandler.MyJobs, employerOnly)
	secured.POST("/jobs", jobHandler.Create, employerOnly)
	secured.PUT("/jobs/:id", jobHandler.Update, employerOnly)
	secured.DELETE("/jobs/:id", jobHandler.Delete, employerOnly)

	// Application and bookmark routes
	apps := secured.Group("/applicationRoutes")
	apps.POST("/apply/:jobId", applicationHandler.Apply)
	apps.GET("/job/:jobId/applications", applicationHandler.ListForJob)
	apps.PUT("/application/:applicationId/status", applicationHandler.UpdateStatus)
	apps.GET("/my-applications", applicationHandler.ListMine)
	apps.GET("/saved-jobs", bookmarkHandler.ListSaved)
	apps.POST("/save/:jobId", bookmarkHandler.Save)
	apps.DELETE("/unsave/:jobId", bookmarkHandler.Unsave)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

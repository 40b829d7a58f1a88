package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/bookdepot/library-service/internal/errs"
	md "github.com/bookdepot/library-service/pkg/middleware"
	"github.com/bookdepot/library-service/pkg/validate"
)

// Body returned on any request-envelope validation failure.
const invalidData = "Invalid data"

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users/:userId", h.GetUser)
	api.PATCH("/users/:userId", h.UpdateUser)

	api.POST("/cards", h.CreateCard)
	api.GET("/cards/:cardId", h.GetCard)
	api.PATCH("/cards/:cardId", h.UpdateCard)
	api.DELETE("/cards/:cardId", h.DeleteCard)

	api.POST("/authors", h.CreateAuthor)
	api.GET("/authors/:authorId", h.GetAuthor)
	api.PATCH("/authors/:authorId", h.UpdateAuthor)
	api.DELETE("/authors/:authorId", h.DeleteAuthor)

	api.POST("/categories", h.CreateCategory)
	api.GET("/categories/:categoryId", h.GetCategory)
	api.PATCH("/categories/:categoryId", h.UpdateCategory)
	api.DELETE("/categories/:categoryId", h.DeleteCategory)

	api.POST("/publications", h.CreatePublication)
	api.GET("/publications/:publicationId", h.GetPublication)
	api.PATCH("/publications/:publicationId", h.UpdatePublication)
	api.DELETE("/publications/:publicationId", h.DeletePublication)

	api.POST("/instances", h.CreateInstance)
	api.GET("/instances/:instanceId", h.GetInstance)
	api.PATCH("/instances/:instanceId", h.UpdateInstance)
	api.DELETE("/instances/:instanceId", h.DeleteInstance)

	api.POST("/rentals", h.CreateRental)
	api.GET("/rentals/:rentalId", h.GetRental)
	api.PATCH("/rentals/:rentalId", h.UpdateRental)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations/:reservationId", h.GetReservation)
	api.DELETE("/reservations/:reservationId", h.DeleteReservation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// pathID validates a path-supplied identifier as a UUID string.
func pathID(c echo.Context, name string) (string, bool) {
	id := c.Param(name)
	if !validate.IsUUID(id) {
		return "", false
	}
	return id, true
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrBadReference),
		errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, errs.ErrCopyAvailable),
		errors.Is(err, errs.ErrReservationPriority):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

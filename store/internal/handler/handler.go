package handler

import (
	"net/http"
	"strings"

	md "github.com/Astemirdum/book-store/pkg/middleware"
	"github.com/Astemirdum/book-store/pkg/validate"
	_ "github.com/Astemirdum/book-store/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	bookSvc     BookService
	relationSvc RelationService
	secret      []byte
	log         *zap.Logger
}

func New(bookSvc BookService, relationSvc RelationService, secret []byte, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc:     bookSvc,
		relationSvc: relationSvc,
		secret:      secret,
		log:         log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/swagger")
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health/", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.secret),
	)

	api.GET("/book/", h.ListBooks)
	api.GET("/book/:id/", h.GetBook)
	api.POST("/book/", h.CreateBook, md.RequireAuth)
	api.PUT("/book/:id/", h.UpdateBook, md.RequireAuth)
	api.PATCH("/book/:id/", h.PartialUpdateBook, md.RequireAuth)
	api.DELETE("/book/:id/", h.DeleteBook, md.RequireAuth)

	relation := api.Group("/book_relation", md.RequireAuth)
	relation.GET("/:book/", h.GetRelation)
	relation.PATCH("/:book/", h.UpdateRelation)
	relation.PUT("/:book/", h.UpdateRelation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

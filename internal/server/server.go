package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/farays/internal/config"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/handlers"
	appmiddleware "github.com/nfrund/farays/internal/middleware"
	"github.com/nfrund/farays/internal/module"
	"github.com/nfrund/farays/internal/pubsub"
	"github.com/nfrund/farays/internal/registry"
	"github.com/nfrund/farays/internal/rendering"
	"github.com/nfrund/farays/internal/reservation"
	"github.com/nfrund/farays/web"
)

// Dependencies holds everything the server needs. Only Config and Content are required.
type Dependencies struct {
	Config     *config.Config
	Logger     *slog.Logger
	Content    *content.Provider
	Renderer   rendering.Renderer
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Calendar   *reservation.Calendar
	Echo       *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E          *echo.Echo
	Cfg        *config.Config
	Logger     *slog.Logger
	Content    *content.Provider
	Renderer   rendering.Renderer
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Calendar   reservation.Calendar
	Registry   *registry.Registry

	modules []module.Module
	bus     io.Closer
}

// New creates a new Server instance with its middleware stack and shared
// services in place. Modules and routes are added by InitModules and RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Content == nil {
		return nil, errors.New("server: content provider is required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer(deps.Logger)
	}
	cal := reservation.NewCalendar(deps.Config.Location)
	if deps.Calendar != nil {
		cal = *deps.Calendar
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog)
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(deps.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !deps.Config.IsDev(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Serve static files embedded in the binary.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	reg := registry.New(deps.Config)
	registry.Set(reg, registry.LoggerKey, deps.Logger)
	registry.Set(reg, registry.ContentKey, deps.Content)
	registry.Set(reg, registry.CalendarKey, cal)
	if deps.Publisher != nil {
		registry.Set(reg, registry.PublisherKey, deps.Publisher)
	}
	if deps.Subscriber != nil {
		registry.Set(reg, registry.SubscriberKey, deps.Subscriber)
	}

	return &Server{
		E:          e,
		Cfg:        deps.Config,
		Logger:     deps.Logger,
		Content:    deps.Content,
		Renderer:   deps.Renderer,
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Calendar:   cal,
		Registry:   reg,
	}, nil
}

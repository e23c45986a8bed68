package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/locale"
	accesslog "github.com/DoctorPortal/DoctorPortal/internal/logger/adapter/fiber"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/appointment"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/blog"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/doctor"
	servicehandler "github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/service"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/setting"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/testimonial"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/dashboard"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/login"
	localemiddleware "github.com/DoctorPortal/DoctorPortal/internal/web/middleware/locale"
	"github.com/DoctorPortal/DoctorPortal/internal/web/middleware/metrics"
)

const (
	defaultCheckAliveURI = "/checkalive"
	metricsPath          = "/metrics"
	readBufferSize       = 8192
)

var (
	// ErrConfigNil is returned by New without configuration.
	ErrConfigNil = errors.New("config cannot be nil")
	// ErrDBNil is returned by New without database.
	ErrDBNil = errors.New("db cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// DB returns the database the handlers use.
func (s *Service) DB() *gorm.DB {
	return s.db
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service with every API route registered.
// limiterStorage backs the login rate limiter and may be nil.
func New(cfg *config.Config, db *gorm.DB, limiterStorage fiber.Storage) (*Service, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if db == nil {
		return nil, ErrDBNil
	}

	issuer, err := auth.NewIssuer(cfg.Auth)
	if err != nil {
		return nil, err
	}

	checkAliveURI := cfg.Webserver.CheckAliveURI
	if checkAliveURI == "" {
		checkAliveURI = defaultCheckAliveURI
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: readBufferSize,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   ErrorHandler(cfg.Webserver.ExposeErrors || cfg.DevMode),
		},
	)

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(metrics.New(metrics.Config{
		ServiceName: cfg.Log.ServiceName,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == metricsPath
		},
	}))
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAliveURI,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.Webserver.AllowOrigins, ","),
		AllowHeaders:  "Origin, Content-Type, Accept, Accept-Language, Authorization",
		ExposeHeaders: "Content-Language, X-Request-ID",
	}))

	negotiator := locale.NewNegotiator(cfg.Locale)
	app.Use(localemiddleware.New(negotiator))

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(checkAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})
	app.Get(metricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	deps := &handler.Deps{
		Cfg:            cfg,
		DB:             db,
		Issuer:         issuer,
		Negotiator:     negotiator,
		Validate:       newValidator(),
		LimiterStorage: limiterStorage,
	}

	// init handlers, they register their own routes
	for _, h := range []handler.Service{
		&login.Handler,
		&setting.Handler,
		&appointment.Handler,
		&doctor.Handler,
		&servicehandler.Handler,
		&testimonial.Handler,
		&blog.Handler,
		&dashboard.Handler,
	} {
		if err = h.Init(app, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}

// newValidator reports payload fields by their JSON name.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/nikmy/txcommand/internal/metrics"
	"github.com/nikmy/txcommand/internal/people"
	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
)

// NewServer exposes registrar over HTTP. Metrics are served on
// cfg.MetricsPath unless m is nil.
func NewServer(cfg Config, log logger.Logger, registrar people.Registrar, m *metrics.Registry) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		BodyLimit:               cfg.HTTP.BodyLimit,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: len(cfg.Proxy.Trusted) > 0,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var verr *txn.ValidationError
		if errors.As(err, &verr) {
			serveLog.Debug(err)
			return sendError(c, http.StatusBadRequest, verr.Error())
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return sendError(c, ferr.Code, ferr.Message)
		}

		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		registrar: registrar,
		http:      fiber.New(fiberCfg),
		addr:      cfg.HTTP.Addr,
		log:       serveLog,
	}

	s.setupRoutes(cfg.metricsPath(), m)

	return s
}

type server struct {
	registrar people.Registrar
	http      *fiber.App
	addr      string
	log       logger.Logger
}

type registerRequest struct {
	Name string   `json:"name"`
	Pets []string `json:"pets"`
}

type petsRequest struct {
	Pets []string `json:"pets"`
}

func (s *server) Addr() string {
	return s.addr
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes(metricsPath string, m *metrics.Registry) {
	s.http.Post("/people", s.handleRegister)
	s.http.Post("/people/:id/pets", s.handleAddPets)

	if lister, ok := s.registrar.(people.PetLister); ok {
		s.http.Get("/people/:id/pets", func(c *fiber.Ctx) error {
			return s.handleListPets(c, lister)
		})
	}

	if m != nil {
		s.http.Get(metricsPath, adaptor.HTTPHandler(m.Handler()))
	}
}

func (s *server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal register payload"))
		return sendError(c, http.StatusBadRequest, "bad json")
	}

	id, err := s.registrar.Register(c.UserContext(), req.Name, req.Pets)
	if err != nil {
		return errors.WrapFail(err, "register person")
	}

	return c.Status(http.StatusCreated).JSON(map[string]string{"id": id})
}

func (s *server) handleAddPets(c *fiber.Ctx) error {
	var req petsRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal pets payload"))
		return sendError(c, http.StatusBadRequest, "bad json")
	}

	err = s.registrar.AddPets(c.UserContext(), c.Params("id"), req.Pets)
	if err != nil {
		return errors.WrapFail(err, "add pets")
	}

	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) handleListPets(c *fiber.Ctx, lister people.PetLister) error {
	pets, err := lister.Pets(c.UserContext(), c.Params("id"))
	if err != nil {
		return errors.WrapFail(err, "list pets")
	}

	if pets == nil {
		pets = []people.Pet{}
	}

	return c.Status(http.StatusOK).JSON(pets)
}

func sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

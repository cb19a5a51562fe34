package api

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/cloudphoenix/phoenix-api/internal/api/authenticator"
	"github.com/cloudphoenix/phoenix-api/internal/config"
	"github.com/cloudphoenix/phoenix-api/internal/migrations"
	"github.com/cloudphoenix/phoenix-api/internal/services"
)

// Server is the Cloud Phoenix HTTP server
type Server struct {
	srv      *fasthttp.Server
	addr     string
	conf     *config.Config
	auth     *authenticator.Authenticator
	services *services.Services
}

// New reads configuration, runs pending migrations and wires the services.
// Any failure here is fatal: the process must not come up without its store.
func New() *Server {
	conf := config.ReadConfig()
	if err := conf.Validate(); err != nil {
		log.Fatalln(err.Error())
	}

	m, err := migrations.NewMigrator()
	if err != nil {
		log.Fatalln("unable to create migrator:", err.Error())
	}

	if err := m.Up(0); err != nil {
		log.Fatalln("unable to run migrations:", err.Error())
	}

	s := &Server{
		srv:      &fasthttp.Server{},
		addr:     fmt.Sprintf("0.0.0.0:%s", conf.PORT),
		conf:     conf,
		auth:     authenticator.New(conf.JWT_SECRET),
		services: services.NewServices(conf),
	}

	s.srv.Handler = s.initRoutes()

	return s
}

// Start the rest server
func (s *Server) Start() {
	slog.Info("Starting REST server...", slog.String("addr", s.addr))
	go func() {
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			slog.Error("Server shutdown", slog.Any("error", err))
		}
	}()
	slog.Info("REST server started!")

	// Listen for OS interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Block till we receive an interrupt
	<-c
	slog.Info("Received interrupt...")

	// Create a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s.shutdown(ctx)
}

// Shutdown shuts down the rest server
func (s *Server) shutdown(ctx context.Context) {
	slog.Info("Gracefully shutting down REST server...")
	if err := s.srv.Shutdown(); err != nil {
		slog.Error("Failed to shutdown the server", slog.Any("error", err))
	}
	slog.Info("REST server shutdown!")
}

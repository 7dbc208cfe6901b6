// Package httpapi exposes the platform over HTTP. It is a thin adapter:
// identity comes from trusted headers, DTOs are validated at the edge,
// and every domain error maps to exactly one status code. No business
// logic lives here.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/studyhall/internal/qa"
	"github.com/abhisek/studyhall/internal/recommend"
	"github.com/abhisek/studyhall/internal/store"
)

// Config holds HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// ReadTimeout bounds how long a request may take to arrive.
	ReadTimeout time.Duration
}

// DefaultConfig returns sensible server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		ReadTimeout: 10 * time.Second,
	}
}

// Server is the HTTP adapter over the lesson, Q&A and recommendation
// services.
type Server struct {
	app     *fiber.App
	cfg     Config
	lessons store.LessonRepo
	qa      *qa.Service
	rec     *recommend.Service
	log     *zap.Logger
}

// NewServer wires the routes and middleware.
func NewServer(cfg Config, lessons store.LessonRepo, qaSvc *qa.Service, rec *recommend.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		lessons: lessons,
		qa:      qaSvc,
		rec:     rec,
		log:     log,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(s.requestID)
	s.app.Use(s.accessLog)
	s.routes()

	return s
}

// App returns the underlying fiber app, used by tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving requests until Shutdown is called.
func (s *Server) Listen() error {
	s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)

	s.app.Get("/lessons", s.listLessons)
	s.app.Get("/lessons/:id", s.getLesson)
	s.app.Post("/lessons", s.identity, s.requireRole(store.RoleAdmin), s.createLesson)

	ai := s.app.Group("/ai", s.identity)
	ai.Post("/answer", s.answer)
	ai.Get("/lessons/:id/history", s.lessonHistory)
	ai.Post("/recommend", s.recommendLessons)
}

// requestID tags every request so log lines across a request correlate.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("X-Request-ID", id)
	c.Locals(localRequestID, id)
	return c.Next()
}

func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	fields := []zap.Field{
		zap.String("request_id", requestIDFrom(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	s.log.Info("request", fields...)

	return err
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

const localRequestID = "request_id"

func requestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(localRequestID).(string); ok {
		return id
	}
	return ""
}

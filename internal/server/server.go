package server

import (
	"errors"

	"github.com/codingWithPavani/photospot-project/internal/auth"
	"github.com/codingWithPavani/photospot-project/internal/booking"
	"github.com/codingWithPavani/photospot-project/internal/config"
	"github.com/codingWithPavani/photospot-project/internal/feed"
	"github.com/codingWithPavani/photospot-project/internal/interaction"
	"github.com/codingWithPavani/photospot-project/internal/location"
	"github.com/codingWithPavani/photospot-project/internal/mail"
	"github.com/codingWithPavani/photospot-project/internal/media"
	"github.com/codingWithPavani/photospot-project/internal/post"
	"github.com/codingWithPavani/photospot-project/internal/profile"
	"github.com/codingWithPavani/photospot-project/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
	Mailer mail.Mailer
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
		Mailer: mail.NewSMTPMailer(cfg),
	}

	registerRoutes(s)
	return s
}

// errorHandler renders every fiber error as {"error": message}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.App.Static("/uploads", s.Cfg.UploadDir)

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	store := media.NewStore(s.Cfg.UploadDir, s.Cfg.BaseURL)

	auth.RegisterRoutes(s.App, auth.NewService(s.Cfg.JWTSecret, s.DB))
	feed.RegisterRoutes(s.App, feed.NewService(s.DB))
	post.RegisterRoutes(s.App, post.NewService(s.DB), store, jwtMiddleware)
	interaction.RegisterRoutes(s.App, interaction.NewService(s.DB, s.Stream), jwtMiddleware)
	profile.RegisterRoutes(s.App, profile.NewService(s.DB), store, jwtMiddleware)
	booking.RegisterRoutes(s.App, booking.NewService(s.DB, s.Mailer), jwtMiddleware)
	location.RegisterRoutes(s.App.Group("/locations"), location.NewService(s.DB), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

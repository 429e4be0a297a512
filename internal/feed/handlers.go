package feed

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))

		posts, err := svc.Explore(c.Context(), q)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		trending, err := svc.Trending(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(fiber.Map{
			"posts":    posts,
			"trending": trending,
			"query":    q,
		})
	})
}

package booking

import (
	"errors"

	"github.com/codingWithPavani/photospot-project/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/book_photoshoot/:profile_id", authMiddleware, func(c *fiber.Ctx) error {
		caller, ok := auth.CallerIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var req Request
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		owner, err := svc.Book(c.Context(), c.Params("profile_id"), caller, req)
		switch {
		case errors.Is(err, ErrProfileNotFound):
			return fiber.NewError(fiber.StatusNotFound, "photographer profile not found")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Redirect("/profile/"+owner, fiber.StatusSeeOther)
	})

	// a GET on the booking URL carries no form, so it just bounces to the
	// photographer's profile
	r.Get("/book_photoshoot/:profile_id", func(c *fiber.Ctx) error {
		owner, err := svc.ownerUsername(c.Context(), c.Params("profile_id"))
		if errors.Is(err, ErrProfileNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "photographer profile not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Redirect("/profile/"+owner, fiber.StatusSeeOther)
	})
}

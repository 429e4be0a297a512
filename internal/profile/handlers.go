package profile

import (
	"errors"

	"github.com/codingWithPavani/photospot-project/internal/auth"
	"github.com/codingWithPavani/photospot-project/internal/media"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, store *media.Store, authMiddleware fiber.Handler) {
	r.Get("/profile/:username", func(c *fiber.Ctx) error {
		page, err := svc.GetPage(c.Context(), c.Params("username"))
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "user not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(page)
	})

	r.Post("/edit-profile", authMiddleware, func(c *fiber.Ctx) error {
		caller, ok := auth.CallerIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var req Profile
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if req.ProfilePicURL != nil && *req.ProfilePicURL == "" {
			req.ProfilePicURL = nil
		}
		if fh, err := c.FormFile("profile_pic"); err == nil && fh != nil {
			url, err := store.Save(fh, "avatar")
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			req.ProfilePicURL = &url
		}

		if _, err := svc.Upsert(c.Context(), caller.UserID, req); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Redirect("/profile/"+caller.Username, fiber.StatusSeeOther)
	})
}

package post

import (
	"errors"
	"strings"

	"github.com/codingWithPavani/photospot-project/internal/auth"
	"github.com/codingWithPavani/photospot-project/internal/media"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, store *media.Store, authMiddleware fiber.Handler) {
	r.Post("/post/new", authMiddleware, func(c *fiber.Ctx) error {
		caller, ok := auth.CallerIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var req Post
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if strings.TrimSpace(req.Title) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "title required")
		}
		if req.LocationID != nil && *req.LocationID == "" {
			req.LocationID = nil
		}

		// multipart uploads win over URL fields
		if fh, err := c.FormFile("image"); err == nil && fh != nil {
			url, err := store.Save(fh, "post")
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			req.ImageURL = &url
		}
		if fh, err := c.FormFile("video"); err == nil && fh != nil {
			url, err := store.Save(fh, "video")
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			req.VideoURL = &url
		}

		req.UploaderID = caller.UserID
		if _, err := svc.CreatePost(c.Context(), req); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Redirect("/profile/"+caller.Username, fiber.StatusSeeOther)
	})

	r.Get("/post/:id", func(c *fiber.Ctx) error {
		detail, err := svc.GetDetail(c.Context(), c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "post not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(detail)
	})

	r.Post("/delete-post/:id", authMiddleware, func(c *fiber.Ctx) error {
		caller, ok := auth.CallerIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		err := svc.DeletePost(c.Context(), c.Params("id"), caller.UserID)
		switch {
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		case errors.Is(err, ErrNotOwner):
			// a non-uploader is bounced back without an error body
			return c.Redirect("/profile/"+caller.Username, fiber.StatusSeeOther)
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Redirect("/profile/"+caller.Username, fiber.StatusSeeOther)
	})
}

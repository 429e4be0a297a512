package interaction

import (
	"errors"
	"strings"

	"github.com/codingWithPavani/photospot-project/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/like", authMiddleware, func(c *fiber.Ctx) error {
		caller, ok := auth.CallerIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var req LikeRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if req.PostID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "post_id required")
		}

		result, err := svc.ToggleLike(c.Context(), caller.UserID, req.PostID)
		if err != nil {
			if errors.Is(err, ErrPostNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "post not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(result)
	})

	r.Post("/comment", authMiddleware, func(c *fiber.Ctx) error {
		caller, ok := auth.CallerIdentity(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		// accepts a JSON body or plain form fields; a body that fails to
		// parse is a different error from a missing field
		var req CommentRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		text := strings.TrimSpace(req.Comment)
		if req.PostID == "" || text == "" {
			return fiber.NewError(fiber.StatusBadRequest, "post_id and comment are required")
		}

		result, err := svc.AddComment(c.Context(), caller.UserID, caller.Username, req.PostID, text)
		if err != nil {
			if errors.Is(err, ErrPostNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "post not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(fiber.Map{
			"success":       true,
			"user":          result.User,
			"comment":       result.Comment,
			"created":       result.Created,
			"comment_count": result.CommentCount,
		})
	})

	r.Get("/get-comments/:post_id", func(c *fiber.Ctx) error {
		page, err := svc.GetComments(c.Context(), c.Params("post_id"))
		if err != nil {
			if errors.Is(err, ErrPostNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "post not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(page)
	})
}

package handlers

import (
	"vinylswarm/internal/apperrors"
	"vinylswarm/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// respondError serializes a tagged API error into the uniform
// {status, message} envelope with its mapped status code.
func respondError(c *fiber.Ctx, err error) error {
	apiErr := apperrors.From(err)
	return c.Status(apiErr.HTTPStatus()).JSON(fiber.Map{
		"status":  apiErr.StatusWord(),
		"message": apiErr.Message,
	})
}

// respondBadBody short-circuits a request whose body failed to parse or
// validate.
func respondBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "fail",
		"message": err.Error(),
	})
}

// filterFromQuery reads the pagination window from the query string.
func filterFromQuery(c *fiber.Ctx) models.FilterOptions {
	return models.FilterOptions{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 0),
	}
}

package handler

import (
	"errors"

	"github.com/fadilmartias/cv-optimizer/internal/usecase"
	"github.com/fadilmartias/cv-optimizer/internal/util"
	"github.com/gofiber/fiber/v2"
)

func respondError(c *fiber.Ctx, message string, err error) error {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		})
	case errors.Is(err, usecase.ErrCVNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "cv not found",
		})
	case errors.Is(err, usecase.ErrOptimizedCVUnavailable):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Optimized CV content not available.",
		})
	case errors.Is(err, usecase.ErrEmptyCV), errors.Is(err, util.ErrUnsupportedFile), errors.Is(err, util.ErrNoText):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:       fiber.StatusUnprocessableEntity,
			Message:    message,
			DevMessage: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: message,
		}, err)
	}
}

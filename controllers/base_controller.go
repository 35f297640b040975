package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"portal-backend/models"
	apimodels "portal-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parse failed")
		return errors.New("could not read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid record id")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps an application error to the response status; unclassified
// errors become a 500 with the fallback message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallback string) error {
	if appErr, ok := models.AsAppError(err); ok {
		if appErr.Kind == models.KindPersistence || appErr.Kind == models.KindUpstream {
			logger.WithError(err).Error(appErr.Message)
			return ctx.Status(appErr.HTTPStatus()).JSON(apimodels.NewTechError(appErr.Message, appErr.Technical))
		}
		return ctx.Status(appErr.HTTPStatus()).JSON(apimodels.NewError(appErr.Message))
	}
	logger.WithError(err).Error(fallback)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(fallback))
}

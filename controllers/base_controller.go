package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/lib/apperr"
	apimodels "job-board-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError переводит ошибку обработчика в HTTP статус.
// Ошибки заполнения формы уходят с сообщениями по полям,
// остальные классы ошибок - текстом.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if vErr, ok := apperr.AsValidation(err); ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewValidationError("проверьте правильность заполнения формы", vErr.Fields))
	}
	if apperr.IsNotFound(err) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if apperr.IsForbidden(err) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	if apperr.IsConflict(err) {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	if apperr.IsUnauthorized(err) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	authhandler "job-board-backend/lib/auth"
	apimodels "job-board-backend/models/api"
	authapimodels "job-board-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Post("register", controller.register)
	app.Post("login", controller.login)
}

// @Summary Регистрация пользователя
// @Tags Аутентификация пользователей
// @Description Регистрация пользователя
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка аутентификации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

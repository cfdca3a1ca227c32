package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	authhandler "job-board-backend/lib/auth"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	profileapimodels "job-board-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.get)
		router.Put("", controller.update)
	})
}

// @Summary Профиль текущего пользователя
// @Tags Профиль
// @Description Профиль текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := authhandler.Instance.GetProfile(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменить профиль
// @Tags Профиль
// @Description Изменить имя и фамилию, email сменить нельзя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		profileapimodels.ProfileUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	err := authhandler.Instance.UpdateProfile(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения профиля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

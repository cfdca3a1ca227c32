package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	companyhandler "job-board-backend/lib/company"
	apimodels "job-board-backend/models/api"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Get("companies/:id", controller.get)
}

// @Summary Карточка компании
// @Tags Компании
// @Description Публичная карточка компании с ее вакансиями
// @Param   id			path	string	true	"ID компании"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyCard}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/companies/{id} [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	companyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := companyhandler.Instance.GetCard(companyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

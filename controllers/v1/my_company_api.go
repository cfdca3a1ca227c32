package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"job-board-backend/controllers"
	"job-board-backend/lib/apperr"
	companyhandler "job-board-backend/lib/company"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	companyapimodels "job-board-backend/models/api/company"
)

type myCompanyApiController struct {
	controllers.BaseAPIController
}

func InitMyCompanyApiRouters(app *fiber.App) {
	controller := myCompanyApiController{}
	app.Route("mycompany", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.get)
		router.Post("", controller.create)
		router.Put("", controller.update)
		router.Delete("", controller.delete)
		router.Post("logo", controller.uploadLogo)
	})
}

// @Summary Моя компания
// @Tags Моя компания
// @Description Компания текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany [get]
func (c *myCompanyApiController) get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := companyhandler.Instance.GetMy(userID)
	if err != nil {
		// у пользователя еще нет компании, клиенту нужен флаг для формы создания
		if apperr.IsNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(apimodels.NewErrorWithData("компания не найдена", companyapimodels.CompanyMissing{}))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создать компанию
// @Tags Моя компания
// @Description Создать компанию, у пользователя может быть только одна
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		companyapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany [post]
func (c *myCompanyApiController) create(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	id, err := companyhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменить компанию
// @Tags Моя компания
// @Description Изменить компанию текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		companyapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany [put]
func (c *myCompanyApiController) update(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	err := companyhandler.Instance.Update(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить компанию
// @Tags Моя компания
// @Description Удалить компанию вместе с ее вакансиями и откликами
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany [delete]
func (c *myCompanyApiController) delete(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	err := companyhandler.Instance.Delete(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузить логотип
// @Tags Моя компания
// @Description Загрузить логотип компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   logo		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/logo [post]
func (c *myCompanyApiController) uploadLogo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("logo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла логотипа")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла логотипа")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	logoID, err := companyhandler.Instance.UploadLogo(ctx.UserContext(), userID, file.Filename, file.Header.Get(fiber.HeaderContentType), fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки логотипа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(logoID))
}

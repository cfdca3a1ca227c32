package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	"job-board-backend/lib/apperr"
	resumehandler "job-board-backend/lib/resume"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	resumeapimodels "job-board-backend/models/api/resume"
)

type myResumeApiController struct {
	controllers.BaseAPIController
}

func InitMyResumeApiRouters(app *fiber.App) {
	controller := myResumeApiController{}
	app.Route("myresume", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.get)
		router.Post("", controller.create)
		router.Put("", controller.update)
		router.Delete("", controller.delete)
		router.Get("export", controller.export)
	})
	app.Get("resumes", middleware.AuthorizationRequired(), controller.listAll)
}

// @Summary Мое резюме
// @Tags Мое резюме
// @Description Резюме текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=resumeapimodels.ResumeView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/myresume [get]
func (c *myResumeApiController) get(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := resumehandler.Instance.GetMy(userID)
	if err != nil {
		// резюме еще не создано, клиенту нужен флаг для формы создания
		if apperr.IsNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(apimodels.NewErrorWithData("резюме не найдено", resumeapimodels.ResumeMissing{}))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создать резюме
// @Tags Мое резюме
// @Description Создать резюме, у пользователя может быть только одно
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		resumeapimodels.ResumeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/myresume [post]
func (c *myResumeApiController) create(ctx *fiber.Ctx) error {
	var payload resumeapimodels.ResumeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	id, err := resumehandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменить резюме
// @Tags Мое резюме
// @Description Изменить резюме текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		resumeapimodels.ResumeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/myresume [put]
func (c *myResumeApiController) update(ctx *fiber.Ctx) error {
	var payload resumeapimodels.ResumeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	err := resumehandler.Instance.Update(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить резюме
// @Tags Мое резюме
// @Description Удалить резюме текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/myresume [delete]
func (c *myResumeApiController) delete(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	err := resumehandler.Instance.Delete(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Мое резюме. Выгрузить в PDF
// @Tags Мое резюме
// @Description Выгрузка резюме текущего пользователя в PDF
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/myresume/export [get]
func (c *myResumeApiController) export(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	data, fileName, err := resumehandler.Instance.ExportPDF(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки резюме в PDF")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary База резюме
// @Tags Мое резюме
// @Description База резюме, доступна только владельцам компаний
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   page				query	int		false	"страница"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]resumeapimodels.ResumeView}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes [get]
func (c *myResumeApiController) listAll(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := resumehandler.Instance.ListAll(userID, ctx.QueryInt("page", 1))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения базы резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

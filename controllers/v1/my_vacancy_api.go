package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	gpthandler "job-board-backend/lib/gpt"
	vacancyhandler "job-board-backend/lib/vacancy"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	gptmodels "job-board-backend/models/api/gpt"
	vacancyapimodels "job-board-backend/models/api/vacancy"
)

type myVacancyApiController struct {
	controllers.BaseAPIController
}

func InitMyVacancyApiRouters(app *fiber.App) {
	controller := myVacancyApiController{}
	app.Route("mycompany/vacancies", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Post("describe", controller.describe)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
		router.Get(":id/applications", controller.applications)
	})
}

// @Summary Вакансии моей компании
// @Tags Мои вакансии
// @Description Вакансии компании текущего пользователя с количеством откликов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.MyVacancyItem}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies [get]
func (c *myVacancyApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := vacancyhandler.Instance.MyList(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создать вакансию
// @Tags Мои вакансии
// @Description Создать вакансию, дата публикации выставляется автоматически
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies [post]
func (c *myVacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	id, err := vacancyhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Вакансия моей компании
// @Tags Мои вакансии
// @Description Вакансия компании текущего пользователя вместе с откликами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.MyVacancyView}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies/{id} [get]
func (c *myVacancyApiController) get(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := vacancyhandler.Instance.GetMy(userID, vacancyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменить вакансию
// @Tags Мои вакансии
// @Description Изменить вакансию, дата публикации не сбрасывается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID вакансии"
// @Param	body				body		vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies/{id} [put]
func (c *myVacancyApiController) update(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}
	userID := middleware.GetUserID(ctx)
	err = vacancyhandler.Instance.Update(userID, vacancyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить вакансию
// @Tags Мои вакансии
// @Description Удалить вакансию вместе с откликами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies/{id} [delete]
func (c *myVacancyApiController) delete(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = vacancyhandler.Instance.Delete(userID, vacancyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклики по вакансии
// @Tags Мои вакансии
// @Description Отклики по вакансии компании текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies/{id}/applications [get]
func (c *myVacancyApiController) applications(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := applicationhandler.Instance.ListByVacancy(userID, vacancyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансии моей компании. Выгрузить в Excel
// @Tags Мои вакансии
// @Description Выгрузка вакансий компании с количеством откликов
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies/export [get]
func (c *myVacancyApiController) export(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	data, err := vacancyhandler.Instance.Export(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вакансий в Excel")
	}
	fileName := fmt.Sprintf("vacancies-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Сгенерировать описание вакансии
// @Tags Мои вакансии
// @Description Сгенерировать черновик описания вакансии по вводным данным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		gptmodels.GenVacancyDescRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptmodels.GenVacancyDescResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mycompany/vacancies/describe [post]
func (c *myVacancyApiController) describe(ctx *fiber.Ctx) error {
	var payload gptmodels.GenVacancyDescRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GenerateVacancyDescription(payload.Text)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации описания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

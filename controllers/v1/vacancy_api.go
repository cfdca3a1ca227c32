package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	vacancyhandler "job-board-backend/lib/vacancy"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	vacancyapimodels "job-board-backend/models/api/vacancy"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancies", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("cat/:specialty", controller.listBySpecialty)
		router.Use(middleware.AuthorizationOptional()).Get(":id", controller.get)
		router.Use(middleware.AuthorizationRequired()).Post(":id/apply", controller.apply)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий с поиском по названию и описанию
// @Param   s			query	string	false	"поисковая строка"
// @Param   page		query	int		false	"страница"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyItem}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	filter := vacancyapimodels.VacancyFilter{
		Search: ctx.Query("s", ""),
		Page:   ctx.QueryInt("page", 1),
	}
	list, rowCount, err := vacancyhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Вакансии специализации
// @Tags Вакансии
// @Description Вакансии по коду специализации
// @Param   specialty	path	string	true	"код специализации"
// @Param   page		query	int		false	"страница"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyItem}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/cat/{specialty} [get]
func (c *vacancyApiController) listBySpecialty(ctx *fiber.Ctx) error {
	specialtyCode := ctx.Params("specialty")
	list, rowCount, err := vacancyhandler.Instance.ListBySpecialty(specialtyCode, ctx.QueryInt("page", 1))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансий специализации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Страница вакансии
// @Tags Вакансии
// @Description Страница вакансии, для авторизованного пользователя отмечается его отклик
// @Param   id			path	string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.GetByID(vacancyID, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклик на вакансию
// @Tags Вакансии
// @Description Отклик на вакансию, повторный отклик обновляет предыдущий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID вакансии"
// @Param   written_username	formData	string	true	"ФИО"
// @Param   written_phone		formData	string	true	"Телефон"
// @Param   written_cover_letter	formData	string	true	"Сопроводительное письмо"
// @Param   photo				formData	file	false	"Фото"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancies/{id}/apply [post]
func (c *vacancyApiController) apply(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload := applicationapimodels.ApplicationData{
		WrittenUsername:    ctx.FormValue("written_username", ""),
		WrittenPhone:       ctx.FormValue("written_phone", ""),
		WrittenCoverLetter: ctx.FormValue("written_cover_letter", ""),
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, err.Error())
	}

	var photoName, photoContentType string
	var photoBody []byte
	file, err := ctx.FormFile("photo")
	if err == nil && file != nil {
		buffer, err := file.Open()
		if err != nil {
			log.WithError(err).Error("Ошибка при получении файла фото")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		defer buffer.Close()
		photoBody, err = io.ReadAll(buffer)
		if err != nil {
			log.WithError(err).Error("Ошибка при загрузке файла фото")
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		photoName = file.Filename
		photoContentType = file.Header.Get(fiber.HeaderContentType)
	}

	userID := middleware.GetUserID(ctx)
	resp, err := applicationhandler.Instance.Apply(ctx.UserContext(), vacancyID, userID, payload, photoName, photoContentType, photoBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	companyhandler "job-board-backend/lib/company"
	specialtyprovider "job-board-backend/lib/specialty"
	apimodels "job-board-backend/models/api"
	companyapimodels "job-board-backend/models/api/company"
	specialtyapimodels "job-board-backend/models/api/specialty"
)

// на главной показываются блоки специализаций и компаний
const mainBlockSize = 8

type mainApiController struct {
	controllers.BaseAPIController
}

func InitMainApiRouters(app *fiber.App) {
	controller := mainApiController{}
	app.Get("main", controller.main)
}

// MainPageView - блоки главной страницы с количеством вакансий
type MainPageView struct {
	Specialties []specialtyapimodels.SpecialtyCount `json:"specialties"`
	Companies   []companyapimodels.CompanyCount     `json:"companies"`
}

// @Summary Главная страница
// @Tags Главная
// @Description Специализации и компании с количеством вакансий
// @Success 200 {object} apimodels.Response{data=MainPageView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/main [get]
func (c *mainApiController) main(ctx *fiber.Ctx) error {
	specialties, err := specialtyprovider.Instance.TopWithVacancyCounts(mainBlockSize)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения специализаций")
	}
	companies, err := companyhandler.Instance.TopWithVacancyCounts(mainBlockSize)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения компаний")
	}
	resp := MainPageView{
		Specialties: specialties,
		Companies:   companies,
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

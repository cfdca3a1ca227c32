package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	filestorage "job-board-backend/lib/file-storage"
	apimodels "job-board-backend/models/api"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Get("files/:id", controller.get)
}

// @Summary Скачать файл
// @Tags Файлы
// @Description Скачать файл (логотип, картинка специализации, фото отклика)
// @Param   id			path	string	true	"ID файла"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *fileApiController) get(ctx *fiber.Ctx) error {
	fileID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, rec, err := filestorage.Instance.GetFile(ctx.UserContext(), fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла")
	}
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+rec.Name+`"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

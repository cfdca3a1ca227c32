package apiv1

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"job-board-backend/config"
	"job-board-backend/lib/apperr"
	resumehandler "job-board-backend/lib/resume"
	authutils "job-board-backend/lib/utils/auth-utils"
	apimodels "job-board-backend/models/api"
	resumeapimodels "job-board-backend/models/api/resume"
)

type fakeResumeProvider struct{}

func (fakeResumeProvider) GetMy(userID string) (resumeapimodels.ResumeView, error) {
	return resumeapimodels.ResumeView{}, apperr.NotFound("резюме не найдено")
}

func (fakeResumeProvider) Create(userID string, data resumeapimodels.ResumeData) (string, error) {
	return "", nil
}

func (fakeResumeProvider) Update(userID string, data resumeapimodels.ResumeData) error { return nil }

func (fakeResumeProvider) Delete(userID string) error { return nil }

func (fakeResumeProvider) ExportPDF(userID string) ([]byte, string, error) { return nil, "", nil }

func (fakeResumeProvider) ListAll(requesterID string, page int) ([]resumeapimodels.ResumeView, int64, error) {
	return nil, 0, nil
}

func TestMyResumeGet(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	resumehandler.Instance = fakeResumeProvider{}

	app := fiber.New()
	InitMyResumeApiRouters(app)

	t.Run(`missing resume hint check`, func(t *testing.T) {
		token, err := authutils.GetToken("u-1", "Иван")
		require.Nil(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/myresume", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		parsed := apimodels.Response{}
		require.Nil(t, json.Unmarshal(body, &parsed))
		require.Equal(t, "fail", parsed.Status)
		data, ok := parsed.Data.(map[string]interface{})
		require.True(t, ok)
		require.Equal(t, false, data["has_resume"])
	})
}

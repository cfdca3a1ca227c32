package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"job-board-backend/config"
	"job-board-backend/lib/apperr"
	companyhandler "job-board-backend/lib/company"
	authutils "job-board-backend/lib/utils/auth-utils"
	apimodels "job-board-backend/models/api"
	companyapimodels "job-board-backend/models/api/company"
)

type fakeCompanyProvider struct{}

func (fakeCompanyProvider) Create(ownerID string, data companyapimodels.CompanyData) (string, error) {
	return "", nil
}

func (fakeCompanyProvider) GetMy(ownerID string) (companyapimodels.CompanyView, error) {
	return companyapimodels.CompanyView{}, apperr.NotFound("компания не найдена")
}

func (fakeCompanyProvider) Update(ownerID string, data companyapimodels.CompanyData) error {
	return nil
}

func (fakeCompanyProvider) Delete(ownerID string) error { return nil }

func (fakeCompanyProvider) GetCard(companyID string) (companyapimodels.CompanyCard, error) {
	return companyapimodels.CompanyCard{}, nil
}

func (fakeCompanyProvider) TopWithVacancyCounts(limit int) ([]companyapimodels.CompanyCount, error) {
	return nil, nil
}

func (fakeCompanyProvider) UploadLogo(ctx context.Context, ownerID, fileName, contentType string, fileBody []byte) (string, error) {
	return "", nil
}

func TestMyCompanyGet(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	companyhandler.Instance = fakeCompanyProvider{}

	app := fiber.New()
	InitMyCompanyApiRouters(app)

	t.Run(`missing company hint check`, func(t *testing.T) {
		token, err := authutils.GetToken("u-1", "Иван")
		require.Nil(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/mycompany", nil)
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
		require.Equal(t, false, data["has_company"])
	})

	t.Run(`missing token check`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/mycompany", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

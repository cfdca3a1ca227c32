package gpthandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-board-backend/config"
	yagptclient "job-board-backend/lib/gpt/yagpt-client"
	gptmodels "job-board-backend/models/api/gpt"
)

const vacancyPromt = "Ты - рекрутер на сайте вакансий. Пиши дружелюбно и по делу, без канцелярита"

type Provider interface {
	GenerateVacancyDescription(text string) (resp gptmodels.GenVacancyDescResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) GenerateVacancyDescription(text string) (resp gptmodels.GenVacancyDescResponse, err error) {
	if config.Conf.YandexGPT.IAMToken == "" {
		return resp, errors.New("генерация описаний не настроена")
	}
	resp.Description, err = yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(vacancyPromt, fmt.Sprintf("Сгенерируй описание для вакансии имея эти вводные данные: %s", text))
	if err != nil {
		log.WithError(err).Error("ошибка генерации описания через YandexGPT")
		return resp, err
	}
	return resp, nil
}

package applicationhandler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"job-board-backend/db"
	"job-board-backend/lib/apperr"
	applicationstore "job-board-backend/lib/application/store"
	companystore "job-board-backend/lib/company/store"
	filestorage "job-board-backend/lib/file-storage"
	"job-board-backend/lib/smtp"
	userstore "job-board-backend/lib/users/store"
	"job-board-backend/lib/utils/validation"
	vacancystore "job-board-backend/lib/vacancy/store"
	applicationapimodels "job-board-backend/models/api/application"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Apply(ctx context.Context, vacancyID, userID string, data applicationapimodels.ApplicationData, photoName, photoContentType string, photoBody []byte) (view applicationapimodels.ApplicationView, err error)
	ListByVacancy(ownerID, vacancyID string) (list []applicationapimodels.ApplicationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        applicationstore.NewInstance(db.DB),
		vacancyStore: vacancystore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
		userStore:    userstore.NewInstance(db.DB),
		mail:         smtp.Instance,
	}
}

type impl struct {
	store        applicationstore.Provider
	vacancyStore vacancystore.Provider
	companyStore companystore.Provider
	userStore    userstore.Provider
	mail         smtp.Provider
}

// Apply создает отклик на вакансию. Повторный отклик того же пользователя
// обновляет существующий, письмо владельцу при этом не отправляется.
func (i impl) Apply(ctx context.Context, vacancyID, userID string, data applicationapimodels.ApplicationData, photoName, photoContentType string, photoBody []byte) (view applicationapimodels.ApplicationView, err error) {
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return view, err
	}
	if vacancy == nil {
		return view, apperr.NotFound("вакансия не найдена")
	}
	rec := dbmodels.Application{
		WrittenUsername:    data.WrittenUsername,
		WrittenPhone:       validation.NormalizePhone(data.WrittenPhone),
		WrittenCoverLetter: data.WrittenCoverLetter,
		VacancyID:          vacancyID,
		UserID:             &userID,
	}
	if len(photoBody) != 0 {
		photoID, err := filestorage.Instance.UploadFile(ctx, photoName, dbmodels.ApplicationPhoto, photoContentType, photoBody)
		if err != nil {
			return view, err
		}
		rec.PhotoID = photoID
	}
	id, created, err := i.store.Upsert(rec)
	if err != nil {
		return view, err
	}
	rec.ID = id
	if created {
		i.notifyOwner(*vacancy, rec)
	}
	return applicationapimodels.Convert(rec), nil
}

// ListByVacancy - отклики по вакансии, доступны только владельцу компании
func (i impl) ListByVacancy(ownerID, vacancyID string) (list []applicationapimodels.ApplicationView, err error) {
	company, err := i.companyStore.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperr.NotFound("компания не найдена")
	}
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, apperr.NotFound("вакансия не найдена")
	}
	if vacancy.CompanyID != company.ID {
		return nil, apperr.Forbidden("вакансия принадлежит другой компании")
	}
	recList, err := i.store.ListByVacancy(vacancyID)
	if err != nil {
		return nil, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.Convert(rec))
	}
	return list, nil
}

func (i impl) notifyOwner(vacancy dbmodels.Vacancy, rec dbmodels.Application) {
	if i.mail == nil || vacancy.Company == nil {
		return
	}
	logger := log.WithField("vacancy_id", vacancy.ID)
	owner, err := i.userStore.GetByID(vacancy.Company.OwnerID)
	if err != nil || owner == nil {
		logger.WithError(err).Error("не удалось получить владельца вакансии для уведомления")
		return
	}
	message := fmt.Sprintf("На вакансию \"%s\" откликнулся %s, телефон %s.",
		vacancy.Title, rec.WrittenUsername, rec.WrittenPhone)
	err = i.mail.SendEMail(owner.Email, message, "новый отклик")
	if err != nil {
		logger.WithError(err).Error("не удалось отправить уведомление об отклике")
	}
}

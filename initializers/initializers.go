package initializers

import (
	"context"

	"job-board-backend/config"
	"job-board-backend/fiberlog"
	applicationhandler "job-board-backend/lib/application"
	authhandler "job-board-backend/lib/auth"
	companyhandler "job-board-backend/lib/company"
	xlsexport "job-board-backend/lib/export/xls"
	filestorage "job-board-backend/lib/file-storage"
	gpthandler "job-board-backend/lib/gpt"
	resumehandler "job-board-backend/lib/resume"
	specialtyprovider "job-board-backend/lib/specialty"
	vacancyhandler "job-board-backend/lib/vacancy"
	s3client "job-board-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	filestorage.NewHandler(s3client.Client)
	authhandler.NewHandler()
	specialtyprovider.NewHandler()
	companyhandler.NewHandler()
	vacancyhandler.NewHandler()
	resumehandler.NewHandler()
	applicationhandler.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
}

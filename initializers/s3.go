package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"job-board-backend/config"
	s3client "job-board-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	s3client.Client = minioClient

	err = s3client.MakeBucket(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}

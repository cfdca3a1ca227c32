package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"job-board-backend/config"
)

var Client *minio.Client

// MakeBucket создает бакет сервиса, если его еще нет
func MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

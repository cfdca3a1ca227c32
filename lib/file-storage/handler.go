package filestorage

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"io"

	"job-board-backend/config"
	"job-board-backend/db"
	"job-board-backend/lib/apperr"
	filesstore "job-board-backend/lib/file-storage/store"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	UploadFile(ctx context.Context, fileName string, fileType dbmodels.FileType, contentType string, data []byte) (id string, err error)
	GetFile(ctx context.Context, fileID string) (data []byte, rec *dbmodels.FileStorage, err error)
}

var Instance Provider

func NewHandler(s3Client *minio.Client) {
	Instance = impl{
		s3client: s3Client,
		store:    filesstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesstore.Provider
}

// UploadFile сохраняет метаданные в БД и кладет файл в S3 под ключом ID
func (i impl) UploadFile(ctx context.Context, fileName string, fileType dbmodels.FileType, contentType string, data []byte) (id string, err error) {
	rec := dbmodels.FileStorage{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		Name:        fileName,
		Type:        fileType,
		ContentType: contentType,
	}
	id, err = i.store.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения метаданных файла")
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, id,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения файла в S3")
	}
	return id, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (data []byte, rec *dbmodels.FileStorage, err error) {
	rec, err = i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, apperr.NotFound("файл не найден")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения файла из S3")
	}
	defer object.Close()
	data, err = io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла из S3")
	}
	return data, rec, nil
}

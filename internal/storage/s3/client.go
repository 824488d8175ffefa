package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// minioAPI — внутренний интерфейс-адаптер, чтобы мокать клиент без реального
// S3-сервера в тестах.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// обёртка *minio.Client под minioAPI
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

// Client — загрузчик файлов в S3-совместимое хранилище (R2, MinIO).
type Client struct {
	api           minioAPI
	bucket        string
	keyPrefix     string
	publicBaseURL string
}

// NewClient создаёт клиент хранилища поверх реального *minio.Client.
func NewClient(ctx context.Context, client *minio.Client, bucket, keyPrefix, publicBaseURL string) (*Client, error) {
	return NewClientWithAPI(ctx, minioClientWrapper{c: client}, bucket, keyPrefix, publicBaseURL)
}

// NewClientWithAPI позволяет подменить API в тестах.
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket, keyPrefix, publicBaseURL string) (*Client, error) {
	c := &Client{
		api:           api,
		bucket:        bucket,
		keyPrefix:     strings.Trim(keyPrefix, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// ObjectKey строит уникальный ключ объекта: <prefix>/<uuid>-<имя файла>.
// Случайный uuid защищает от коллизий одинаковых имён файлов.
func (c *Client) ObjectKey(filename string) string {
	return c.keyPrefix + "/" + uuid.NewString() + "-" + filename
}

// Upload отправляет содержимое в bucket под указанным ключом.
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := c.api.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// PublicURL — чистая деривация публичного URL: срезаем префикс каталога и
// приклеиваем к публичному базовому URL. Сетевых вызовов нет.
func (c *Client) PublicURL(key string) string {
	rel := strings.TrimPrefix(key, c.keyPrefix+"/")
	return c.publicBaseURL + "/" + rel
}

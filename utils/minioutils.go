package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/prefeitura-digital/cms-go/config"
	"github.com/prefeitura-digital/cms-go/minio"
)

// UploadObject streams content into the media bucket under objectKey.
func UploadObject(ctx context.Context, objectKey string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectKey) == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectKey, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// DeleteObject removes the object from the media bucket.
func DeleteObject(ctx context.Context, objectKey string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectKey, minioSDK.RemoveObjectOptions{})
}

// PublicObjectURL builds the URL the public site uses to reach an uploaded
// object through the bucket's public endpoint.
func PublicObjectURL(objectKey string) string {
	return strings.TrimRight(config.MinioPublicURL, "/") + "/" + objectKey
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/utils"
	"gorm.io/gorm"
)

var ErrMediaNotFound = errors.New("media file not found")

type MediaService struct {
	repo repositories.MediaRepo
}

func NewMediaService(repos *repositories.Repos) *MediaService {
	return &MediaService{repo: repos.Media}
}

func (s *MediaService) ListMedia(q dto.ListQuery) ([]models.MediaFile, int64, error) {
	return s.repo.List(q)
}

// Upload streams the file into the object store under a uuid-prefixed key
// and records it. The record's URL points at the bucket's public endpoint.
func (s *MediaService) Upload(ctx context.Context, uploaderID uint, header *multipart.FileHeader) (*models.MediaFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("uploads/%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	if err := utils.UploadObject(ctx, objectKey, contentType, src, header.Size); err != nil {
		return nil, err
	}

	file := &models.MediaFile{
		FileName:    header.Filename,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        header.Size,
		URL:         utils.PublicObjectURL(objectKey),
		UploaderID:  uploaderID,
	}
	if err := s.repo.Create(file); err != nil {
		// object without record is unreachable garbage, clean it up
		if delErr := utils.DeleteObject(ctx, objectKey); delErr != nil {
			log.Printf("Failed to remove orphan object %s: %v", objectKey, delErr)
		}
		return nil, err
	}
	return file, nil
}

// Delete removes the object first, then the record; a missing object is not
// fatal.
func (s *MediaService) Delete(ctx context.Context, id uint) error {
	file, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMediaNotFound
	}
	if err != nil {
		return err
	}

	if err := utils.DeleteObject(ctx, file.ObjectKey); err != nil {
		log.Printf("Failed to remove object %s: %v", file.ObjectKey, err)
	}
	return s.repo.Delete(id)
}

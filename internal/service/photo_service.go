package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/steelbridge/fabshop/internal/entity"
	"github.com/steelbridge/fabshop/internal/repository"
)

// PhotoService pairs photo rows with their bytes in the object store. The
// database never holds image content, only the object path.
type PhotoService struct {
	photoRepo   *repository.PhotoRepository
	jobRepo     *repository.JobRepository
	minioClient *minio.Client
	bucketName  string
}

func NewPhotoService(
	photoRepo *repository.PhotoRepository,
	jobRepo *repository.JobRepository,
	minioClient *minio.Client,
	bucketName string,
) *PhotoService {
	return &PhotoService{
		photoRepo:   photoRepo,
		jobRepo:     jobRepo,
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

// Upload stores the image bytes and records the photo against the job. The
// object write happens first: if it fails, no row is created.
func (s *PhotoService) Upload(ctx context.Context, jobID uint, fileName string, reader io.Reader, fileSize int64, contentType, description string) (*entity.Photo, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("jobs/%d/%s%s", jobID, uuid.New().String(), filepath.Ext(fileName))

	if s.minioClient != nil {
		_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return nil, fmt.Errorf("upload photo: %w", err)
		}
	}

	p := &entity.Photo{
		JobID:       jobID,
		FilePath:    objectName,
		Description: description,
	}
	if err := s.photoRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PhotoService) Get(ctx context.Context, id uint) (*entity.Photo, error) {
	return s.photoRepo.FindByID(ctx, id)
}

func (s *PhotoService) ListByJob(ctx context.Context, jobID uint) ([]entity.Photo, error) {
	return s.photoRepo.FindByJob(ctx, jobID)
}

func (s *PhotoService) UpdateDescription(ctx context.Context, id uint, description string) (*entity.Photo, error) {
	p, err := s.photoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Description = description
	if err := s.photoRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the row, then the object best-effort: a dangling object
// is preferable to a row pointing at nothing.
func (s *PhotoService) Delete(ctx context.Context, id uint) error {
	p, err := s.photoRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.photoRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.minioClient != nil {
		_ = s.minioClient.RemoveObject(ctx, s.bucketName, p.FilePath, minio.RemoveObjectOptions{})
	}
	return nil
}

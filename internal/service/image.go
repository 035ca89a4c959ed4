package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/noshheaven/backend/config"
)

// ImageService stores meal and profile photos in S3
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadMealImage stores a meal photo and returns its public URL
func (s *ImageService) UploadMealImage(ctx context.Context, mealID uuid.UUID, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("meals/%s/%s%s", mealID, uuid.New(), extensionFor(contentType))
	return s.upload(ctx, key, body, contentType)
}

// UploadProfileImage stores a chef profile photo and returns its public URL
func (s *ImageService) UploadProfileImage(ctx context.Context, chefID uuid.UUID, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("chefs/%s/%s%s", chefID, uuid.New(), extensionFor(contentType))
	return s.upload(ctx, key, body, contentType)
}

func (s *ImageService) upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if s.s3Config == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        readerAdapter{body},
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}

func extensionFor(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// readerAdapter wraps an io.Reader so the S3 SDK gets a plain reader even
// when handlers pass a ReadSeeker.
type readerAdapter struct {
	io.Reader
}

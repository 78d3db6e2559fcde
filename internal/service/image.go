package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/config"
)

// PhotoUploader stores a meal photo and returns its public URL.
type PhotoUploader interface {
	UploadMealPhoto(ctx context.Context, imageData []byte, contentType string) (string, error)
}

// ImageService stores meal photos in S3.
type ImageService struct {
	aws *config.AWSClients
}

func NewImageService(awsClients *config.AWSClients) *ImageService {
	return &ImageService{aws: awsClients}
}

var extensionByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// UploadMealPhoto uploads image data to S3 and returns the public URL.
func (s *ImageService) UploadMealPhoto(ctx context.Context, imageData []byte, contentType string) (string, error) {
	ext, ok := extensionByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	fileName := fmt.Sprintf("meal-photos/%s.%s", uuid.New().String(), ext)

	_, err := s.aws.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.aws.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.aws.BucketName, fileName)
	log.Printf("[ImageService] Uploaded meal photo to S3: %s", publicURL)

	return publicURL, nil
}

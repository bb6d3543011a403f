package service

import (
	"context"
	"fmt"
	"time"

	appconfig "collabtime-api/core/config"
	"collabtime-api/core/errors"
	"collabtime-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AvatarService issues presigned S3 upload URLs for member avatars; the
// browser uploads directly and the API only stores the resulting public URL.
type AvatarService struct {
	presign *s3.PresignClient
	cfg     appconfig.S3Config
}

// AvatarServiceInterface defines the service contract
type AvatarServiceInterface interface {
	PresignAvatarUpload(ctx context.Context, memberID uuid.UUID, contentType string) (string, string, int, *errors.AppError)
}

// NewAvatarService creates a new avatar service
func NewAvatarService(cfg appconfig.S3Config) AvatarServiceInterface {
	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	})

	return &AvatarService{
		presign: s3.NewPresignClient(client),
		cfg:     cfg,
	}
}

// PresignAvatarUpload returns a presigned PUT URL, the public object URL, and
// the expiry in seconds
func (s *AvatarService) PresignAvatarUpload(ctx context.Context, memberID uuid.UUID, contentType string) (string, string, int, *errors.AppError) {
	if contentType != "image/png" && contentType != "image/jpeg" && contentType != "image/webp" {
		return "", "", 0, errors.NewAppError(errors.ErrInvalidInput, "unsupported avatar content type", nil)
	}

	key := fmt.Sprintf("avatars/%s", memberID)
	expires := time.Duration(s.cfg.PresignExpireMn) * time.Minute

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		logger.Error("AvatarService:PresignAvatarUpload", err)
		return "", "", 0, errors.NewAppError(errors.ErrInternalServer, "failed to presign upload", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	return req.URL, publicURL, int(expires.Seconds()), nil
}

// internal/services/storage_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/drivegear/autoparts-backend/internal/config"
	"github.com/drivegear/autoparts-backend/internal/models"
)

// StorageService archives order receipts to S3 so order history survives
// database restores.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
	logger   *logrus.Logger
}

func NewStorageService(config *config.Config, logger *logrus.Logger) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// No S3 for local development
		return &StorageService{config: config, logger: logger}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
		logger:   logger,
	}, nil
}

// UploadOrderReceipt writes the order as a JSON document keyed by date and
// order ID, and returns the object key.
func (s *StorageService) UploadOrderReceipt(order *models.Order) (string, error) {
	key := fmt.Sprintf("receipts/%s/%s.json", time.Now().Format("20060102"), order.ID)

	if s.s3Client == nil {
		s.logger.WithField("key", key).Info("Receipt upload skipped (S3 not configured)")
		return key, nil
	}

	payload, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal receipt: %w", err)
	}

	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(payload))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload receipt to S3: %w", err)
	}

	return key, nil
}

// ReceiptURL returns a presigned download link for an archived receipt.
func (s *StorageService) ReceiptURL(key string, expiration time.Duration) (string, error) {
	if s.s3Client == nil {
		return "", fmt.Errorf("S3 client not configured")
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiration)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url, nil
}

package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWSClients holds the AWS service clients used by the API.
type AWSClients struct {
	S3          *s3.Client
	Rekognition *rekognition.Client
	BucketName  string
}

// NewAWSClients initializes the S3 and Rekognition clients from the shared
// AWS config chain (env vars, shared credentials file, instance role).
func NewAWSClients(ctx context.Context, cfg *Config) (*AWSClients, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSClients{
		S3:          s3.NewFromConfig(awsCfg),
		Rekognition: rekognition.NewFromConfig(awsCfg),
		BucketName:  cfg.S3Bucket,
	}, nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3pkg "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/cirruslabs/pinpoint/internal/registry"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"io"
)

const defaultRegion = "us-east-1"

type S3 struct {
	client *s3pkg.Client
	bucket string
	logger *zap.SugaredLogger
}

type Option func(s3 *S3)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s3 *S3) {
		s3.logger = logger
	}
}

// NewS3 returns an S3 client whose requests are sent to the
// endpoint configured for the "s3" service.
func NewS3(ctx context.Context, config *config.Config, registry *registry.Registry, opts ...Option) (*S3, error) {
	if config.S3 == nil || config.S3.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket needs to be configured")
	}

	s3Endpoint, ok := registry.Lookup("s3")
	if !ok {
		return nil, fmt.Errorf("no endpoint is configured for the \"s3\" service")
	}

	s3 := &S3{
		bucket: config.S3.Bucket,
	}

	// Apply options
	for _, opt := range opts {
		opt(s3)
	}

	// Apply defaults
	if s3.logger == nil {
		s3.logger = zap.NewNop().Sugar()
	}

	region := lo.Ternary(config.Region != "", config.Region, defaultRegion)

	var awsConfig aws.Config

	if config.S3.AccessKeyID != "" {
		awsConfig = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				config.S3.AccessKeyID,
				config.S3.AccessKeySecret,
				"",
			),
		}
	} else {
		var err error

		awsConfig, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("failed to load default AWS configuration: %w", err)
		}
	}

	awsConfig.APIOptions = append(awsConfig.APIOptions, APIOption(s3Endpoint))

	s3.client = s3pkg.NewFromConfig(awsConfig, func(options *s3pkg.Options) {
		options.EndpointResolverV2 = &s3EndpointResolver{endpoint: s3Endpoint}
		options.UsePathStyle = true
	})

	s3.logger.Debugf("using S3 endpoint %s for bucket %s", s3Endpoint, s3.bucket)

	return s3, nil
}

func (s3 *S3) Bucket() string {
	return s3.bucket
}

// EnsureBucket creates the bucket unless it already exists.
func (s3 *S3) EnsureBucket(ctx context.Context) error {
	_, err := s3.client.CreateBucket(ctx, &s3pkg.CreateBucketInput{
		Bucket: aws.String(s3.bucket),
	})
	if err != nil {
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		var alreadyExists *types.BucketAlreadyExists

		if errors.As(err, &alreadyOwned) || errors.As(err, &alreadyExists) {
			return nil
		}

		return fmt.Errorf("failed to create bucket %s: %w", s3.bucket, err)
	}

	return nil
}

func (s3 *S3) Put(ctx context.Context, key string, body io.Reader) error {
	_, err := s3.client.PutObject(ctx, &s3pkg.PutObjectInput{
		Bucket: aws.String(s3.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return nil
}

// Count returns the number of objects in the bucket.
func (s3 *S3) Count(ctx context.Context) (int, error) {
	var count int

	paginator := s3pkg.NewListObjectsV2Paginator(s3.client, &s3pkg.ListObjectsV2Input{
		Bucket: aws.String(s3.bucket),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list objects in bucket %s: %w", s3.bucket, err)
		}

		count += len(page.Contents)
	}

	return count, nil
}

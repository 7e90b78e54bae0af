package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"postpilot/internal/common"
	"postpilot/internal/config"
)

// S3Stager uploads staged local files to durable object storage and
// returns the public URL that replaces the local path on the post.
type S3Stager struct {
	client *s3.Client
	cfg    config.MediaConfig
	log    zerolog.Logger
}

func NewS3Stager(cfg config.MediaConfig, log zerolog.Logger) (*S3Stager, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	// Explicit credentials when configured, default chain otherwise.
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO and most S3-compatibles
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)

	log.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Msg("media stager initialized")

	return &S3Stager{client: client, cfg: cfg, log: log}, nil
}

// Upload puts one local file into the bucket under a timestamped key and
// returns its public URL. Repeated uploads of the same path produce
// distinct keys; callers avoid re-staging already-published files.
func (s *S3Stager) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer f.Close()

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(localPath))
	contentType := common.DetectMimeType(localPath)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	url := s.objectURL(key)
	s.log.Debug().Str("path", localPath).Str("url", url).Msg("staged media uploaded")
	return url, nil
}

func (s *S3Stager) objectURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

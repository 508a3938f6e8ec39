package lambda

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stahnma/gh-showcase/internal/commands"
)

// Uploader is the part of the S3 client the handler uses.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Renderer writes the page as HTML.
type Renderer interface {
	RenderHTML(ctx context.Context, w io.Writer) error
}

// ObjectKey fills a %s in key with the date.
func ObjectKey(key string, now time.Time) string {
	if !strings.Contains(key, "%s") {
		return key
	}
	return fmt.Sprintf(key, now.Format("2006-Jan-02"))
}

// Upload renders the page and stores it in bucket under key.
func Upload(ctx context.Context, r Renderer, svc Uploader, bucket, key string) error {
	var buf bytes.Buffer
	if err := r.RenderHTML(ctx, &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if buf.Len() == 0 {
		return fmt.Errorf("render produced no output")
	}

	_, err := svc.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return nil
}

// NewHandler returns a Lambda handler function that renders the page and uploads it to S3.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		bucket := app.Config.S3Bucket
		key := app.Config.S3ObjectKey

		if bucket == "" || key == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(app.Config.AWSRegion))
		if err != nil {
			return "", fmt.Errorf("failed to load AWS config: %w", err)
		}

		if err := Upload(ctx, app, s3.NewFromConfig(cfg), bucket, ObjectKey(key, time.Now())); err != nil {
			return "", err
		}
		return "Lambda executed successfully and page uploaded to S3", nil
	}
}

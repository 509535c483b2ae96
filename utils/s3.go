package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Uploader stores food images and hands back the public URL they will be
// served from.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Uploader(cfg aws.Config) *S3Uploader {
	return &S3Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  os.Getenv("S3_BUCKET"),
		baseURL: os.Getenv("CLOUDFRONT_URL"),
	}
}

// DecodeDataURI splits a "data:<mime>;base64,<data>" string into raw bytes
// and its content type.
func DecodeDataURI(uri string) ([]byte, string, error) {
	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, "", fmt.Errorf("not a base64 data URI")
	}

	mediaType := strings.TrimPrefix(parts[0], "data:")      // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0]     // "image/jpeg"

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return data, contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}

// Upload writes the image under food-images/<prefix>-<nanos><ext> and returns
// its URL behind the CDN.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, contentType, prefix string) (string, error) {
	key := fmt.Sprintf("food-images/%s-%d%s", prefix, time.Now().UnixNano(), extensionFor(contentType))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}

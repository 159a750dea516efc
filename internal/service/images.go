// Package service holds the pieces of business logic that handlers
// delegate to
package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	a "lavish/store-api/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"
)

// ImageStore is what the product handlers see of the object storage.
// Kept as an interface so tests can swap the real bucket out.
type ImageStore interface {
	// Upload stores the image under key and returns its public URL
	Upload(ctx context.Context, r io.Reader, size int64, contentType, key string) (string, error)

	// Delete removes the object a previously returned URL points to
	Delete(ctx context.Context, imageURL string) error
}

type S3ImageStore struct {
	S3 *a.S3Client
}

func NewS3ImageStore(s *a.S3Client) *S3ImageStore {
	return &S3ImageStore{S3: s}
}

func (s *S3ImageStore) Upload(ctx context.Context, r io.Reader, size int64, contentType, key string) (string, error) {
	uploader := manager.NewUploader(s.S3.C, func(u *manager.Uploader) {
		u.PartSize = 5 << 20
	})

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        s.S3.Bucket,
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3, %w", err)
	}

	return s.publicURL(key), nil
}

func (s *S3ImageStore) Delete(ctx context.Context, imageURL string) error {
	key, err := keyFromURL(imageURL)
	if err != nil {
		return err
	}

	_, err = s.S3.C.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: s.S3.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from S3, %w", err)
	}

	return nil
}

func (s *S3ImageStore) publicURL(key string) string {
	if base := viper.GetString("aws.public_url"); base != "" {
		return strings.TrimSuffix(base, "/") + "/" + key
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		*s.S3.Bucket, viper.GetString("aws.region"), key)
}

func keyFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("malformed image URL %q, %w", imageURL, err)
	}

	key := strings.TrimPrefix(u.Path, "/")

	// A CDN base like https://cdn.example.com/assets puts its own path
	// in front of the object key, which must not end up in the delete
	// request
	if base := viper.GetString("aws.public_url"); base != "" {
		if b, err := url.Parse(base); err == nil {
			if prefix := strings.Trim(b.Path, "/"); prefix != "" {
				key = strings.TrimPrefix(key, prefix+"/")
			}
		}
	}

	if key == "" {
		return "", fmt.Errorf("image URL %q has no object key", imageURL)
	}

	return key, nil
}

package facades

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// ObjectPutter is the slice of the S3 client the facade uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// StorageFacade copies finished films from the video backend's temporary URL
// into the platform's S3-compatible object storage (DigitalOcean Spaces in
// production) and returns the public URL.
type StorageFacade struct {
	s3Client  ObjectPutter
	http      *http.Client
	bucket    string
	publicURL string // endpoint prefix for public object URLs
}

// NewStorageFacade creates a storage facade.
func NewStorageFacade(s3Client ObjectPutter, bucket, publicURL string) *StorageFacade {
	return &StorageFacade{
		s3Client:  s3Client,
		http:      &http.Client{Timeout: 5 * time.Minute},
		bucket:    bucket,
		publicURL: publicURL,
	}
}

// StoreFilm downloads the film at sourceURL and uploads it under a
// timestamped key. Returns the public URL of the stored object.
func (f *StorageFacade) StoreFilm(ctx context.Context, projectID, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("film download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("film download returned %d: %s", resp.StatusCode, raw)
	}

	key := fmt.Sprintf("films/%s/%s.mp4", time.Now().UTC().Format("20060102"), projectID)

	_, err = f.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(key),
		Body:          resp.Body,
		ContentType:   aws.String("video/mp4"),
		ContentLength: aws.Int64(resp.ContentLength),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		logger.Log.Errorw("film upload failed", "project_id", projectID, "key", key, "error", err)
		return "", fmt.Errorf("film upload failed: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s/%s", f.publicURL, f.bucket, key)
	logger.Log.Infow("film stored", "project_id", projectID, "url", publicURL)
	return publicURL, nil
}

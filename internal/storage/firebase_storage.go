package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseStorage keeps license images in a Firebase Storage bucket. The
// browser uploads and downloads through V4 signed URLs, so image bytes never
// pass through the server.
type FirebaseStorage struct {
	bucket *gcs.BucketHandle
}

func NewFirebaseStorage(ctx context.Context, bucketName, credentialsFile string) (*FirebaseStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase storage client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %q: %w", bucketName, err)
	}

	return &FirebaseStorage{bucket: bucket}, nil
}

func (f *FirebaseStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	url, err := f.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:      "PUT",
		Expires:     time.Now().Add(expiresIn),
		ContentType: contentType,
		Scheme:      gcs.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign upload url: %w", err)
	}
	return url, nil
}

func (f *FirebaseStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	url, err := f.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expiresIn),
		Scheme:  gcs.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign download url: %w", err)
	}
	return url, nil
}

func (f *FirebaseStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	attrs, err := f.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, attrs.Size, nil
}

func (f *FirebaseStorage) DeleteFile(ctx context.Context, key string) error {
	err := f.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// SaveFile and ReadFile exist for the local upload handlers only; a signed
// URL deployment never routes file bytes through the server.
func (f *FirebaseStorage) SaveFile(key string, reader io.Reader) error {
	return errors.New("direct save not supported by firebase storage, use signed URLs")
}

func (f *FirebaseStorage) ReadFile(key string) (io.ReadCloser, error) {
	return nil, errors.New("direct read not supported by firebase storage, use signed URLs")
}

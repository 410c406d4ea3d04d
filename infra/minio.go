package infra

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/annothem/annothem-backend/config"
)

// MinioClient is the blob store client. It is constructed once at startup
// and shared across requests; it holds fixed credentials only.
type MinioClient struct {
	Client         *minio.Client
	Admin          *madmin.AdminClient
	Bucket         string
	PublicEndpoint string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	client := &MinioClient{
		Client:         minioClient,
		Admin:          madminClient,
		Bucket:         cfg.Minio.Bucket,
		PublicEndpoint: strings.TrimSuffix(cfg.Minio.PublicEndpoint, "/"),
	}

	if err := client.EnsureBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure MinIO bucket: %v", err))
	}

	return client
}

// EnsureBucket creates the image bucket if it does not exist yet.
func (m *MinioClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	err = m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

// PutObject uploads an object under the given key.
func (m *MinioClient) PutObject(ctx context.Context, path string, body io.Reader, size int64, contentType string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	_, err := m.Client.PutObject(ctx, m.Bucket, path, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}

	return nil
}

// RemoveObject deletes an object by key.
func (m *MinioClient) RemoveObject(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	err := m.Client.RemoveObject(ctx, m.Bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}

	return nil
}

// PublicURL returns the public download URL for a stored object.
func (m *MinioClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", m.PublicEndpoint, m.Bucket, path)
}

// ServerInfo reports storage server status for the admin endpoint.
func (m *MinioClient) ServerInfo(ctx context.Context) (madmin.InfoMessage, error) {
	info, err := m.Admin.ServerInfo(ctx)
	if err != nil {
		return madmin.InfoMessage{}, fmt.Errorf("failed to get server info: %w", err)
	}

	return info, nil
}

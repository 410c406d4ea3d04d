package controller

import (
	"context"
	"io"

	"github.com/annothem/annothem-backend/config"
	"github.com/annothem/annothem-backend/infra"
	"github.com/annothem/annothem-backend/repository"
)

// BlobStorage is the slice of the blob store the controllers need. The
// MinIO client satisfies it; tests substitute a fake.
type BlobStorage interface {
	PutObject(ctx context.Context, path string, body io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, path string) error
	PublicURL(path string) string
}

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Storage    BlobStorage
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}

	ctrl := &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
	}
	if infra.Minio != nil {
		ctrl.Storage = infra.Minio
	}
	return ctrl
}

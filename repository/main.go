package repository

import (
	"gorm.io/gorm"

	"github.com/annothem/annothem-backend/infra"
)

type Repository struct {
	Db             *gorm.DB
	ImageRepo      *ImageRepository
	AnnotationRepo *AnnotationRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = NewRepository(infra.Postgres.DB)
	return repository
}

func NewRepository(db *gorm.DB) *Repository {
	if db == nil {
		panic("database connection is nil")
	}
	return &Repository{
		Db:             db,
		ImageRepo:      NewImageRepository(db),
		AnnotationRepo: NewAnnotationRepository(db),
	}
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

// Transaction support methods
func (r *Repository) BeginTransaction() *gorm.DB {
	return r.Db.Begin()
}

func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return &Repository{
		Db:             tx,
		ImageRepo:      NewImageRepository(tx),
		AnnotationRepo: NewAnnotationRepository(tx),
	}
}

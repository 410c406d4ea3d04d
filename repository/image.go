package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/annothem/annothem-backend/entity"
)

var ErrImageNotFound = errors.New("image not found")

// ImageRepository handles all database operations for the Image entity
type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{
		db: db,
	}
}

func (r *ImageRepository) Create(image *entity.Image) error {
	if image == nil {
		return errors.New("image cannot be nil")
	}
	return r.db.Create(image).Error
}

func (r *ImageRepository) GetByID(id uint) (*entity.Image, error) {
	var image entity.Image
	err := r.db.First(&image, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

// List returns images newest first, paginated by offset and page size.
func (r *ImageRepository) List(skip, limit int) ([]*entity.Image, error) {
	images := make([]*entity.Image, 0)
	err := r.db.Order("created_at DESC").Offset(skip).Limit(limit).Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Image{}, id).Error
}

func (r *ImageRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Image{}).Count(&count).Error
	return count, err
}

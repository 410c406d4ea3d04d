package repository

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/annothem/annothem-backend/entity"
)

var ErrAnnotationNotFound = errors.New("annotation not found")

// AnnotationRepository handles all database operations for the Annotation
// entity. There is at most one annotation row per image.
type AnnotationRepository struct {
	db *gorm.DB
}

func NewAnnotationRepository(db *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{
		db: db,
	}
}

func (r *AnnotationRepository) GetByImageID(imageID uint) (*entity.Annotation, error) {
	var annotation entity.Annotation
	err := r.db.Where("image_id = ?", imageID).First(&annotation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnotationNotFound
		}
		return nil, err
	}
	return &annotation, nil
}

// Upsert replaces the payload for an image wholesale, creating the row if
// none exists yet. The image itself is not checked.
func (r *AnnotationRepository) Upsert(imageID uint, data datatypes.JSON) (*entity.Annotation, error) {
	var annotation entity.Annotation
	err := r.db.Where("image_id = ?", imageID).First(&annotation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		annotation = entity.Annotation{
			ImageID: imageID,
			Data:    data,
		}
		if err := r.db.Create(&annotation).Error; err != nil {
			return nil, err
		}
		return &annotation, nil
	}
	if err != nil {
		return nil, err
	}

	annotation.Data = data
	if err := r.db.Save(&annotation).Error; err != nil {
		return nil, err
	}
	return &annotation, nil
}

// DeleteByImageID removes the annotation row for an image. Zero rows
// affected is not an error.
func (r *AnnotationRepository) DeleteByImageID(imageID uint) error {
	return r.db.Where("image_id = ?", imageID).Delete(&entity.Annotation{}).Error
}

func (r *AnnotationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Annotation{}).Count(&count).Error
	return count, err
}

package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Annotation holds the full shape payload for one image. The payload is
// opaque to the service and replaced wholesale on every save; at most one
// row exists per image.
type Annotation struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ImageID   uint           `json:"image_id" gorm:"index;not null"`
	Data      datatypes.JSON `json:"data" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updated_at"`
}

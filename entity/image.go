package entity

import "time"

type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Filename    string    `json:"filename" gorm:"size:512"`
	StoragePath string    `json:"-" gorm:"size:255;index"`
	PublicURL   string    `json:"public_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

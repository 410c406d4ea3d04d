package dto

import "encoding/json"

// SaveAnnotationRequestDTO carries the full replacement payload for one
// image. Elements are kept as raw JSON so the stored bytes round-trip
// without reordering keys.
type SaveAnnotationRequestDTO struct {
	Data []json.RawMessage `json:"data" binding:"required"`
}

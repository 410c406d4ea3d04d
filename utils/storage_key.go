package utils

import (
	"strings"

	"github.com/google/uuid"
)

// StorageKeyFor builds the blob key for an uploaded file: a random uuid
// plus the original file extension. Uniqueness is probabilistic (122 random
// bits). A filename without an extension yields a bare uuid key.
func StorageKeyFor(filename string) string {
	key := uuid.NewString()

	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return key
	}

	return key + "." + filename[idx+1:]
}

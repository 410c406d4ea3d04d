package utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annothem/annothem-backend/utils"
)

func TestStorageKeyForKeepsExtension(t *testing.T) {
	key := utils.StorageKeyFor("holiday.photo.JPG")
	assert.Regexp(t, `^[0-9a-f-]{36}\.JPG$`, key)

	_, err := uuid.Parse(key[:36])
	require.NoError(t, err)
}

func TestStorageKeyForWithoutExtension(t *testing.T) {
	key := utils.StorageKeyFor("README")
	_, err := uuid.Parse(key)
	require.NoError(t, err, "no extension means a bare uuid key")
}

func TestStorageKeyForTrailingDot(t *testing.T) {
	key := utils.StorageKeyFor("weird.")
	_, err := uuid.Parse(key)
	require.NoError(t, err)
}

func TestStorageKeyForIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := utils.StorageKeyFor("a.png")
		assert.False(t, seen[key])
		seen[key] = true
	}
}

package answer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ai_cache.json")

	cache, err := NewCache(path)
	assert.NoError(t, err)
	assert.NoError(t, cache.Put("What is gravity?", "A force of attraction."))

	reopened, err := NewCache(path)
	assert.NoError(t, err)

	ans, ok := reopened.Get("What is gravity?")
	assert.True(t, ok)
	assert.Equal(t, "A force of attraction.", ans)
}

func TestCacheStartsEmptyWithoutFile(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "ai_cache.json"))
	assert.NoError(t, err)
	assert.Equal(t, 0, cache.Len())

	_, ok := cache.Get("anything")
	assert.False(t, ok)
}

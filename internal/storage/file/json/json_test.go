package json

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuehhua/gmr/internal/storage"
)

type payload struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func TestBlobStorage(t *testing.T) {
	storage.DefaultDir = t.TempDir()

	blob := NewJSONBlob(storage.ReportsDir, "test")
	key := storage.Key{Model: "gmr", Label: "report-1"}

	value := payload{Name: "report", Values: []float64{1.5, -2.5}}
	assert.NoError(t, blob.Store(key, value))

	var loaded payload
	assert.NoError(t, blob.Load(key, &loaded))
	assert.Equal(t, value, loaded)

	err := blob.Load(storage.Key{Model: "gmr", Label: "missing"}, &loaded)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, storage.NotFoundErr))
}

func TestLocalStorage(t *testing.T) {
	shard := LocalShard()
	store, err := shard("test")
	assert.NoError(t, err)

	key := storage.Key{Model: "regression", Label: "report-2"}
	value := payload{Name: "report", Values: []float64{3.14}}
	assert.NoError(t, store.Store(key, value))

	var loaded payload
	assert.NoError(t, store.Load(key, &loaded))
	assert.Equal(t, value, loaded)

	err = store.Load(storage.Key{Model: "regression", Label: "missing"}, &loaded)
	assert.True(t, errors.Is(err, storage.NotFoundErr))
}

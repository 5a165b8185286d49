package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	Logger.Debugw("dropped before initialization")
	if !assert.NoError(Initialize(dir, 5, -1)) {
		assert.FailNow("initialize")
	}
	Logger.Debugw("parsed title", "title", "buy milk today", "expressions", 1)
	assert.NoError(Close())

	data, err := os.ReadFile(filepath.Join(dir, "log"))
	assert.NoError(err)
	assert.Contains(string(data), "DEBUG")
	assert.Contains(string(data), "parsed title")
	assert.NotContains(string(data), "dropped before initialization")
}

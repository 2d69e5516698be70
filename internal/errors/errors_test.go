package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExtractionError
		expected string
	}{
		{
			name:     "simple message",
			err:      New("/tmp/app", "valid path to a file or a directory expected"),
			expected: "valid path to a file or a directory expected",
		},
		{
			name:     "with cause",
			err:      Wrap(errors.New("permission denied"), "/tmp/app.js", "error while reading file /tmp/app.js"),
			expected: "error while reading file /tmp/app.js: permission denied",
		},
		{
			name:     "formatted",
			err:      Wrapf(errors.New("boom"), "src", "unable to extract dependencies at %s", "src"),
			expected: "unable to extract dependencies at src: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestExtractionError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(cause, "nowhere.js", "error while reading file nowhere.js")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// Without a cause the sentinel is returned
	assert.Equal(t, ErrExtraction, errors.Unwrap(New("x", "no cause")))
}

func TestExtractionError_Is(t *testing.T) {
	inner := Wrap(fs.ErrPermission, "/a/b.js", "error while reading file /a/b.js")
	outer := Wrap(inner, "/a", "unable to extract dependencies at /a")

	assert.True(t, IsExtraction(inner))
	assert.True(t, IsExtraction(outer))
	assert.True(t, IsExtraction(fmt.Errorf("scan failed: %w", outer)))
	assert.ErrorIs(t, outer, fs.ErrPermission)
	assert.False(t, IsExtraction(errors.New("plain")))
}

func TestPathOf(t *testing.T) {
	inner := Wrap(fs.ErrNotExist, "/a/b.js", "error while reading file /a/b.js")
	outer := Wrap(inner, "a", "unable to extract dependencies at a")

	path, ok := PathOf(fmt.Errorf("wrapped: %w", outer))
	require.True(t, ok)
	assert.Equal(t, "a", path)

	_, ok = PathOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestExtractionError_Code(t *testing.T) {
	assert.Equal(t, "dependency-extraction-error", New("x", "y").Code())
}

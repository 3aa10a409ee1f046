package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidityMath/internal/quote"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseIntoReportsFlushError(t *testing.T) {
	w := quote.NewJSONLWriter(failingWriter{})
	require.NoError(t, w.Write(map[string]int{"a": 1}))

	var err error
	closeInto(&err, "output", w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close output")
	assert.Contains(t, err.Error(), "disk full")
}

func TestCloseIntoKeepsEarlierError(t *testing.T) {
	first := errors.New("first")
	err := first
	closeInto(&err, "output", closerFunc(func() error { return errors.New("second") }))
	assert.Same(t, first, err)

	err = nil
	closeInto(&err, "output", closerFunc(func() error { return nil }))
	assert.NoError(t, err)
}

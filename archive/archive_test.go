package archive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/riftforge/riftseed/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	buf      bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "items/00000000000000ff.txt", ObjectPath("items", core.RunID(0xff)))
}

func TestBucket_Archive(t *testing.T) {
	writers := map[string]*memWriter{}
	b := newBucket("rift-raw", func(ctx context.Context, object string) io.WriteCloser {
		w := &memWriter{}
		writers[object] = w
		return w
	}, nil)

	raw := "```json\n[{\"id\":\"a\"}]\n```"
	runID := core.RunIDFromContent(raw)
	require.NoError(t, b.Archive(context.Background(), "skills", runID, raw))

	w, ok := writers["skills/"+runID.String()+".txt"]
	require.True(t, ok)
	assert.Equal(t, raw, w.buf.String())
	assert.True(t, w.closed)
}

func TestBucket_WriteError(t *testing.T) {
	w := &memWriter{writeErr: errors.New("quota")}
	b := newBucket("rift-raw", func(context.Context, string) io.WriteCloser { return w }, nil)

	err := b.Archive(context.Background(), "items", core.RunID(1), "raw")
	assert.ErrorContains(t, err, "quota")
	assert.ErrorContains(t, err, "gs://rift-raw/items/")
	assert.True(t, w.closed)
}

func TestBucket_CloseError(t *testing.T) {
	denied := errors.New("forbidden")
	w := &memWriter{closeErr: denied}
	b := newBucket("rift-raw", func(context.Context, string) io.WriteCloser { return w }, nil)

	assert.ErrorIs(t, b.Archive(context.Background(), "items", core.RunID(1), "raw"), denied)
}

func TestNewBucket_EmptyName(t *testing.T) {
	b, err := NewBucket(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyBucket)
	assert.Nil(t, b)
}

func TestNop(t *testing.T) {
	var a Archiver = Nop{}
	assert.NoError(t, a.Archive(context.Background(), "items", core.RunID(1), "raw"))
	assert.NoError(t, a.Close())
}

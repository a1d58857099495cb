package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink, err := Open(context.Background(), dir, "")
	require.NoError(t, err)

	loc, err := sink.Put(context.Background(), FileName("w1", "two_cut"), []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "w1-two_cut.pdf"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))

	_, err = sink.Put(context.Background(), "../escape.pdf", nil)
	assert.Error(t, err)
}

func TestOpen_S3Destination(t *testing.T) {
	_, err := Open(context.Background(), "s3:///prefix", "")
	assert.Error(t, err)

	// Loading the default AWS config needs no network access.
	sink, err := Open(context.Background(), "s3://bucket/exports/pdf/", "eu-west-1")
	require.NoError(t, err)
	s3sink, ok := sink.(*S3Sink)
	require.True(t, ok)
	assert.Equal(t, "exports/pdf/w1-two.pdf", s3sink.Key("w1-two.pdf"))
}

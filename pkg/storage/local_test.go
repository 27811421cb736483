package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDiskRoundTrip(t *testing.T) {
	disk := NewLocalDisk(t.TempDir(), "/storage")

	require.NoError(t, disk.Put("products/1/a.jpg", []byte("image-bytes")))
	assert.True(t, disk.Exists("products/1/a.jpg"))

	content, err := disk.Get("products/1/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), content)

	size, err := disk.Size("products/1/a.jpg")
	require.NoError(t, err)
	assert.EqualValues(t, len("image-bytes"), size)

	require.NoError(t, disk.Delete("products/1/a.jpg"))
	assert.False(t, disk.Exists("products/1/a.jpg"))
}

func TestLocalDiskPutStream(t *testing.T) {
	disk := NewLocalDisk(t.TempDir(), "/storage")

	require.NoError(t, disk.PutStream("payment_proofs/p.pdf", strings.NewReader("pdf-bytes")))

	content, err := disk.Get("payment_proofs/p.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
}

func TestLocalDiskURL(t *testing.T) {
	disk := NewLocalDisk(t.TempDir(), "/storage/")
	assert.Equal(t, "/storage/products/1/a.jpg", disk.URL("products/1/a.jpg"))
}

func TestLocalDiskDeleteMissingIsNil(t *testing.T) {
	disk := NewLocalDisk(t.TempDir(), "/storage")
	assert.NoError(t, disk.Delete("never/stored.jpg"))
}

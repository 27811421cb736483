package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/blossom-shop/blossom/config"
	"github.com/blossom-shop/blossom/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager from config.
// Call once at application startup (internal/server).
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()

	// Always boot local disk.
	disks["local"] = NewLocalDisk(config.StorageLocalRoot(), config.StorageURL())

	// Boot the S3 disk only when a bucket is configured.
	if config.StorageS3Bucket() != "" {
		d, err := NewS3Disk(S3Options{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			BaseURL:  config.StorageS3URL(),
		})
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation at boot time.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// Default returns the disk selected by STORAGE_DISK.
func Default() Disk { return Use(defaultDisk) }

// ── Default disk helpers ─────────────────────────────────────────────────────

// Put writes content to path on the default disk.
func Put(path string, content []byte) error { return Default().Put(path, content) }

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error { return Default().PutStream(path, r) }

// Get returns file content from the default disk.
func Get(path string) ([]byte, error) { return Default().Get(path) }

// Exists reports whether path exists on the default disk.
func Exists(path string) bool { return Default().Exists(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return Default().Delete(path) }

// URL returns the public URL for path on the default disk.
func URL(path string) string { return Default().URL(path) }

// Size returns the file size in bytes on the default disk.
func Size(path string) (int64, error) { return Default().Size(path) }

package utils

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// EnsureDir ensures the provided directory exists, creating parents as needed.
// Succeeds silently if the directory is already present.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SafeWriteFile writes data to a uniquely named temp file next to the
// destination and atomically renames it into place. An existing file at the
// destination is replaced; a failed write leaves it untouched.
func SafeWriteFile(path string, data []byte) error {
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

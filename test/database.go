package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile names a SQLite database file that no other test uses. The file
// lives in the test's temporary directory and is removed with it.
func TmpFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}

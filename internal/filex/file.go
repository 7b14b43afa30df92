// Package filex reads notes files from local disk.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/notesummarizer/internal/common"
)

// NotesExt is the only extension the file picker offers. The check is
// advisory; the summarization service decides what it accepts.
const NotesExt = ".txt"

// AcceptsNotes reports whether name carries the notes extension
// (case-insensitive).
func AcceptsNotes(name string) bool {
	return strings.EqualFold(filepath.Ext(name), NotesExt)
}

// ReadNotes loads the file at path and returns its base name and contents.
// Files larger than maxBytes fail with common.ErrFileTooLarge; maxBytes <= 0
// disables the limit.
func ReadNotes(path string, maxBytes int64) (string, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return "", nil, fmt.Errorf("%s: %w", path, common.ErrNotAFile)
	}
	if maxBytes > 0 && fi.Size() > maxBytes {
		return "", nil, fmt.Errorf("%s is %d bytes: %w", path, fi.Size(), common.ErrFileTooLarge)
	}

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", nil, fmt.Errorf("%s: %w", path, common.ErrFileTooLarge)
	}

	return filepath.Base(path), data, nil
}

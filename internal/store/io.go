package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// decodeFile unmarshals the report file at path into out. A missing file
// surfaces as an error matching os.ErrNotExist.
func decodeFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// encodeFile writes v as indented JSON so saved reports stay readable with
// a pager.
func encodeFile(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return replaceFile(path, append(b, '\n'), mode)
}

// replaceFile stages b in a sibling temp file, syncs it and renames it over
// path. Readers listing the directory see either no report or a complete
// one; temp names never carry the report extension.
func replaceFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	if err := writeSynced(f, b, mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	committed = true
	return nil
}

func writeSynced(f *os.File, b []byte, mode os.FileMode) error {
	if _, err := f.Write(b); err != nil {
		return err
	}
	if err := f.Chmod(mode); err != nil {
		return err
	}
	return f.Sync()
}

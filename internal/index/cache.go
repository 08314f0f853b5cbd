// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// A Digest identifies the indexed state of a directory: the set of
// source files with their sizes and modification times.
type Digest [sha256.Size]byte

// DigestDir computes the digest of a directory's current source files.
func DigestDir(dir string) (Digest, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return Digest{}, err
	}
	h := sha256.New()
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		fmt.Fprintf(h, "%s\x00%d\x00%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	var d Digest
	h.Sum(d[:0])
	return d, nil
}

// Open returns the index for dir, reusing a valid disk snapshot when one
// exists and rebuilding (and re-snapshotting) otherwise. app names the
// cache subdirectory under the user cache dir.
func Open(app, dir string) (*Index, error) {
	key, err := DigestDir(dir)
	if err != nil {
		return nil, err
	}
	path, err := snapshotPath(app, key)
	if err == nil {
		if ix, err := loadSnapshot(path); err == nil && ix.Schema == schemaVersion && ix.Root == dir {
			return ix, nil
		}
	}

	ix, err := Build(dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		// A failed snapshot write is not fatal; the index is still good.
		_ = saveSnapshot(path, ix)
	}
	return ix, nil
}

func snapshotPath(app string, key Digest) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app, "index", hex.EncodeToString(key[:])+".mp"), nil
}

func saveSnapshot(path string, ix *Index) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(ix); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func loadSnapshot(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ix Index
	if err := msgpack.NewDecoder(f).Decode(&ix); err != nil {
		return nil, err
	}
	return &ix, nil
}

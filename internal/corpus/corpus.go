// Copyright 2024 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads test corpora and provides their contents as bit
// sequences.
package corpus

import (
	"io/fs"
	"sort"

	"github.com/ulikunitz/ctw"
)

// File is a single file of a corpus.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus. The files are sorted by name.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, err
}

// Size returns the total number of bytes in the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Bits returns the first n bits of the file. If n is not positive or larger
// than the file, all bits are returned.
func (f *File) Bits(n int) []byte {
	p := f.Data
	if n > 0 && (n+7)/8 < len(p) {
		p = p[:(n+7)/8]
	}
	seq := ctw.Bits(p)
	if n > 0 && len(seq) > n {
		seq = seq[:n]
	}
	return seq
}

// Bits returns the first n bits of every file. Files with less than n bits
// are skipped, so all returned sequences have the same length.
func Bits(files []File, n int) (names []string, seqs [][]byte) {
	for i := range files {
		f := &files[i]
		if 8*len(f.Data) < n {
			continue
		}
		names = append(names, f.Name)
		seqs = append(seqs, f.Bits(n))
	}
	return names, seqs
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - a relative path is taken from directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make an absolute directory, creating it if missing
func EnsureDirectory(base string, directory *string) error {
	*directory = EnsureAbsolute(base, *directory)
	return os.MkdirAll(*directory, 0700)
}

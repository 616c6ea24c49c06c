// SPDX-License-Identifier: Apache-2.0

package config

import "os"

// FileReader is the collaborator that parses the contents of one
// configuration file. The resolver only supplies the path and the tolerance
// flag; syntax and key recognition live behind this interface.
//
// A missing file must be reported with an error wrapping [io/fs.ErrNotExist]
// so the resolver can skip it silently. In tolerant mode the reader skips
// invalid lines itself (warning as it goes) and returns the settings it
// could parse; otherwise any invalid line is an error.
type FileReader interface {
	ReadFile(path string, tolerant bool) (*Settings, error)
}

// BindingsLoader is the collaborator that loads the key-bindings file from
// an already-resolved path. Implementations must leave a usable default
// binding set in place when loading fails.
type BindingsLoader interface {
	Load(path string) error
}

// DirCreator is the collaborator invoked to create required application
// directories during bootstrap.
type DirCreator interface {
	CreateDir(path string) error
}

// osDirCreator is the production DirCreator backed by the real filesystem.
type osDirCreator struct{}

func (osDirCreator) CreateDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

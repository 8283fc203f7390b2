// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sequencer

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"strconv"
)

// EnsureDirectory creates the directory at path (including parents) with the
// given mode if it is absent. The operation is idempotent: an existing
// directory is left untouched and reported as success.
//
// Returns [ErrNotADirectory] if path exists as a non-directory, or
// [ErrDirectoryPrepare] if creation fails.
func EnsureDirectory(path string, mode fs.FileMode) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return ErrNotADirectory
		}
		return nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, mode); err != nil {
			return errors.Join(ErrDirectoryPrepare, err)
		}
		return nil
	default:
		return errors.Join(ErrDirectoryPrepare, err)
	}
}

// ChangeOwnership resolves owner (and optionally group) by name and applies
// os.Chown to path. When group is empty the owner's primary group is used.
//
// Returns [ErrOwnershipChange] if name resolution or the chown itself fails.
func ChangeOwnership(path, owner, group string) error {
	u, err := user.Lookup(owner)
	if err != nil {
		return errors.Join(ErrOwnershipChange, err)
	}

	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return errors.Join(ErrOwnershipChange, err)
	}

	gidString := u.Gid
	if group != "" {
		g, err := user.LookupGroup(group)
		if err != nil {
			return errors.Join(ErrOwnershipChange, err)
		}
		gidString = g.Gid
	}

	gid, err := strconv.Atoi(gidString)
	if err != nil {
		return errors.Join(ErrOwnershipChange, err)
	}

	if err := os.Chown(path, uid, gid); err != nil {
		return errors.Join(ErrOwnershipChange, err)
	}

	return nil
}

// ApplyMode sets the permission bits of path to exactly mode. MkdirAll
// applies the umask on creation, so this is the step that guarantees the
// configured bits end up on the directory.
//
// Returns [ErrModeChange] if the chmod fails.
func ApplyMode(path string, mode fs.FileMode) error {
	if err := os.Chmod(path, mode); err != nil {
		return errors.Join(ErrModeChange, err)
	}

	return nil
}

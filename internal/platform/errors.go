// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"errors"
	"os"
	"strings"
	"syscall"
)

// Windows error codes seen when another process transiently holds a directory
// open (Explorer windows, indexers, antivirus scans).
const (
	errorAccessDenied     = syscall.Errno(5)
	errorSharingViolation = syscall.Errno(32)
	errorLockViolation    = syscall.Errno(33)
)

// IsTransientLockError reports whether an error belongs to the
// permission/lock class that is worth retrying: another process briefly holds
// the path and the operation usually succeeds once it lets go. Outright
// invalid names, missing paths, and structural permission problems are not in
// this class.
func IsTransientLockError(err error) bool {
	if err == nil {
		return false
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if IsWindows() {
			switch errno {
			case errorAccessDenied, errorSharingViolation, errorLockViolation:
				return true
			}
		}
		if errno == syscall.EBUSY || errno == syscall.ETXTBSY {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "access is denied") ||
		strings.Contains(msg, "sharing violation") ||
		strings.Contains(msg, "being used by another process") ||
		strings.Contains(msg, "resource busy")
}

// IsPermissionError reports whether an error is a permission failure of any
// kind, transient or not.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	return os.IsPermission(err) || strings.Contains(strings.ToLower(err.Error()), "permission denied")
}

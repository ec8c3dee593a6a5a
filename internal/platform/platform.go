// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package platform isolates the OS-specific pieces of the rename engine:
// classification of lock-class filesystem errors and sanitization of name
// components for the target filesystem.
package platform

import "runtime"

// IsWindows reports whether the engine is running on Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

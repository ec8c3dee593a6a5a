// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Wynn, Hannah", "Wynn, Hannah"},
		{`Wynn/Hannah`, "Wynn_Hannah"},
		{`a<b>c:d"e|f?g*h`, "a_b_c_d_e_f_g_h"},
		{"name...   ", "name"},
		{"", "_"},
		{"...", "_"},
		{"CON", "CON_"},
		{"nul.txt", "nul.txt_"},
		{"COM1", "COM1_"},
		{"CONSTANT", "CONSTANT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeComponent(tt.input), "input %q", tt.input)
	}
}

func TestIsTransientLockError(t *testing.T) {
	assert.False(t, IsTransientLockError(nil))
	assert.True(t, IsTransientLockError(syscall.EBUSY))
	assert.True(t, IsTransientLockError(fmt.Errorf("rename: %w", syscall.EBUSY)))
	assert.True(t, IsTransientLockError(errors.New("Access is denied.")))
	assert.True(t, IsTransientLockError(errors.New("the file is being used by another process")))
	assert.False(t, IsTransientLockError(errors.New("file name too long")))
	assert.False(t, IsTransientLockError(syscall.ENOENT))
}

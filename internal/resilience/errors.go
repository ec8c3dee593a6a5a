// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resilience provides bounded retry with error classification for the
// filesystem operations the engine performs. Only lock-class failures are
// worth retrying; everything else is reported immediately.
package resilience

import (
	"fmt"

	"folder-namer/internal/platform"
)

// ErrorType categorizes an error for handling strategy.
type ErrorType int

const (
	ErrorTypeUnknown   ErrorType = iota
	ErrorTypeTransient           // another process briefly holds the path
	ErrorTypePermanent           // invalid name, missing path, hard permission denial
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypePermanent:
		return "Permanent"
	default:
		return "Unknown"
	}
}

// ClassifiedError wraps an error with type information.
type ClassifiedError struct {
	Original  error
	Type      ErrorType
	Message   string
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

// IsRetryable returns whether this error should be retried.
func (e *ClassifiedError) IsRetryable() bool {
	return e.Retryable
}

// NewTransientError creates a retryable classified error.
func NewTransientError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypeTransient, Message: message, Retryable: true}
}

// NewPermanentError creates a non-retryable classified error.
func NewPermanentError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypePermanent, Message: message, Retryable: false}
}

// ClassifyError categorizes a filesystem error. Lock-class failures (sharing
// violations, transient access denials, busy paths) are transient; any other
// OS-level failure is permanent and reported without retry.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}
	if classified, ok := err.(*ClassifiedError); ok {
		return classified
	}
	if platform.IsTransientLockError(err) {
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeTransient,
			Message:   fmt.Sprintf("path locked: %v", err),
			Retryable: true,
		}
	}
	return &ClassifiedError{Original: err, Type: ErrorTypePermanent, Retryable: false}
}

// IsRetryable reports whether an error should be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).IsRetryable()
}

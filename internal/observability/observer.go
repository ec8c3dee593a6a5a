// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides structured operation logging for the engine.
// Components record operations and timings; output is JSON on the configured
// writer and only emitted in debug mode, so normal runs stay quiet.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// StandardObserver implements observability for all components.
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
}

// NewStandardObserver creates an observer. A nil writer silences output
// regardless of level.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{level: level, writer: writer}
}

// StandardObservabilityData is the record shape for all components.
type StandardObservabilityData struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	FolderPath string         `json:"folder_path,omitempty"`
	FilePath   string         `json:"file_path,omitempty"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StartTiming returns a function to complete timing for an operation.
func (o *StandardObserver) StartTiming(component, operation, path string) func(success bool, metadata map[string]any) {
	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.LogOperation(StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			FolderPath: path,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs one operation record.
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level < ObservabilityDebug || o.writer == nil {
		return
	}
	json.NewEncoder(o.writer).Encode(data)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// StandardObserver implements operation logging for all engine components.
type StandardObserver struct {
	level  Level
	writer io.Writer
}

// Level controls how much operation data is emitted.
type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// NewStandardObserver creates an observer. A nil writer defaults to stderr.
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	if writer == nil {
		writer = os.Stderr
	}
	return &StandardObserver{level: level, writer: writer}
}

// StartTiming returns a completion function that logs the operation with its
// duration once called.
func (o *StandardObserver) StartTiming(component, operation, recordID string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			RecordID:   recordID,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs operation data. Only debug level emits JSON lines.
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level == LevelOff {
		return
	}

	data.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if o.level == LevelDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData is the shared log record for all components.
type OperationData struct {
	Component   string                 `json:"component"`
	Operation   string                 `json:"operation"`
	Timestamp   string                 `json:"timestamp"`
	RecordID    string                 `json:"record_id,omitempty"`
	BatchID     string                 `json:"batch_id,omitempty"`
	DurationMs  int64                  `json:"duration_ms,omitempty"`
	Success     bool                   `json:"success"`
	Error       string                 `json:"error,omitempty"`
	RecordCount int                    `json:"record_count,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

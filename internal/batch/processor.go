// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batch runs name and address records through the engine with a
// bounded worker pool. Failures are isolated per record; one bad input
// never aborts its batch.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"datacleanse/internal/address"
	"datacleanse/internal/lookup"
	"datacleanse/internal/names"
	"datacleanse/internal/observability"
	"datacleanse/internal/postal"
)

// Processor coordinates batch runs over the resolver, the categorizer and
// the postal client.
type Processor struct {
	workers     int
	resolver    *names.Resolver
	categorizer *address.Categorizer
	postal      *postal.Client
	observer    *observability.StandardObserver
}

// NewProcessor creates a batch processor. The postal client may be nil
// when address validation is not needed.
func NewProcessor(workers int, tables *lookup.Tables, postalClient *postal.Client, observer *observability.StandardObserver) *Processor {
	if workers <= 0 {
		workers = 4
	}
	return &Processor{
		workers:     workers,
		resolver:    names.NewResolver(tables, observer),
		categorizer: address.NewCategorizer(observer),
		postal:      postalClient,
		observer:    observer,
	}
}

// Summary aggregates the outcome of one batch run.
type Summary struct {
	BatchID     string  `json:"batch_id"`
	Processed   int     `json:"processed"`
	Successful  int     `json:"successful"`
	Errors      int     `json:"errors"`
	DurationMs  int64   `json:"processing_time_ms"`
	SuccessRate float64 `json:"success_rate"`
	Timestamp   string  `json:"timestamp"`
}

// NameReport is the result of a name batch, resolutions in input order.
type NameReport struct {
	Summary     Summary            `json:"summary"`
	Resolutions []names.Resolution `json:"results"`
}

// AddressOutcome is one address record's categorization plus, when the
// record was eligible and validation was requested, the provider result.
type AddressOutcome struct {
	Categorization  address.Categorization `json:"categorization"`
	Validation      *postal.Result         `json:"validation,omitempty"`
	ValidationError string                 `json:"validation_error,omitempty"`
}

// AddressReport is the result of an address batch, outcomes in input order.
type AddressReport struct {
	Summary  Summary          `json:"summary"`
	Outcomes []AddressOutcome `json:"results"`
}

// ServiceStatus reports which engine capabilities are live.
type ServiceStatus struct {
	NameValidation       bool `json:"name_validation"`
	AddressValidation    bool `json:"address_validation"`
	DictionariesDegraded bool `json:"dictionaries_degraded"`
}

// Status reports engine availability. Name resolution always works, in
// degraded heuristic mode at worst; address validation needs credentials.
func (p *Processor) Status() ServiceStatus {
	return ServiceStatus{
		NameValidation:       true,
		AddressValidation:    p.postal.Configured(),
		DictionariesDegraded: p.resolver.Degraded(),
	}
}

// indexedJob pairs a record with its input position so results can be
// reassembled in order.
type indexedJob[T any] struct {
	index  int
	record T
}

// ProcessNames resolves a batch of name records across the worker pool.
func (p *Processor) ProcessNames(ctx context.Context, records []names.Record) *NameReport {
	batchID := uuid.NewString()
	start := time.Now()

	resolutions := make([]names.Resolution, len(records))
	fed := runPool(ctx, p.workers, records, func(job indexedJob[names.Record]) {
		resolutions[job.index] = p.resolver.Resolve(job.record)
	})
	for i := fed; i < len(records); i++ {
		resolutions[i] = names.Resolution{
			ID:          records[i].ID,
			FullName:    records[i].FullName,
			Method:      names.MethodError,
			Status:      names.StatusError,
			StatusLabel: names.LabelLowConfidence,
			Message:     "batch cancelled before record was processed",
		}
	}

	successful := 0
	for _, res := range resolutions {
		if res.Status != names.StatusError {
			successful++
		}
	}

	report := &NameReport{
		Summary:     p.summarize(batchID, len(records), successful, start),
		Resolutions: resolutions,
	}
	p.logBatch("process_names", batchID, report.Summary)
	return report
}

// ProcessAddresses categorizes a batch of address records and, when
// validate is set, checks deliverability of us_valid records against the
// postal provider. The shared client limiter paces the provider calls
// across all workers.
func (p *Processor) ProcessAddresses(ctx context.Context, records []address.Record, validate bool) *AddressReport {
	batchID := uuid.NewString()
	start := time.Now()

	callProvider := validate && p.postal.Configured()

	outcomes := make([]AddressOutcome, len(records))
	fed := runPool(ctx, p.workers, records, func(job indexedJob[address.Record]) {
		outcome := AddressOutcome{
			Categorization: p.categorizer.Categorize(job.record),
		}
		if callProvider && outcome.Categorization.Category == address.CategoryUSValid {
			// The provider expects the 2-letter code, not whatever free-text
			// state the record arrived with.
			record := job.record
			record.State = outcome.Categorization.NormalizedState
			result, err := p.postal.Validate(ctx, record)
			if err != nil {
				outcome.ValidationError = err.Error()
			} else {
				outcome.Validation = result
			}
		}
		outcomes[job.index] = outcome
	})
	for i := fed; i < len(records); i++ {
		outcomes[i] = AddressOutcome{
			Categorization:  address.Categorization{ID: records[i].ID},
			ValidationError: "batch cancelled before record was processed",
		}
	}

	successful := 0
	for _, out := range outcomes {
		if out.Categorization.Category != address.CategoryInvalid && out.ValidationError == "" {
			successful++
		}
	}

	report := &AddressReport{
		Summary:  p.summarize(batchID, len(records), successful, start),
		Outcomes: outcomes,
	}
	p.logBatch("process_addresses", batchID, report.Summary)
	return report
}

// runPool fans records out to a fixed set of workers and waits for all of
// them. Each worker writes only its own result slot, so no locking is
// needed around the results slice. Records are fed in input order; the
// returned count says how many were handed to workers before the context
// was cancelled, so callers can mark the remaining slots.
func runPool[T any](ctx context.Context, workers int, records []T, handle func(indexedJob[T])) int {
	jobs := make(chan indexedJob[T], workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				handle(job)
			}
		}()
	}

	fed := 0
	for i, rec := range records {
		select {
		case jobs <- indexedJob[T]{index: i, record: rec}:
			fed++
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return fed
		}
	}
	close(jobs)
	wg.Wait()
	return fed
}

func (p *Processor) summarize(batchID string, processed, successful int, start time.Time) Summary {
	summary := Summary{
		BatchID:    batchID,
		Processed:  processed,
		Successful: successful,
		Errors:     processed - successful,
		DurationMs: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if processed > 0 {
		summary.SuccessRate = float64(successful) / float64(processed) * 100
	}
	return summary
}

func (p *Processor) logBatch(operation, batchID string, summary Summary) {
	if p.observer == nil {
		return
	}
	p.observer.LogOperation(observability.OperationData{
		Component:   "batch",
		Operation:   operation,
		BatchID:     batchID,
		DurationMs:  summary.DurationMs,
		Success:     summary.Errors == 0,
		RecordCount: summary.Processed,
		Metadata: map[string]interface{}{
			"successful":   summary.Successful,
			"errors":       summary.Errors,
			"success_rate": summary.SuccessRate,
		},
	})
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batchio reads batch input files into record maps keyed by
// lowercased column headers.
package batchio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RecordSource iterates rows of a tabular input file. Next returns io.EOF
// after the last row.
type RecordSource interface {
	Headers() []string
	Next() (map[string]string, error)
	Close() error
}

// Open creates a record source for the file based on its extension.
func Open(path string) (RecordSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return openCSV(path)
	case ".xlsx":
		return openXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

// csvSource streams rows from a CSV file.
type csvSource struct {
	file    *os.File
	reader  *csv.Reader
	headers []string
}

func openCSV(path string) (*csvSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		file.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("input file %s is empty", path)
		}
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	return &csvSource{file: file, reader: reader, headers: normalizeHeaders(headers)}, nil
}

func (s *csvSource) Headers() []string { return s.headers }

func (s *csvSource) Next() (map[string]string, error) {
	row, err := s.reader.Read()
	if err != nil {
		return nil, err
	}
	return rowToRecord(s.headers, row), nil
}

func (s *csvSource) Close() error { return s.file.Close() }

// xlsxSource iterates pre-read rows of the first sheet of a workbook.
type xlsxSource struct {
	rows    [][]string
	headers []string
	pos     int
}

func openXLSX(path string) (*xlsxSource, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file %s is empty", path)
	}

	return &xlsxSource{rows: rows[1:], headers: normalizeHeaders(rows[0])}, nil
}

func (s *xlsxSource) Headers() []string { return s.headers }

func (s *xlsxSource) Next() (map[string]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return rowToRecord(s.headers, row), nil
}

func (s *xlsxSource) Close() error { return nil }

func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// rowToRecord tolerates short rows; missing trailing cells become empty
// strings.
func rowToRecord(headers, row []string) map[string]string {
	record := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(row) {
			record[h] = strings.TrimSpace(row[i])
		} else {
			record[h] = ""
		}
	}
	return record
}

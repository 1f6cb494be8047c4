package files

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// Schema is the subset of JSON Schema accepted by Extract:
// {type: array, items: {type: object, properties: {...}}}.
type Schema struct {
	Type  string      `json:"type"`
	Items *ItemSchema `json:"items,omitempty"`
}

type ItemSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
}

type PropertySchema struct {
	Type string `json:"type"`
}

// ExtractResult mirrors the integration contract: status "success" with
// output rows, or status "error" with details.
type ExtractResult struct {
	Status  string              `json:"status"`
	Output  []map[string]string `json:"output,omitempty"`
	Details string              `json:"details,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeHeader turns "Head Name" into "head_name".
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	return strings.Trim(nonWord.ReplaceAllString(h, "_"), "_")
}

// Extract reads a CSV blob and returns one object per row holding only the
// schema's properties. Unsupported input yields an error result, never a Go
// error.
func Extract(blob Blob, schema Schema) ExtractResult {
	if schema.Type != "array" || schema.Items == nil || schema.Items.Type != "object" || len(schema.Items.Properties) == 0 {
		return failed("json_schema must be an array of objects with properties")
	}
	if !isCSV(blob) {
		return failed(fmt.Sprintf("unsupported file type %q; only CSV is supported", blob.MIMEType))
	}

	r := csv.NewReader(bytes.NewReader(blob.Data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return failed("file is empty")
		}
		return failed(fmt.Sprintf("read header: %v", err))
	}

	columns := mapColumns(header, schema.Items.Properties)
	if len(columns) == 0 {
		return failed("no column matches the schema properties")
	}

	out := make([]map[string]string, 0)
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return failed(fmt.Sprintf("line %d: %v", line, err))
		}
		row := make(map[string]string, len(columns))
		empty := true
		for idx, prop := range columns {
			if idx >= len(record) {
				continue
			}
			v := strings.TrimSpace(record[idx])
			if v != "" {
				empty = false
			}
			row[prop] = v
		}
		if !empty {
			out = append(out, row)
		}
	}
	return ExtractResult{Status: StatusSuccess, Output: out}
}

// mapColumns maps CSV column indexes to schema properties. A header matches a
// property exactly after normalisation, or as the unique property that starts
// or ends with it ("state" matches "state_name", "email" matches "head_email").
func mapColumns(header []string, props map[string]PropertySchema) map[int]string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make(map[int]string)
	taken := make(map[string]bool)
	for i, h := range header {
		n := NormalizeHeader(h)
		if _, ok := props[n]; ok && !taken[n] {
			columns[i] = n
			taken[n] = true
		}
	}
	for i, h := range header {
		if _, done := columns[i]; done {
			continue
		}
		n := NormalizeHeader(h)
		if n == "" {
			continue
		}
		match := ""
		for _, name := range names {
			if taken[name] {
				continue
			}
			if strings.HasPrefix(name, n+"_") || strings.HasSuffix(name, "_"+n) {
				if match != "" {
					match = ""
					break
				}
				match = name
			}
		}
		if match != "" {
			columns[i] = match
			taken[match] = true
		}
	}
	return columns
}

func isCSV(blob Blob) bool {
	mt := strings.ToLower(blob.MIMEType)
	if strings.Contains(mt, "csv") || strings.HasSuffix(strings.ToLower(blob.FileName), ".csv") {
		return true
	}
	return strings.HasPrefix(mt, "text/plain") && bytes.ContainsRune(firstLine(blob.Data), ',')
}

func firstLine(data []byte) []byte {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return data[:i]
	}
	return data
}

func failed(details string) ExtractResult {
	return ExtractResult{Status: StatusError, Details: details}
}

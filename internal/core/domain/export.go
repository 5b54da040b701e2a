package domain

import (
	"fmt"
	"time"
)

// ExportFormat selects the export representation.
type ExportFormat string

const (
	ExportFormatTabular  ExportFormat = "tabular"
	ExportFormatSnapshot ExportFormat = "snapshot"
)

// Extension returns the file extension for the format.
func (f ExportFormat) Extension() string {
	if f == ExportFormatSnapshot {
		return "png"
	}
	return "csv"
}

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportFormatSnapshot {
		return "image/png"
	}
	return "text/csv"
}

// ParseExportFormat validates a format; csv and png are accepted as aliases.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch s {
	case "", string(ExportFormatTabular), "csv":
		return ExportFormatTabular, true
	case string(ExportFormatSnapshot), "png":
		return ExportFormatSnapshot, true
	}
	return "", false
}

// ExportPayload is the rendered output handed to an export sink.
type ExportPayload struct {
	Format      ExportFormat `json:"format"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type"`
	Data        []byte       `json:"-"`
	Rows        int          `json:"rows"`
}

// ExportFilename builds "{prefix}_{YYYY-MM-DD}.{csv|png}".
func ExportFilename(prefix string, format ExportFormat, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, at.Format("2006-01-02"), format.Extension())
}

// ExportResult is returned once a payload has been handed to the export sink.
type ExportResult struct {
	Payload  ExportPayload `json:"payload"`
	Location string        `json:"location"`
}

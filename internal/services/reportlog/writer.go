package reportlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Writer appends processed reports to the report log.
type Writer interface {
	// Append adds one (transcript, translated text) row to the log.
	Append(transcript, translatedText string) error
}

// header is the fixed two-column header, written once per log file.
var header = []string{"Transcription", "Translated Text"}

// CSVWriter appends report rows to a UTF-8 CSV file. The header row is
// written on the first write to a new or empty file; after that rows are
// only ever appended, never rewritten or reordered. Appends are
// serialized within this process; coordination across processes is left
// to the deployment.
type CSVWriter struct {
	path string
	mu   sync.Mutex
}

// NewCSVWriter creates a writer for the log file at path. The file is
// not created until the first append.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the log file location
func (w *CSVWriter) Path() string {
	return w.path
}

// Append adds one row to the log, creating the file and header first if
// needed
func (w *CSVWriter) Append(transcript, translatedText string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report log directory: %w", err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat report log: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write report log header: %w", err)
		}
	}
	if err := cw.Write([]string{transcript, translatedText}); err != nil {
		return fmt.Errorf("failed to write report log row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush report log: %w", err)
	}

	return nil
}

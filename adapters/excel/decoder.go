package excel

import (
	"bytes"
	"fmt"
	"log"

	"fieldops/domain/ingest"

	"github.com/xuri/excelize/v2"
)

// UploadDecoder turns an uploaded buffer into the raw ingest grid. Excel
// workbooks (detected by the zip magic) are read through excelize; anything
// else is treated as delimited UTF-8 text.
type UploadDecoder struct{}

// NewUploadDecoder creates a new upload decoder
func NewUploadDecoder() *UploadDecoder {
	return &UploadDecoder{}
}

// Decode produces a RawGrid from the uploaded bytes. Text uploads cannot
// fail; a workbook that excelize cannot open is reported to the caller.
func (d *UploadDecoder) Decode(data []byte) (ingest.RawGrid, error) {
	if isWorkbook(data) {
		return d.decodeWorkbook(data)
	}
	return ingest.Decode(data), nil
}

// isWorkbook sniffs the xlsx zip container magic
func isWorkbook(data []byte) bool {
	return len(data) >= 4 && data[0] == 'P' && data[1] == 'K' && data[2] == 0x03 && data[3] == 0x04
}

// decodeWorkbook reads the first sheet of an xlsx workbook into the grid
func (d *UploadDecoder) decodeWorkbook(data []byte) (ingest.RawGrid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ingest.RawGrid{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	log.Printf("[UploadDecoder] Workbook sheet %q read (%d rows)", sheets[0], len(rows))
	return ingest.RawGrid(rows), nil
}

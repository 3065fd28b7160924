// Package importer turns an uploaded spreadsheet into transactions: it parses
// the file, maps its columns onto transaction fields, validates every row
// against the user's categories and wallets and submits the valid rows one by
// one to the backend.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one data record keyed by the file's own header names.
type Row map[string]string

// File is the parsed content of an upload. It is never modified after parsing.
type File struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	Rows    []Row    `json:"-"`
}

// HasHeader reports whether header is one of the file's columns.
func (f *File) HasHeader(header string) bool {
	for _, h := range f.Headers {
		if h == header {
			return true
		}
	}
	return false
}

// ParseError aborts a parse attempt. Line is 0 when the failure is not tied to a line.
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrParse}
	}
	return []error{domain.ErrParse, e.Err}
}

// ParseFile picks the parser from the file extension.
func ParseFile(name string, r io.Reader) (*File, error) {
	var (
		file *File
		err  error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		file, err = ParseXLSX(r)
	case ".csv", ".txt", "":
		file, err = ParseCSV(r)
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("unsupported file type %q", filepath.Ext(name))}
	}
	if err != nil {
		return nil, err
	}

	file.Name = name
	return file, nil
}

// ParseCSV reads a header row followed by data rows. Values stay as strings;
// the first malformed line rejects the whole file.
func ParseCSV(r io.Reader) (*File, error) {
	reader := gocsv.DefaultCSVReader(skipBOM(r))

	var records [][]string
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Line: errorLine(err, line), Reason: errorReason(err), Err: err}
		}
		records = append(records, append([]string(nil), record...))
	}

	return buildFile(records)
}

// ParseXLSX reads the first worksheet of a workbook with the same rules as ParseCSV.
func ParseXLSX(r io.Reader) (*File, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Reason: "unreadable workbook", Err: err}
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Reason: "workbook has no sheets"}
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("failed to read sheet %s", sheets[0]), Err: err}
	}

	return buildFile(records)
}

func buildFile(records [][]string) (*File, error) {
	start := 0
	for start < len(records) && blankRecord(records[start]) {
		start++
	}
	if start == len(records) {
		return nil, &ParseError{Reason: "file has no header row"}
	}

	rawHeaders := records[start]
	columns := make([]int, 0, len(rawHeaders))
	headers := make([]string, 0, len(rawHeaders))
	seen := make(map[string]bool, len(rawHeaders))
	for i, h := range rawHeaders {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if seen[h] {
			return nil, &ParseError{Line: start + 1, Reason: fmt.Sprintf("duplicate header %q", h)}
		}
		seen[h] = true
		columns = append(columns, i)
		headers = append(headers, h)
	}
	if len(headers) == 0 {
		return nil, &ParseError{Line: start + 1, Reason: "file has no header row"}
	}

	rows := make([]Row, 0, len(records)-start-1)
	for _, record := range records[start+1:] {
		if blankRecord(record) {
			continue
		}
		row := make(Row, len(headers))
		for i, col := range columns {
			value := ""
			if col < len(record) {
				value = strings.TrimSpace(record[col])
			}
			row[headers[i]] = value
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &ParseError{Reason: "file has no data rows"}
	}

	return &File{Headers: headers, Rows: rows}, nil
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func errorLine(err error, fallback int) int {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		return parseErr.Line
	}
	return fallback
}

func errorReason(err error) string {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Err.Error()
	}
	return err.Error()
}

package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// lenientReader feeds gocsv with only the well-formed records of a file.
// Records with bad quoting or a field count different from the header are
// dropped and counted instead of failing the whole file.
type lenientReader struct {
	r       *csv.Reader
	dropped int
}

func newLenientReader(in io.Reader) *lenientReader {
	br := bufio.NewReader(in)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return &lenientReader{r: r}
}

func (l *lenientReader) Read() ([]string, error) {
	return l.r.Read()
}

func (l *lenientReader) ReadAll() ([][]string, error) {
	header, err := l.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := [][]string{header}
	for {
		record, err := l.r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			l.dropped++
			continue
		}
		if err != nil {
			return nil, err
		}

		if len(record) != len(header) {
			l.dropped++
			continue
		}
		records = append(records, record)
	}
}

// decodeRows maps every well-formed record of a CSV file onto T by header
// name. It also returns how many records were dropped as malformed.
func decodeRows[T any](in io.Reader) ([]*T, int, error) {
	reader := newLenientReader(in)

	rows := []*T{}
	err := gocsv.UnmarshalCSV(reader, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil, reader.dropped, nil
	}
	if err != nil {
		return nil, reader.dropped, err
	}
	return rows, reader.dropped, nil
}

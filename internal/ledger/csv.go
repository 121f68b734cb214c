package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var csvHeader = []string{"word", "correct", "wrong"}

// CSVRepo stores the ledger as a flat file with a word,correct,wrong header.
type CSVRepo struct {
	path string
}

// NewCSVRepo returns a repo backed by the file at path.
func NewCSVRepo(path string) *CSVRepo {
	return &CSVRepo{path: path}
}

// Path returns the backing file path.
func (r *CSVRepo) Path() string { return r.path }

// Load reads the whole file. A missing file is an empty ledger.
func (r *CSVRepo) Load(ctx context.Context) (*Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return FromRecords(rows), nil
}

// Save rewrites the file in full. The new content is written to a temporary
// file in the same directory and renamed over the old one.
func (r *CSVRepo) Save(ctx context.Context, l *Ledger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeRows(tmp, l.Rows()); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}

func readRows(rd io.Reader) ([]Record, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Record
	line := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		line++
		if line == 1 && isHeader(fields) {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrCorrupt, line, len(fields))
		}
		word := strings.TrimSpace(fields[0])
		if word == "" {
			return nil, fmt.Errorf("%w: line %d has an empty word", ErrCorrupt, line)
		}
		correct, err := parseCount(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, line, err)
		}
		wrong, err := parseCount(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, line, err)
		}
		rows = append(rows, Record{Word: word, Correct: correct, Wrong: wrong})
	}
	return rows, nil
}

func writeRows(w io.Writer, rows []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.Word, strconv.Itoa(r.Correct), strconv.Itoa(r.Wrong)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func isHeader(fields []string) bool {
	if len(fields) != len(csvHeader) {
		return false
	}
	for i, f := range fields {
		if !strings.EqualFold(strings.TrimSpace(f), csvHeader[i]) {
			return false
		}
	}
	return true
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

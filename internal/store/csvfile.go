package store

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// rawRow is one data row as read from disk. err is set when the line is
// not valid delimited text; n is the 1-based data row number.
type rawRow struct {
	n     int
	cells []string
	err   error
}

// readRows reads a delimited file and returns its header and data rows.
// A missing or empty file yields no header and no rows.
func readRows(path string, delim rune) ([]string, []rawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = delim
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	header = cleanHeader(header)

	var rows []rawRow
	for n := 1; ; n++ {
		cells, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				// The reader has consumed the bad line; keep going.
				rows = append(rows, rawRow{n: n, err: perr})
				continue
			}
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, rawRow{n: n, cells: cells})
	}
	return header, rows, nil
}

// cleanHeader strips a UTF-8 byte order mark and surrounding spaces.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

// writeRows atomically replaces path with header and rows using the
// temp-file, fsync, rename pattern. Readers see either the old or the new
// file, never a partial one.
func writeRows(path string, delim rune, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := csv.NewWriter(tmp)
	w.Comma = delim
	if err := w.Write(header); err != nil {
		return fail("writing header", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fail("writing rows", err)
	}
	if err := tmp.Chmod(fileMode(path)); err != nil {
		return fail("setting temp file mode", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// fileMode returns the permissions of the file at path, or 0644 when it
// does not exist yet. A rewrite keeps the mode of the file it replaces.
func fileMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// ErrHeaderMismatch is returned when an existing append-only file lacks
// columns the appended rows need.
var ErrHeaderMismatch = errors.New("existing header lacks required columns")

// appendRows appends rows to an append-only file. A new or empty file gets
// header first; an existing file keeps its own header order and rows are
// laid out to match it.
func appendRows(path string, delim rune, header []string, rows []map[string]string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = delim

	layout := header
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	} else {
		r := csv.NewReader(io.NewSectionReader(f, 0, info.Size()))
		r.Comma = delim
		r.FieldsPerRecord = -1
		existing, err := r.Read()
		if err != nil {
			return fmt.Errorf("reading header of %s: %w", path, err)
		}
		existing = cleanHeader(existing)
		if missing := missingColumns(existing, header); len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrHeaderMismatch, strings.Join(missing, ", "))
		}
		layout = existing

		// A hand-edited file may lack the final newline.
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte{'\n'}); err != nil {
				return fmt.Errorf("terminating last line of %s: %w", path, err)
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(layout))
		for i, col := range layout {
			cells[i] = row[col]
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	return nil
}

func missingColumns(have, want []string) []string {
	set := make(map[string]bool, len(have))
	for _, h := range have {
		set[h] = true
	}
	var missing []string
	for _, w := range want {
		if !set[w] {
			missing = append(missing, w)
		}
	}
	return missing
}

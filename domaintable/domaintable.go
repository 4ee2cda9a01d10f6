// Package domaintable loads presence/absence tables: one row per protein,
// one column per domain family, each cell a 0/1 indicator.
//
//	ID,PF00001,PF00069
//	sp|P12345|,1,0
//	sp|Q67890|,1,1
//
// The first column identifies the row and is not counted. Every other column
// is summed into a per-family count, and the number of rows becomes the
// source total.
package domaintable

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/domainfisher"
	"github.com/carbocation/domainfisher/matches"
	"github.com/carbocation/pfx"
)

// sniffBytes is how much of the decompressed head is used to guess the
// delimiter.
const sniffBytes = 64 * 1024

// Load opens path (local, ~/, or gs://), decompresses it if needed, picks the
// delimiter, and parses it. client may be nil for local paths.
func Load(ctx context.Context, path string, client *storage.Client) (matches.Source, error) {
	rc, err := domainfisher.Open(ctx, path, client)
	if err != nil {
		return matches.Source{}, err
	}
	defer rc.Close()

	r, _, err := domainfisher.MaybeDecompress(rc)
	if err != nil {
		return matches.Source{}, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	fileBytes, err := io.ReadAll(r)
	if err != nil {
		return matches.Source{}, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	sample := fileBytes
	if len(sample) > sniffBytes {
		sample = sample[:sniffBytes]
	}

	src, err := Parse(bytes.NewReader(fileBytes), domainfisher.DelimiterFor(path, sample), filepath.Base(path))
	if err != nil {
		return src, fmt.Errorf("%s: %w", path, err)
	}

	return src, nil
}

// Parse reads a presence/absence table. Cells may be 0/1, true/false, or
// empty (0). Anything else is an error naming the row and column.
func Parse(r io.Reader, delim rune, name string) (matches.Source, error) {
	src := matches.Source{
		Name:   name,
		Counts: make(matches.Counts),
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return src, fmt.Errorf("no header row")
	} else if err != nil {
		return src, pfx.Err(err)
	}

	families := make([]string, len(header))
	seen := make(map[string]int)
	for col, family := range header {
		if col == 0 {
			continue
		}

		family = strings.TrimSpace(family)
		if prior, exists := seen[family]; exists {
			return src, fmt.Errorf("column %d repeats the header %q of column %d", col+1, family, prior+1)
		}
		seen[family] = col
		families[col] = family
		src.Counts[family] = 0
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return src, pfx.Err(err)
		}

		src.Total++

		for col := 1; col < len(rec) && col < len(families); col++ {
			v, err := parseIndicator(rec[col])
			if err != nil {
				return src, fmt.Errorf("row %d (%s), column %q: %w", row, rec[0], families[col], err)
			}
			src.Counts[families[col]] += v
		}
	}

	return src, nil
}

func parseIndicator(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}

	if v, err := strconv.Atoi(cell); err == nil {
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("%d is not a 0/1 indicator", v)
		}
		return v, nil
	}

	b, err := strconv.ParseBool(cell)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a count nor a boolean", cell)
	}
	if b {
		return 1, nil
	}

	return 0, nil
}

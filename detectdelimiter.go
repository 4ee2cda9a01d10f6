package domainfisher

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in a sample taken from the top of a CSV-like file.
func DetermineDelimiter(sample []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(sample), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// DelimiterFor trusts a .tsv or .csv extension (ignoring a compression
// suffix) and otherwise falls back to DetermineDelimiter on the sample.
func DelimiterFor(path string, sample []byte) rune {
	name := strings.ToLower(path)
	for _, suffix := range []string{".gz", ".bz2", ".xz", ".zip", ".z"} {
		name = strings.TrimSuffix(name, suffix)
	}

	switch filepath.Ext(name) {
	case ".tsv", ".tab":
		return '\t'
	case ".csv":
		return ','
	}

	return DetermineDelimiter(sample)
}

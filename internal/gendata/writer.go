package gendata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const outputFilePermission = 0o600

// Write renders a cell grid as UTF-16LE tab-separated text with a
// byte-order mark, the encoding the real export ships in.
func Write(w io.Writer, table [][]string) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	tw := transform.NewWriter(w, enc)

	cw := csv.NewWriter(tw)
	cw.Comma = '\t'
	if err := cw.WriteAll(table); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("flush encoder: %w", err)
	}
	return nil
}

// WriteFile writes the cell grid to path, creating or truncating it.
func WriteFile(path string, table [][]string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	return Write(f, table)
}

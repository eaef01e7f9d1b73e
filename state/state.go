// Package state reads and writes the identifier lists that persist
// between verification runs.
package state

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse returns all identifiers of r, one per line. Blank lines and
// lines starting with # are skipped, surrounding whitespace is removed.
func Parse(r io.Reader) ([]string, error) {
	var ids []string
	reader := bufio.NewScanner(r)
	for reader.Scan() {
		line := strings.TrimSpace(reader.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		ids = append(ids, line)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func ParseFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ids, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return ids, nil
}

func Write(w io.Writer, ids []string) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := bw.WriteString(id + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile overwrites filename with ids.
func WriteFile(filename string, ids []string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, ids); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", filename)
	}
	return f.Close()
}

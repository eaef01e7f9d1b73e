// Package baseline generates and stores the reference transformations of
// all CRS codes of an engine.
package baseline

import (
	"encoding/json"
	"io"
	"os"

	"github.com/omniscale/crscheck/geom"
	"github.com/pkg/errors"
)

// Record contains the sample points of one CRS in the reference system
// and their transformation into the CRS. An empty Transformed list marks
// a CRS that could not be transformed during generation.
type Record struct {
	Identifier  string       `json:"identifier"`
	Source      []geom.Coord `json:"wgs84Coordinate"`
	Transformed []geom.Coord `json:"transformedCoordinate"`
	Domain      *geom.BBox   `json:"domainOfValidity,omitempty"`
}

func (r *Record) Available() bool {
	return len(r.Transformed) > 0
}

// Validate checks that every source point of an available record has
// exactly one transformed point.
func (r *Record) Validate() error {
	if r.Identifier == "" {
		return errors.New("record without identifier")
	}
	if r.Available() && len(r.Source) != len(r.Transformed) {
		return errors.Errorf("%s: %d source but %d transformed coordinates",
			r.Identifier, len(r.Source), len(r.Transformed))
	}
	return nil
}

func Read(r io.Reader) ([]Record, error) {
	var records []Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decoding baseline")
	}
	return records, nil
}

func ReadFile(filename string) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return records, nil
}

func Write(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteFile writes all records into a new file that replaces filename
// once complete.
func WriteFile(filename string, records []Record) error {
	tmp := filename + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := Write(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "writing %s", filename)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, filename)
}

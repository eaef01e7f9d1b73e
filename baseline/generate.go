package baseline

import (
	"fmt"
	"sort"

	"github.com/omniscale/crscheck/engine"
	"github.com/omniscale/crscheck/geom"
	"github.com/omniscale/crscheck/logging"
	"github.com/omniscale/crscheck/sample"
	"github.com/omniscale/crscheck/stats"
	"github.com/pkg/errors"
)

var log = logging.NewLogger("baseline")

// Result of the generation for a single code. Record is set if Err is nil
// or if the record was kept as unavailable.
type Result struct {
	Code   string
	Record *Record
	Err    error
}

// Summary of a generation run.
type Summary struct {
	Codes     int
	Generated int
	// Skipped counts the failed codes by engine error kind.
	Skipped map[engine.Kind]int
	// OutsideDomain counts sample points that are not within the
	// domain of their CRS.
	OutsideDomain int
}

func (s Summary) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

func (s Summary) String() string {
	kinds := make([]engine.Kind, 0, len(s.Skipped))
	for k := range s.Skipped {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	str := fmt.Sprintf("%d codes, %d generated, %d skipped", s.Codes, s.Generated, s.SkippedTotal())
	for _, k := range kinds {
		str += fmt.Sprintf(", %s: %d", k, s.Skipped[k])
	}
	return str
}

type Generator struct {
	Engine engine.Engine
	// Reference is the code of the geographic system of all sample
	// points, EPSG:4326 by default.
	Reference string
	// IncludeUnavailable keeps failed codes as records without
	// transformed coordinates.
	IncludeUnavailable bool
}

func (g *Generator) reference() string {
	if g.Reference == "" {
		return "EPSG:4326"
	}
	return g.Reference
}

// Generate creates the records for all codes. Failing codes are logged
// and skipped, they never abort the generation.
func (g *Generator) Generate(codes []string) ([]Record, Summary, error) {
	summary := Summary{Codes: len(codes), Skipped: make(map[engine.Kind]int)}

	ref, err := g.Engine.ResolveCRS(g.reference())
	if err != nil {
		return nil, summary, errors.Wrap(err, "resolving reference system")
	}

	progress := stats.StatsReporter("generate", len(codes))
	records := make([]Record, 0, len(codes))
	for _, code := range codes {
		res := g.generate(ref, code)
		if res.Err != nil {
			kind := engine.KindOf(res.Err)
			summary.Skipped[kind]++
			log.Warnf("skipping %s (%s): %v", code, kind, res.Err)
			progress.AddSkipped(1)
			if g.IncludeUnavailable && res.Record != nil {
				records = append(records, *res.Record)
			}
			continue
		}
		summary.Generated++
		summary.OutsideDomain += outsideDomain(res.Record)
		progress.AddPassed(1)
		records = append(records, *res.Record)
	}
	progress.Stop()
	if summary.OutsideDomain > 0 {
		log.Debugf("%d sample points outside of their domain of validity", summary.OutsideDomain)
	}
	return records, summary, nil
}

// Record creates the record of a single code.
func (g *Generator) Record(code string) (*Record, error) {
	ref, err := g.Engine.ResolveCRS(g.reference())
	if err != nil {
		return nil, errors.Wrap(err, "resolving reference system")
	}
	res := g.generate(ref, code)
	return res.Record, res.Err
}

func (g *Generator) generate(ref engine.CRS, code string) Result {
	res := Result{Code: code}
	// unavailable record, replaced on success
	res.Record = &Record{Identifier: code, Transformed: []geom.Coord{}}

	crs, err := g.Engine.ResolveCRS(code)
	if err != nil {
		res.Err = err
		return res
	}
	op, err := g.Engine.FindOperation(ref, crs)
	if err != nil {
		res.Err = err
		return res
	}
	// the domain of the CRS itself, not of the operation
	bbox, err := g.Engine.BoundingBox(crs)
	if err != nil {
		res.Err = err
		return res
	}
	res.Record.Domain = &bbox

	points := sample.Grid(bbox)
	transformed := make([]geom.Coord, 0, len(points))
	for i, p := range points {
		t, err := op.Transform(p)
		if err != nil {
			res.Err = errors.Wrapf(err, "point %d %s", i, p)
			return res
		}
		transformed = append(transformed, t)
	}
	res.Record = &Record{
		Identifier:  code,
		Source:      points,
		Transformed: transformed,
		Domain:      &bbox,
	}
	return res
}

func outsideDomain(r *Record) int {
	if r.Domain == nil {
		return 0
	}
	n := 0
	for _, p := range r.Source {
		if !r.Domain.Contains(p[0], p[1]) {
			n++
		}
	}
	return n
}

package verify

import (
	"sort"

	"github.com/omniscale/crscheck/baseline"
	"github.com/omniscale/crscheck/stats"
)

// KnownFailing is the set of identifiers that are expected to fail.
type KnownFailing map[string]struct{}

func NewKnownFailing(ids []string) KnownFailing {
	k := make(KnownFailing, len(ids))
	for _, id := range ids {
		k[id] = struct{}{}
	}
	return k
}

func (k KnownFailing) Contains(id string) bool {
	_, ok := k[id]
	return ok
}

func (k KnownFailing) Sorted() []string {
	ids := make([]string, 0, len(k))
	for id := range k {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (k KnownFailing) copy() KnownFailing {
	c := make(KnownFailing, len(k))
	for id := range k {
		c[id] = struct{}{}
	}
	return c
}

// Report of a verification run.
type Report struct {
	Results []Result
	// Successful contains all passed identifiers in baseline order.
	Successful []string
	// Skipped contains identifiers of records without transformations.
	Skipped []string
	// Remaining contains the known failing identifiers that did not pass,
	// sorted.
	Remaining []string
}

func (r *Report) filter(o Outcome) []Result {
	var results []Result
	for _, res := range r.Results {
		if res.Outcome == o {
			results = append(results, res)
		}
	}
	return results
}

func (r *Report) Regressions() []Result  { return r.filter(Regression) }
func (r *Report) Acknowledged() []Result { return r.filter(Acknowledged) }

// Err returns a ConsistencyError if known failing identifiers remain.
// Regressions do not result in an error.
func (r *Report) Err() error {
	if len(r.Remaining) == 0 {
		return nil
	}
	return &ConsistencyError{Remaining: r.Remaining}
}

// Run verifies all available records. Identifiers that pass are removed
// from a copy of known, failures of identifiers in known are
// acknowledged and all other failures are regressions. known itself is
// not modified.
func (v *Verifier) Run(records []baseline.Record, known KnownFailing) *Report {
	remaining := known.copy()
	report := &Report{}

	progress := stats.StatsReporter("verify", len(records))
	for _, rec := range records {
		if !rec.Available() {
			log.Debugf("skipping %s without transformations", rec.Identifier)
			report.Skipped = append(report.Skipped, rec.Identifier)
			progress.AddSkipped(1)
			continue
		}
		res := v.Verify(rec)
		switch {
		case res.Passed():
			res.Outcome = Passed
			delete(remaining, rec.Identifier)
			report.Successful = append(report.Successful, rec.Identifier)
			progress.AddPassed(1)
		case remaining.Contains(rec.Identifier):
			res.Outcome = Acknowledged
			log.Printf("%s failed as known: %v", rec.Identifier, res.Err)
			progress.AddFailed(1)
		default:
			res.Outcome = Regression
			log.Errorf("%s failed (%s): %v", rec.Identifier, res.Kind, res.Err)
			progress.AddFailed(1)
		}
		report.Results = append(report.Results, res)
	}
	progress.Stop()
	report.Remaining = remaining.Sorted()
	return report
}

package main

import (
	"fmt"
	"os"

	"github.com/omniscale/crscheck/baseline"
	"github.com/omniscale/crscheck/config"
	"github.com/omniscale/crscheck/export"
	"github.com/omniscale/crscheck/state"
	"github.com/omniscale/crscheck/verify"
)

func generateBaseline(opts *config.Generate) int {
	e, err := openEngine(&opts.Base)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	defer e.Close()

	codes := opts.Codes
	if len(codes) == 0 {
		codes, err = e.Codes(opts.Authority)
		if err != nil {
			log.Errorf("listing codes: %v", err)
			return exitFailure
		}
	}

	g := baseline.Generator{
		Engine:             e,
		Reference:          opts.Reference,
		IncludeUnavailable: opts.IncludeUnavailable,
	}
	step := log.StartStep(fmt.Sprintf("Generating baseline for %d codes", len(codes)))
	records, summary, err := g.Generate(codes)
	log.StopStep(step)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	log.Printf("%s", summary)

	if err := baseline.WriteFile(opts.Baseline, records); err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	log.Printf("wrote %d records to %s", len(records), opts.Baseline)
	return exitOK
}

func runVerification(opts *config.Verify) int {
	records, err := baseline.ReadFile(opts.Baseline)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	var ids []string
	if _, err := os.Stat(opts.KnownFailing); err == nil {
		ids, err = state.ParseFile(opts.KnownFailing)
		if err != nil {
			log.Errorf("%v", err)
			return exitFailure
		}
	} else if !os.IsNotExist(err) {
		log.Errorf("%v", err)
		return exitFailure
	} else {
		log.Warnf("known failing file %s not found, expecting all records to pass", opts.KnownFailing)
	}

	e, err := openEngine(&opts.Base)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	defer e.Close()

	v := verify.Verifier{Engine: e, Reference: opts.Reference}
	step := log.StartStep(fmt.Sprintf("Verifying %d records", len(records)))
	report := v.Run(records, verify.NewKnownFailing(ids))
	log.StopStep(step)

	if err := state.WriteFile(opts.Successful, report.Successful); err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}

	regressions := report.Regressions()
	log.Printf("%d passed, %d acknowledged, %d regressions, %d skipped",
		len(report.Successful), len(report.Acknowledged()), len(regressions), len(report.Skipped))
	for _, r := range regressions {
		log.Errorf("regression %s (%s): %v", r.Identifier, r.Kind, r.Err)
	}

	if err := report.Err(); err != nil {
		log.Errorf("%v", err)
		return exitInconsistent
	}
	if opts.Strict && len(regressions) > 0 {
		return exitRegression
	}
	return exitOK
}

func listCodes(opts *config.Codes) int {
	e, err := openEngine(&opts.Base)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	defer e.Close()

	codes, err := e.Codes(opts.Authority)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	for _, code := range codes {
		c, err := e.ResolveCRS(code)
		if err != nil {
			log.Warnf("%v", err)
			continue
		}
		fmt.Printf("%s\t%s\n", c.Code(), c.Name())
	}
	return exitOK
}

func exportBaseline(opts *config.Export) int {
	records, err := baseline.ReadFile(opts.Baseline)
	if err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	if err := export.Export(opts.Connection, opts.Table, records); err != nil {
		log.Errorf("%v", err)
		return exitFailure
	}
	return exitOK
}

package main

import (
	"fmt"
	"os"

	"github.com/omniscale/crscheck"
	"github.com/omniscale/crscheck/config"
	"github.com/omniscale/crscheck/engine"
	_ "github.com/omniscale/crscheck/engine/epsg"
	"github.com/omniscale/crscheck/logging"
	"github.com/omniscale/crscheck/stats"
)

var log = logging.NewLogger("")

const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitInconsistent = 3
	exitRegression   = 4
)

func PrintCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Available commands:")
	fmt.Fprintln(os.Stderr, "\tgenerate-baseline")
	fmt.Fprintln(os.Stderr, "\trun-verification")
	fmt.Fprintln(os.Stderr, "\tcodes")
	fmt.Fprintln(os.Stderr, "\texport-baseline")
	fmt.Fprintln(os.Stderr, "\tversion")
}

func Main(usage func()) int {
	if len(os.Args) <= 1 {
		usage()
		return exitUsage
	}

	switch os.Args[1] {
	case "generate-baseline":
		opts, err := config.ParseGenerate(os.Args[2:])
		if err != nil {
			return optionsError(err)
		}
		start(&opts.Base)
		return generateBaseline(opts)
	case "run-verification":
		opts, err := config.ParseVerify(os.Args[2:])
		if err != nil {
			return optionsError(err)
		}
		start(&opts.Base)
		return runVerification(opts)
	case "codes":
		opts, err := config.ParseCodes(os.Args[2:])
		if err != nil {
			return optionsError(err)
		}
		start(&opts.Base)
		return listCodes(opts)
	case "export-baseline":
		opts, err := config.ParseExport(os.Args[2:])
		if err != nil {
			return optionsError(err)
		}
		start(&opts.Base)
		return exportBaseline(opts)
	case "version":
		fmt.Println(crscheck.Version)
		return exitOK
	default:
		usage()
		log.Errorf("invalid command: '%s'", os.Args[1])
		return exitUsage
	}
}

func start(opts *config.Base) {
	opts.Apply()
	if opts.Httpprofile != "" {
		stats.StartHttpPProf(opts.Httpprofile)
	}
	if opts.Memprofile != "" {
		dir, interval, _ := stats.ParseMemProfile(opts.Memprofile)
		go stats.MemProfiler(dir, interval)
	}
}

func optionsError(err error) int {
	if errs, ok := err.(*config.Errors); ok {
		errs.Report(os.Stderr)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitUsage
}

func openEngine(opts *config.Base) (engine.Engine, error) {
	return engine.Open(engine.Config{
		Type:     "epsg",
		Registry: opts.Registry,
		Store:    opts.Store,
		TempDir:  opts.TempDir,
	})
}

func main() {
	code := Main(PrintCmds)
	logging.Shutdown()
	os.Exit(code)
}

package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/omniscale/crscheck/logging"
	"github.com/omniscale/crscheck/stats"
)

// Config is the optional JSON configuration file. Options from the
// command line take precedence.
type Config struct {
	Registry     string   `json:"registry"`
	Store        string   `json:"store"`
	TempDir      string   `json:"tempdir"`
	Reference    string   `json:"reference"`
	Authority    string   `json:"authority"`
	Codes        []string `json:"codes"`
	Baseline     string   `json:"baseline"`
	KnownFailing string   `json:"knownfailing"`
	Successful   string   `json:"successful"`
	Connection   string   `json:"connection"`
	Table        string   `json:"table"`
	LogLevel     string   `json:"loglevel"`
}

const defaultReference = "EPSG:4326"
const defaultAuthority = "EPSG"
const defaultBaseline = "results.json"
const defaultKnownFailing = "knownfailing.txt"
const defaultSuccessful = "successful.txt"
const defaultTable = "crscheck_baseline"

const (
	storeBadger  = "badger"
	storeLevelDB = "leveldb"
)

type Base struct {
	ConfigFile  string
	Registry    string
	Store       string
	TempDir     string
	Reference   string
	Quiet       bool
	LogLevel    string
	Httpprofile string
	Memprofile  string
}

type Generate struct {
	Base
	Authority          string
	Codes              []string
	Baseline           string
	IncludeUnavailable bool
}

type Verify struct {
	Base
	Baseline     string
	KnownFailing string
	Successful   string
	Strict       bool
}

type Export struct {
	Base
	Baseline   string
	Connection string
	Table      string
}

type Codes struct {
	Base
	Authority string
}

type stringList struct {
	values *[]string
}

func (l stringList) String() string {
	if l.values == nil {
		return ""
	}
	return strings.Join(*l.values, ",")
}

func (l stringList) Set(s string) error {
	*l.values = nil
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l.values = append(*l.values, v)
		}
	}
	return nil
}

func addBaseFlags(opts *Base, flags *flag.FlagSet) {
	flags.StringVar(&opts.ConfigFile, "config", "", "config (json)")
	flags.StringVar(&opts.Registry, "registry", "", "additional CRS definitions (yaml)")
	flags.StringVar(&opts.Store, "store", storeBadger, "definition store (badger or leveldb)")
	flags.StringVar(&opts.TempDir, "tempdir", "", "directory for temporary files")
	flags.StringVar(&opts.Reference, "reference", defaultReference, "geographic reference CRS")
	flags.BoolVar(&opts.Quiet, "quiet", false, "quiet log output")
	flags.StringVar(&opts.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.Httpprofile, "httpprofile", "", "bind address for profile server")
	flags.StringVar(&opts.Memprofile, "memprofile", "", "dir name of mem profile output and interval (dir:interval)")
}

func (o *Base) updateFromConfig(conf *Config, set map[string]bool) {
	if !set["registry"] && conf.Registry != "" {
		o.Registry = conf.Registry
	}
	if !set["store"] && conf.Store != "" {
		o.Store = conf.Store
	}
	if !set["tempdir"] && conf.TempDir != "" {
		o.TempDir = conf.TempDir
	}
	if !set["reference"] && conf.Reference != "" {
		o.Reference = conf.Reference
	}
	if !set["loglevel"] && conf.LogLevel != "" {
		o.LogLevel = conf.LogLevel
	}
}

func (o *Base) check() []error {
	errs := []error{}
	if o.Store != storeBadger && o.Store != storeLevelDB {
		errs = append(errs, fmt.Errorf("unknown store %q", o.Store))
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if o.Reference == "" {
		errs = append(errs, errors.New("missing reference"))
	}
	if o.Memprofile != "" {
		if _, _, err := stats.ParseMemProfile(o.Memprofile); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Apply configures the logger.
func (o *Base) Apply() {
	level, _ := logging.ParseLevel(o.LogLevel)
	logging.SetLevel(level)
	logging.SetQuiet(o.Quiet)
}

// Errors of the options and config file. Usage is set if the flags
// should be printed.
type Errors struct {
	Errs  []error
	Usage bool
}

func (e *Errors) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "errors in config/options: " + strings.Join(msgs, "; ")
}

func (e *Errors) Report(w io.Writer) {
	fmt.Fprintln(w, "errors in config/options:")
	for _, err := range e.Errs {
		fmt.Fprintf(w, "\t%s\n", err)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s %s [args]\n\n", os.Args[0], name)
		flags.PrintDefaults()
	}
	return flags
}

// parse parses args and loads the config file. It returns the config and
// all flags that were set on the command line.
func parse(flags *flag.FlagSet, base *Base, args []string) (*Config, map[string]bool, error) {
	if err := flags.Parse(args); err != nil {
		return nil, nil, &Errors{Errs: []error{err}}
	}
	if flags.NArg() > 0 {
		return nil, nil, &Errors{Errs: []error{fmt.Errorf("unexpected arguments %v", flags.Args())}, Usage: true}
	}
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	conf := &Config{}
	if base.ConfigFile != "" {
		f, err := os.Open(base.ConfigFile)
		if err != nil {
			return nil, nil, &Errors{Errs: []error{err}}
		}
		defer f.Close()
		decoder := json.NewDecoder(f)
		if err := decoder.Decode(conf); err != nil {
			return nil, nil, &Errors{Errs: []error{fmt.Errorf("parsing %s: %v", base.ConfigFile, err)}}
		}
	}
	base.updateFromConfig(conf, set)
	return conf, set, nil
}

func checked(errs []error) error {
	if len(errs) != 0 {
		return &Errors{Errs: errs, Usage: true}
	}
	return nil
}

func ParseGenerate(args []string) (*Generate, error) {
	opts := &Generate{}
	flags := newFlagSet("generate-baseline")
	addBaseFlags(&opts.Base, flags)
	flags.StringVar(&opts.Authority, "authority", defaultAuthority, "authority of all codes")
	flags.Var(stringList{&opts.Codes}, "codes", "comma separated codes instead of all codes of the authority")
	flags.StringVar(&opts.Baseline, "baseline", defaultBaseline, "baseline file (json)")
	flags.BoolVar(&opts.IncludeUnavailable, "include-unavailable", false, "write records for codes that failed")

	conf, set, err := parse(flags, &opts.Base, args)
	if err != nil {
		return nil, err
	}
	if !set["authority"] && conf.Authority != "" {
		opts.Authority = conf.Authority
	}
	if !set["codes"] && len(conf.Codes) > 0 {
		opts.Codes = conf.Codes
	}
	if !set["baseline"] && conf.Baseline != "" {
		opts.Baseline = conf.Baseline
	}

	errs := opts.check()
	if opts.Baseline == "" {
		errs = append(errs, errors.New("missing baseline"))
	}
	return opts, checked(errs)
}

func ParseVerify(args []string) (*Verify, error) {
	opts := &Verify{}
	flags := newFlagSet("run-verification")
	addBaseFlags(&opts.Base, flags)
	flags.StringVar(&opts.Baseline, "baseline", defaultBaseline, "baseline file (json)")
	flags.StringVar(&opts.KnownFailing, "knownfailing", defaultKnownFailing, "identifiers that are known to fail")
	flags.StringVar(&opts.Successful, "successful", defaultSuccessful, "output file for passed identifiers")
	flags.BoolVar(&opts.Strict, "strict", false, "fail on regressions")

	conf, set, err := parse(flags, &opts.Base, args)
	if err != nil {
		return nil, err
	}
	if !set["baseline"] && conf.Baseline != "" {
		opts.Baseline = conf.Baseline
	}
	if !set["knownfailing"] && conf.KnownFailing != "" {
		opts.KnownFailing = conf.KnownFailing
	}
	if !set["successful"] && conf.Successful != "" {
		opts.Successful = conf.Successful
	}

	errs := opts.check()
	if opts.Baseline == "" {
		errs = append(errs, errors.New("missing baseline"))
	}
	if opts.Successful == "" {
		errs = append(errs, errors.New("missing successful"))
	}
	return opts, checked(errs)
}

func ParseExport(args []string) (*Export, error) {
	opts := &Export{}
	flags := newFlagSet("export-baseline")
	addBaseFlags(&opts.Base, flags)
	flags.StringVar(&opts.Baseline, "baseline", defaultBaseline, "baseline file (json)")
	flags.StringVar(&opts.Connection, "connection", "", "connection parameters (postgis://...)")
	flags.StringVar(&opts.Table, "table", defaultTable, "table name, optional with schema (schema.table)")

	conf, set, err := parse(flags, &opts.Base, args)
	if err != nil {
		return nil, err
	}
	if !set["baseline"] && conf.Baseline != "" {
		opts.Baseline = conf.Baseline
	}
	if !set["connection"] && conf.Connection != "" {
		opts.Connection = conf.Connection
	}
	if !set["table"] && conf.Table != "" {
		opts.Table = conf.Table
	}

	errs := opts.check()
	if opts.Connection == "" {
		errs = append(errs, errors.New("missing connection"))
	}
	return opts, checked(errs)
}

func ParseCodes(args []string) (*Codes, error) {
	opts := &Codes{}
	flags := newFlagSet("codes")
	addBaseFlags(&opts.Base, flags)
	flags.StringVar(&opts.Authority, "authority", defaultAuthority, "authority, empty for all codes")

	conf, set, err := parse(flags, &opts.Base, args)
	if err != nil {
		return nil, err
	}
	if !set["authority"] && conf.Authority != "" {
		opts.Authority = conf.Authority
	}
	return opts, checked(opts.check())
}

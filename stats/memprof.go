package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/omniscale/crscheck/logging"
	"github.com/pkg/errors"
)

const defaultMemProfileInterval = time.Minute

// ParseMemProfile parses dir[:interval]. The interval defaults to one
// minute.
func ParseMemProfile(s string) (string, time.Duration, error) {
	parts := strings.SplitN(s, string(os.PathListSeparator), 2)
	if parts[0] == "" {
		return "", 0, errors.Errorf("missing memprofile directory in %q", s)
	}
	if len(parts) < 2 {
		return parts[0], defaultMemProfileInterval, nil
	}
	interval, err := time.ParseDuration(parts[1])
	if err != nil {
		return "", 0, errors.Wrapf(err, "memprofile interval %q", parts[1])
	}
	if interval <= 0 {
		return "", 0, errors.Errorf("memprofile interval %q not positive", parts[1])
	}
	return parts[0], interval, nil
}

// MemProfiler writes a heap profile into dir at every interval. It runs
// until the process exits.
func MemProfiler(dir string, interval time.Duration) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		logging.Errorf("memprofile: %v", err)
		return
	}

	ticker := time.NewTicker(interval)
	i := 0
	for range ticker.C {
		if err := writeHeapProfile(filepath.Join(dir, fmt.Sprintf("memprof-%03d.pprof", i))); err != nil {
			logging.Errorf("memprofile: %v", err)
			ticker.Stop()
			return
		}
		i++
	}
}

func writeHeapProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := pprof.WriteHeapProfile(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package stats

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/omniscale/crscheck/logging"
)

// StartHttpPProf serves net/http/pprof on bind in the background.
func StartHttpPProf(bind string) {
	go func() {
		logging.Errorf("profile server: %v", http.ListenAndServe(bind, nil))
	}()
}

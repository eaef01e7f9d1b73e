package epsg

import (
	"strings"

	"github.com/omniscale/crscheck/engine"
	"github.com/pkg/errors"
)

// inputSteps convert latitude/longitude degrees (EPSG:4326 axis order)
// into longitude/latitude radians as expected by PROJ operations.
const inputSteps = "+step +proj=axisswap +order=2,1 +step +proj=unitconvert +xy_in=deg +xy_out=rad"

// PROJPipeline returns the PROJ pipeline that converts EPSG:4326 coordinates
// into coordinates of this definition, in its axis order and units.
// The inverse direction of the pipeline converts back.
func (d *Definition) PROJPipeline() (string, error) {
	if d.Pipeline != "" {
		return d.Pipeline, nil
	}
	if d.Proj == "" {
		return "", errors.Errorf("%s: no proj definition", d.Code)
	}

	steps := []string{"+proj=pipeline", inputSteps, "+step " + strings.TrimSpace(d.Proj)}

	unit, err := d.axisUnit(0)
	if err != nil {
		return "", err
	}
	if unit.IsAngular() {
		if unit.Abbrev != engine.Radian.Abbrev {
			steps = append(steps, "+step +proj=unitconvert +xy_in=rad +xy_out="+unit.Abbrev)
		}
	} else if unit != engine.Metre {
		steps = append(steps, "+step +proj=unitconvert +xy_in=m +xy_out="+unit.Abbrev)
	}
	if d.NorthFirst() {
		steps = append(steps, "+step +proj=axisswap +order=2,1")
	}
	return strings.Join(steps, " "), nil
}

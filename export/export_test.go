package export

import (
	"os"
	"strings"
	"testing"

	pq "github.com/lib/pq"
	"github.com/omniscale/crscheck/baseline"
	"github.com/omniscale/crscheck/geom"
)

func TestConnectionParams(t *testing.T) {
	os.Unsetenv("PGSSLMODE")
	for _, tc := range []struct {
		conn     string
		contains []string
		missing  []string
	}{
		{"postgis://user:pw@localhost/crs", []string{"host=localhost", "dbname=crs", "user=user", "sslmode=disable"}, nil},
		{"postgres://db.example.org/crs", []string{"host=db.example.org", "dbname=crs"}, []string{"sslmode"}},
		{"postgis://localhost/crs?sslmode=require", []string{"sslmode=require"}, []string{"sslmode=disable"}},
		{"host=127.0.0.1 dbname=crs", []string{"host=127.0.0.1 dbname=crs sslmode=disable"}, nil},
	} {
		params, err := ConnectionParams(tc.conn)
		if err != nil {
			t.Fatal(tc.conn, err)
		}
		for _, c := range tc.contains {
			if !strings.Contains(params, c) {
				t.Errorf("%s: missing %q in %q", tc.conn, c, params)
			}
		}
		for _, c := range tc.missing {
			if strings.Contains(params, c) {
				t.Errorf("%s: unexpected %q in %q", tc.conn, c, params)
			}
		}
	}
}

func TestSplitTable(t *testing.T) {
	for _, tc := range []struct {
		name, schema, table string
	}{
		{"baseline", "public", "baseline"},
		{"crs.baseline", "crs", "baseline"},
	} {
		schema, table := SplitTable(tc.name)
		if schema != tc.schema || table != tc.table {
			t.Errorf("%s: unexpected %s %s", tc.name, schema, table)
		}
	}
}

func TestDomainEWKT(t *testing.T) {
	if g := DomainEWKT(nil); g != nil {
		t.Errorf("expected nil, got %v", g)
	}
	g := DomainEWKT(&geom.BBox{West: -10, South: 40, East: 10, North: 50}).(string)
	if !strings.HasPrefix(g, "SRID=4326;POLYGON((") {
		t.Errorf("unexpected %s", g)
	}
	g = DomainEWKT(&geom.BBox{West: 170, South: -50, East: -170, North: -30}).(string)
	if !strings.HasPrefix(g, "SRID=4326;MULTIPOLYGON(((") {
		t.Errorf("unexpected %s", g)
	}
}

func TestRow(t *testing.T) {
	r := &baseline.Record{
		Identifier:  "EPSG:1",
		Source:      []geom.Coord{{1, 2}, {3, 4}},
		Transformed: []geom.Coord{{10, 20}, {30, 40}},
	}
	values := row(r)
	if len(values) != len(columns) {
		t.Fatalf("expected %d values, got %d", len(columns), len(values))
	}
	if values[0] != "EPSG:1" || values[1] != true || values[2] != 2 {
		t.Errorf("unexpected values %v", values)
	}
	src := values[3].(pq.Float64Array)
	if len(src) != 4 || src[2] != 3 || src[3] != 4 {
		t.Errorf("unexpected source %v", src)
	}
	if values[5] != nil {
		t.Errorf("unexpected domain %v", values[5])
	}
}

func TestCreateTableSQL(t *testing.T) {
	s := createTableSQL("crs", "baseline")
	if !strings.HasPrefix(s, `CREATE TABLE "crs"."baseline" (`) {
		t.Errorf("unexpected %s", s)
	}
	for _, c := range columns {
		if !strings.Contains(s, c+" ") {
			t.Errorf("missing column %s in %s", c, s)
		}
	}
}

// Package export writes a baseline into a PostGIS table for inspection.
package export

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	pq "github.com/lib/pq"
	"github.com/omniscale/crscheck/baseline"
	"github.com/omniscale/crscheck/geom"
	"github.com/omniscale/crscheck/logging"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

var log = logging.NewLogger("export")

type SQLError struct {
	query         string
	originalError error
}

func (e *SQLError) Error() string {
	return fmt.Sprintf("SQL Error: %s in query %s", e.originalError.Error(), e.query)
}

// ConnectionParams converts a postgis:// or postgres:// URL into
// connection parameters. Other values are returned as they are.
func ConnectionParams(conn string) (string, error) {
	if strings.HasPrefix(conn, "postgis://") {
		conn = strings.Replace(conn, "postgis", "postgres", 1)
	}
	params := conn
	if strings.HasPrefix(conn, "postgres://") || strings.HasPrefix(conn, "postgresql://") {
		var err error
		params, err = pq.ParseURL(conn)
		if err != nil {
			return "", err
		}
	}
	return disableDefaultSslOnLocalhost(params), nil
}

// disableDefaultSslOnLocalhost adds sslmode=disable to params
// when host is localhost/127.0.0.1 and the sslmode param and
// PGSSLMODE environment are both not set.
func disableDefaultSslOnLocalhost(params string) string {
	parts := strings.Fields(params)
	isLocalHost := false
	for _, p := range parts {
		if strings.HasPrefix(p, "sslmode=") {
			return params
		}
		if p == "host=localhost" || p == "host=127.0.0.1" {
			isLocalHost = true
		}
	}
	if !isLocalHost {
		return params
	}
	if _, ok := os.LookupEnv("PGSSLMODE"); ok {
		return params
	}
	return params + " sslmode=disable"
}

// SplitTable returns schema and table of schema.table, schema defaults to
// public.
func SplitTable(name string) (schema, table string) {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "public", name
}

func createTableSQL(schema, table string) string {
	return fmt.Sprintf(`CREATE TABLE "%s"."%s" (
    identifier TEXT NOT NULL,
    available BOOLEAN NOT NULL,
    points INTEGER NOT NULL,
    source DOUBLE PRECISION[],
    transformed DOUBLE PRECISION[],
    domain GEOMETRY(Geometry, 4326)
)`, schema, table)
}

var columns = []string{"identifier", "available", "points", "source", "transformed", "domain"}

// DomainEWKT returns the domain as EWKT polygon. Domains that cross the
// antimeridian are split into a multipolygon.
func DomainEWKT(b *geom.BBox) interface{} {
	if b == nil {
		return nil
	}
	var g orb.Geometry
	if b.CrossesAntimeridian() {
		g = orb.MultiPolygon{
			orb.Bound{Min: orb.Point{b.West, b.South}, Max: orb.Point{180, b.North}}.ToPolygon(),
			orb.Bound{Min: orb.Point{-180, b.South}, Max: orb.Point{b.East, b.North}}.ToPolygon(),
		}
	} else {
		g = orb.Bound{Min: orb.Point{b.West, b.South}, Max: orb.Point{b.East, b.North}}.ToPolygon()
	}
	return "SRID=4326;" + wkt.MarshalString(g)
}

func flatten(coords []geom.Coord) pq.Float64Array {
	values := make(pq.Float64Array, 0, len(coords)*2)
	for _, c := range coords {
		values = append(values, c[0], c[1])
	}
	return values
}

func row(r *baseline.Record) []interface{} {
	return []interface{}{
		r.Identifier,
		r.Available(),
		len(r.Source),
		flatten(r.Source),
		flatten(r.Transformed),
		DomainEWKT(r.Domain),
	}
}

func rollbackIfTx(tx **sql.Tx) {
	if *tx != nil {
		if err := (*tx).Rollback(); err != nil {
			log.Errorf("rollback failed: %v", err)
		}
	}
}

// Export replaces table (schema.table) with all records.
func Export(conn, table string, records []baseline.Record) error {
	params, err := ConnectionParams(conn)
	if err != nil {
		return err
	}
	db, err := sql.Open("postgres", params)
	if err != nil {
		return err
	}
	defer db.Close()

	schema, table := SplitTable(table)
	step := log.StartStep(fmt.Sprintf("Exporting %d records into %s.%s", len(records), schema, table))
	defer log.StopStep(step)

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer rollbackIfTx(&tx)

	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, schema),
		fmt.Sprintf(`DROP TABLE IF EXISTS "%s"."%s"`, schema, table),
		createTableSQL(schema, table),
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return &SQLError{s, err}
		}
	}

	copySQL := pq.CopyInSchema(schema, table, columns...)
	stmt, err := tx.Prepare(copySQL)
	if err != nil {
		return &SQLError{copySQL, err}
	}
	for i := range records {
		if _, err := stmt.Exec(row(&records[i])...); err != nil {
			stmt.Close()
			return &SQLError{copySQL, err}
		}
	}
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return &SQLError{copySQL, err}
	}
	if err := stmt.Close(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	tx = nil
	return nil
}

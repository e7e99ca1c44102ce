/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bendazz/stacking/dataset/sqldataset"
	"github.com/bendazz/stacking/feature"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	if name == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, name)
	}
	if name == "" || strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' is empty or contains invalid character '"'`, name)
	}
	return name, nil
}

func (a *adapter) ColumnType(f feature.Feature) (string, error) {
	switch f.(type) {
	case *feature.ContinuousFeature:
		return "DOUBLE PRECISION", nil
	case *feature.DiscreteFeature:
		return "TEXT", nil
	}
	return "", fmt.Errorf("do not know how to store features of type %T", f)
}

func (a *adapter) IDColumn() string {
	return `"id" SERIAL PRIMARY KEY`
}

func (a *adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (a *adapter) Close() error {
	return a.db.Close()
}

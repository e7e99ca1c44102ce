/*
Package sqldataset provides functions to store the rows of a dataset in a
table of an SQL database and to load them back, with the SQL dialect details
delegated to an Adapter.

Every feature is stored in a column named after it. Discrete features are
stored as text and continuous ones as floating point numbers. Rows are read
back in insertion order.
*/
package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/feature"
)

// MaxRowInsertionsPerStatement is the maximum number of rows added with a
// single insert command by Write. Adding more results in several commands.
const MaxRowInsertionsPerStatement = 10

/*
Adapter is an interface providing the dialect dependent parts of storing rows
in a database table.
*/
type Adapter interface {
	// DB returns the database the adapter works on
	DB() *sql.DB
	// ColumnName takes a feature or table name and returns the identifier
	// to use for it in statements, or an error if it cannot be used
	ColumnName(string) (string, error)
	// ColumnType takes a feature and returns the SQL type of its column
	ColumnType(feature.Feature) (string, error)
	// IDColumn returns the definition of the auto-incremented column
	// that keeps insertion order
	IDColumn() string
	// Placeholder takes the 1-based position of a statement parameter
	// and returns its placeholder
	Placeholder(int) string
	Close() error
}

func columns(a Adapter, features []feature.Feature) ([]string, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("no features to store")
	}
	result := make([]string, len(features))
	for i, f := range features {
		c, err := a.ColumnName(f.Name())
		if err != nil {
			return nil, err
		}
		result[i] = c
	}
	return result, nil
}

/*
CreateTable takes a context, an Adapter, a table name and a slice of features
and ensures the table for rows with those features exists.
*/
func CreateTable(ctx context.Context, a Adapter, table string, features []feature.Feature) error {
	t, err := a.ColumnName(table)
	if err != nil {
		return err
	}
	cols, err := columns(a, features)
	if err != nil {
		return err
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s"(`, t))
	for i, f := range features {
		ct, err := a.ColumnType(f)
		if err != nil {
			return err
		}
		createStmtBuf.WriteString(fmt.Sprintf(`"%s" %s NOT NULL, `, cols[i], ct))
	}
	createStmtBuf.WriteString(a.IDColumn())
	createStmtBuf.WriteString(")")
	_, err = a.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	return nil
}

/*
Write takes a context, an Adapter, a table name, a slice of features and a
slice of rows and inserts the rows in the table, creating it if needed. It
returns the number of rows inserted and an error if any insertion fails.
*/
func Write(ctx context.Context, a Adapter, table string, features []feature.Feature, rows []dataset.Row) (int, error) {
	err := CreateTable(ctx, a, table, features)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	t, _ := a.ColumnName(table)
	cols, _ := columns(a, features)
	insertStart := fmt.Sprintf(`INSERT INTO "%s" ("%s") VALUES `, t, strings.Join(cols, `", "`))
	for chunkStart := 0; chunkStart < len(rows); chunkStart += MaxRowInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRowInsertionsPerStatement
		if chunkEnd > len(rows) {
			chunkEnd = len(rows)
		}
		chunk := rows[chunkStart:chunkEnd]
		var insertStmtBuf bytes.Buffer
		insertStmtBuf.WriteString(insertStart)
		values := make([]interface{}, 0, len(chunk)*len(cols))
		for i, r := range chunk {
			if len(r) != len(features) {
				return chunkStart, fmt.Errorf("row %d has %d values for %d features", chunkStart+i, len(r), len(features))
			}
			if i > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString("(")
			for j, v := range r {
				if j > 0 {
					insertStmtBuf.WriteString(", ")
				}
				insertStmtBuf.WriteString(a.Placeholder(len(values) + 1))
				values = append(values, v)
			}
			insertStmtBuf.WriteString(")")
		}
		_, err = a.DB().ExecContext(ctx, insertStmtBuf.String(), values...)
		if err != nil {
			return chunkStart, fmt.Errorf("inserting rows %d to %d: %v", chunkStart, chunkEnd-1, err)
		}
	}
	return len(rows), nil
}

/*
Replace takes the same arguments as Write and stores the rows in a table that
holds only them: any previous table with that name is dropped first.
*/
func Replace(ctx context.Context, a Adapter, table string, features []feature.Feature, rows []dataset.Row) (int, error) {
	t, err := a.ColumnName(table)
	if err != nil {
		return 0, err
	}
	_, err = a.DB().ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, t))
	if err != nil {
		return 0, fmt.Errorf("dropping table %s: %v", table, err)
	}
	return Write(ctx, a, table, features, rows)
}

/*
ReadByRow takes a context, an Adapter, a table name, a slice of features and a
lambda function and calls the lambda with the index and value of every row in
the table, in insertion order. Reading stops when the lambda returns false or
an error; the error is returned.
*/
func ReadByRow(ctx context.Context, a Adapter, table string, features []feature.Feature, lambda func(int, dataset.Row) (bool, error)) error {
	t, err := a.ColumnName(table)
	if err != nil {
		return err
	}
	cols, err := columns(a, features)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`SELECT "%s" FROM "%s" ORDER BY "id"`, strings.Join(cols, `", "`), t)
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		targets := make([]interface{}, len(features))
		for j, f := range features {
			switch f.(type) {
			case *feature.ContinuousFeature:
				targets[j] = new(sql.NullFloat64)
			default:
				targets[j] = new(sql.NullString)
			}
		}
		err = rows.Scan(targets...)
		if err != nil {
			return fmt.Errorf("scanning row %d: %v", i, err)
		}
		r := make(dataset.Row, len(features))
		for j, target := range targets {
			switch target := target.(type) {
			case *sql.NullFloat64:
				if !target.Valid {
					return fmt.Errorf("row %d has no value for %s", i, features[j].Name())
				}
				r[j] = target.Float64
			case *sql.NullString:
				if !target.Valid {
					return fmt.Errorf("row %d has no value for %s", i, features[j].Name())
				}
				r[j] = target.String
			}
		}
		ok, err := lambda(i, r)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

/*
Read takes a context, an Adapter, a table name and a slice of features and
returns a dataset with every row in the table or an error.
*/
func Read(ctx context.Context, a Adapter, table string, features []feature.Feature) (*dataset.Dataset, error) {
	var rows []dataset.Row
	err := ReadByRow(ctx, a, table, features, func(_ int, r dataset.Row) (bool, error) {
		rows = append(rows, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(features, rows)
}

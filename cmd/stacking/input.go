package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/dataset/csv"
	"github.com/bendazz/stacking/dataset/mongodataset"
	"github.com/bendazz/stacking/dataset/sqldataset"
	"github.com/bendazz/stacking/dataset/sqldataset/pgadapter"
	"github.com/bendazz/stacking/dataset/sqldataset/sqlite3adapter"
	"github.com/bendazz/stacking/feature"
	"github.com/bendazz/stacking/feature/yaml"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

/*
inputConfig holds the flags that locate a dataset and its metadata
*/
type inputConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	table         string
}

func (ic *inputConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(ic.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with the dataset (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(ic.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features of the dataset (required)")
	cmd.PersistentFlags().StringVar(&(ic.table), "table", "rows", "name of the table or collection holding the dataset when reading from a database")
}

func (ic *inputConfig) Validate() error {
	if ic.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (ic *inputConfig) features() ([]feature.Feature, error) {
	ic.Logf("Reading features from metadata at %s...", ic.metadataInput)
	return yaml.ReadFeaturesFromFile(ic.metadataInput)
}

func (ic *inputConfig) dataset(ctx context.Context, features []feature.Feature) (*dataset.Dataset, error) {
	switch {
	case strings.HasPrefix(ic.dataInput, "postgresql://"):
		ic.Logf("Creating PostgreSQL adapter for url %s to read the dataset...", ic.dataInput)
		a, err := pgadapter.New(ic.dataInput)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.Read(ctx, a, ic.table, features)
	case strings.HasPrefix(ic.dataInput, "mongodb://"):
		ic.Logf("Connecting to MongoDB at %s to read the dataset...", ic.dataInput)
		session, err := mgo.Dial(ic.dataInput)
		if err != nil {
			return nil, fmt.Errorf("connecting to %s: %v", ic.dataInput, err)
		}
		defer session.Close()
		return mongodataset.Read(ctx, session, ic.table, features)
	case strings.HasSuffix(ic.dataInput, ".db"):
		ic.Logf("Creating SQLite3 adapter for file %s to read the dataset...", ic.dataInput)
		a, err := sqlite3adapter.New(ic.dataInput)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return sqldataset.Read(ctx, a, ic.table, features)
	case ic.dataInput == "":
		ic.Logf("Reading dataset from STDIN...")
		return csv.ReadDataset(os.Stdin, features)
	}
	ic.Logf("Opening %s to read the dataset...", ic.dataInput)
	return csv.ReadDatasetFromFilePath(ic.dataInput, features)
}

/*
store takes a context, a destination URL or path, a table name, features and
rows and replaces the contents of the table or collection of the destination
database with the rows.
*/
func store(ctx context.Context, dest, table string, features []feature.Feature, rows []dataset.Row) (int, error) {
	switch {
	case strings.HasPrefix(dest, "postgresql://"):
		a, err := pgadapter.New(dest)
		if err != nil {
			return 0, err
		}
		defer a.Close()
		return sqldataset.Replace(ctx, a, table, features, rows)
	case strings.HasPrefix(dest, "mongodb://"):
		session, err := mgo.Dial(dest)
		if err != nil {
			return 0, fmt.Errorf("connecting to %s: %v", dest, err)
		}
		defer session.Close()
		return mongodataset.Replace(ctx, session, table, features, rows)
	case strings.HasSuffix(dest, ".db"):
		a, err := sqlite3adapter.New(dest)
		if err != nil {
			return 0, err
		}
		defer a.Close()
		return sqldataset.Replace(ctx, a, table, features, rows)
	}
	return 0, fmt.Errorf("unknown store %s: expected a .db file or a postgresql:// or mongodb:// URL", dest)
}

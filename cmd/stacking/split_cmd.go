package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/dataset/csv"
	"github.com/bendazz/stacking/feature"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	inputConfig
	pipelineConfig
	outputDir string
	store     string
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Partition a dataset into train, test, t0 and t1 sets",
		Long:  `Partition a dataset the way the run command does and write every resulting subset as a CSV file, and optionally to tables or collections of a database`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			err = config.load(cmd.Flags().Changed)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			features, err := config.features()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			d, err := config.dataset(ctx, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			train, test, err := dataset.TrainTestSplit(d.Rows, config.TestRatio, dataset.NewRand(config.Seed))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			t0, t1 := dataset.SplitTrainSet(train)
			subsets := []struct {
				name string
				dataset.Subset
			}{{"train", train}, {"test", test}, {"t0", t0}, {"t1", t1}}
			for _, s := range subsets {
				path := filepath.Join(config.outputDir, s.name+".csv")
				config.Logf("Writing %d rows to %s...", s.Len(), path)
				err = writeCSV(path, features, s.Rows)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				if config.store != "" {
					config.Logf("Storing %d rows in %s of %s...", s.Len(), s.name, config.store)
					_, err = store(ctx, config.store, s.name, features, s.Rows)
					if err != nil {
						fmt.Fprintln(os.Stderr, err)
						os.Exit(7)
					}
				}
			}
		},
	}
	config.inputConfig.addFlags(cmd)
	config.pipelineConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.outputDir), "output", "o", ".", "directory where train.csv, test.csv, t0.csv and t1.csv are written")
	cmd.PersistentFlags().StringVar(&(config.store), "store", "", "SQLite3 (.db) file or PostgreSQL (postgresql://) or MongoDB (mongodb://) URL where the subsets are also stored, in tables or collections named after them")
	return cmd
}

func writeCSV(path string, features []feature.Feature, rows []dataset.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = csv.WriteRows(f, features, rows)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

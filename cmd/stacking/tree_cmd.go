package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bendazz/stacking"
	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/feature"
	"github.com/bendazz/stacking/tree"
	treejson "github.com/bendazz/stacking/tree/json"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	inputConfig
	pipelineConfig
	strategy string
	output   string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Train a single tree and test it on the held-out rows",
		Long:  `Hold out a part of a dataset, train a single tree with one of the fixed, tuple or greedy strategies on the rest and measure its accuracy on the held-out rows`,
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
			config.Logf("Training a %s tree on %d rows...", config.strategy, train.Len())
			t, err := config.train(train.Rows)
			if err != nil {
				fmt.Fprintf(os.Stderr, "training the tree: %v\n", err)
				os.Exit(6)
			}
			fmt.Print(t)
			if test.Len() > 0 {
				a, err := stacking.Evaluate(t, test.Rows)
				if err != nil {
					fmt.Fprintf(os.Stderr, "testing the tree: %v\n", err)
					os.Exit(7)
				}
				fmt.Printf("Accuracy on %d held-out rows: %v\n", test.Len(), a)
			}
			if config.output != "" {
				err = writeTree(config.output, t, features)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(8)
				}
			}
		},
	}
	config.inputConfig.addFlags(cmd)
	config.pipelineConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.strategy), "strategy", "s", "fixed", "tree induction strategy, the following are valid: fixed, tuple, greedy (depth -1 trains tuple and greedy trees to purity)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the trained tree will be written in JSON format")
	return cmd
}

func (tcc *treeCmdConfig) train(rows []dataset.Row) (*tree.Tree, error) {
	switch tcc.strategy {
	case "fixed":
		return stacking.TrainSimpleTree(rows, tcc.Feature, tcc.TreeDepth)
	case "tuple":
		return stacking.TrainTupleTreeOn(rows, tcc.Feature, tcc.TreeDepth)
	case "greedy":
		return stacking.TrainGreedyTree(rows, tcc.TreeDepth)
	}
	return nil, fmt.Errorf("unknown strategy %s", tcc.strategy)
}

func writeTree(outputPath string, t *tree.Tree, features []feature.Feature) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	err = treejson.WriteJSONTree(t, feature.Names(features), f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

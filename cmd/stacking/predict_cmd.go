package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bendazz/stacking"
	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/dataset/inputrow"
	"github.com/bendazz/stacking/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	inputConfig
	pipelineConfig
}

type stdoutFeatureValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{inputConfig{rootCmdConfig: rootConfig}, pipelineConfig{}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the label of a row answering questions",
		Long:  `Train a stack over a dataset and use it to predict the label of a row whose feature values are answered on STDIN`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.dataInput == "" {
				fmt.Fprintln(os.Stderr, "the dataset cannot be read from STDIN when predicting, set the input flag")
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
			result, err := stacking.RunPipeline(d.Rows, config.Config, dataset.NewRand(config.Seed))
			if err != nil {
				fmt.Fprintf(os.Stderr, "running pipeline: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Stack trained, accuracy on held-out rows %v", result.TestAccuracy)
			row, err := inputrow.Read(os.Stdin, features, stdoutFeatureValueRequester{})
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			s := result.Stack()
			predictions, err := s.Ensemble.Predictions(row)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			prediction, err := s.Predict(row)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(8)
			}
			fmt.Printf("Bagged trees predict %v\n", predictions)
			fmt.Printf("Stacked prediction is %v\n", prediction)
		},
	}
	config.inputConfig.addFlags(cmd)
	config.pipelineConfig.addFlags(cmd)
	return cmd
}

func (stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Printf("Please provide the row's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Printf("Please provide the row's %s:\n(valid values are real numbers)\n", f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

func (stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Printf("%v is not a valid value for the row's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Printf("%v is not a valid value for the row's %s. Please provide a real number.\n", value, f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bendazz/stacking"
	"github.com/bendazz/stacking/dataset"
	"github.com/bendazz/stacking/report"
	"github.com/bendazz/stacking/report/redispub"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

type runCmdConfig struct {
	inputConfig
	pipelineConfig
	output    string
	publish   bool
	redisAddr string
	redisDB   int
	channel   string
}

func runCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &runCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Bag and stack trees over a dataset",
		Long:  `Partition a dataset, bag trees on a half of the training rows, stack a tree on their predictions for the other half and evaluate the stack on the held-out rows`,
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
			config.Logf("Running pipeline over %d rows with %+v...", d.Len(), config.Config)
			result, err := stacking.RunPipeline(d.Rows, config.Config, dataset.NewRand(config.Seed))
			if err != nil {
				fmt.Fprintf(os.Stderr, "running pipeline: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			printSummary(result)
			r, err := report.New(result, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			if config.output != "" {
				err = writeReport(config.output, r)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(7)
				}
			}
			if config.publish {
				config.Logf("Publishing report on %s at redis %s...", config.channel, config.redisAddr)
				rc := redis.NewClient(&redis.Options{Addr: config.redisAddr, DB: config.redisDB})
				defer rc.Close()
				n, err := redispub.New(redispub.NewClient(rc), config.channel).Publish(ctx, r)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(8)
				}
				config.Logf("Report received by %d subscribers", n)
			}
		},
	}
	config.inputConfig.addFlags(cmd)
	config.pipelineConfig.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the JSON report of the run will be written")
	cmd.PersistentFlags().BoolVar(&(config.publish), "publish", false, "publish the JSON report of the run on a redis channel")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis-addr", "localhost:6379", "address of the redis server reports are published on")
	cmd.PersistentFlags().IntVar(&(config.redisDB), "redis-db", 0, "redis database to select")
	cmd.PersistentFlags().StringVar(&(config.channel), "channel", "stacking:reports", "redis channel reports are published on")
	return cmd
}

func printSummary(result *stacking.PipelineResult) {
	p := result.Partition
	fmt.Printf("Partition: %d training rows (T0 %d, T1 %d), %d held out\n", p.Train.Len(), p.T0.Len(), p.T1.Len(), p.Test.Len())
	for i, a := range result.BaseAccuracies {
		fmt.Printf("Bagged tree %d accuracy on T1: %v\n", i, a)
	}
	fmt.Printf("Stacked accuracy on T1: %v\n", result.StackedTrainAccuracy)
	if p.Test.Len() > 0 {
		fmt.Printf("Stacked accuracy on held-out rows: %v\n", result.TestAccuracy)
	}
	fmt.Printf("Stacked tree:\n%v", result.Meta)
}

func writeReport(outputPath string, r *report.Report) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	err = report.Write(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

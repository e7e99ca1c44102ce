package main

import (
	"fmt"
	"io/ioutil"

	"github.com/bendazz/stacking"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

/*
pipelineConfig holds the parameters shared by the commands that partition a
dataset and train on it. They can be set with flags or with a YML file given
with the config flag; flags set explicitly take precedence.
*/
type pipelineConfig struct {
	stacking.Config `yaml:",inline"`
	Seed            int64 `yaml:"seed"`
	configFile      string
}

func (pc *pipelineConfig) addFlags(cmd *cobra.Command) {
	d := stacking.DefaultConfig()
	cmd.PersistentFlags().StringVar(&(pc.configFile), "config", "", "path to a YML file with values for the test-ratio, trees, depth, feature and seed parameters")
	cmd.PersistentFlags().Float64Var(&(pc.TestRatio), "test-ratio", d.TestRatio, "fraction of the dataset held out for evaluation")
	cmd.PersistentFlags().IntVar(&(pc.NumTrees), "trees", d.NumTrees, "number of bagged trees")
	cmd.PersistentFlags().IntVar(&(pc.TreeDepth), "depth", d.TreeDepth, "maximum depth of the bagged trees")
	cmd.PersistentFlags().IntVar(&(pc.Feature), "feature", d.Feature, "index of the feature the bagged trees split on")
	cmd.PersistentFlags().Int64Var(&(pc.Seed), "seed", 0, "seed for the random partitioning and sampling (defaults to 0: seeded with the current time)")
}

/*
load reads the config file, if any, and overwrites with its values every
parameter whose flag was not changed according to the given function.
*/
func (pc *pipelineConfig) load(changed func(string) bool) error {
	if pc.configFile == "" {
		return nil
	}
	content, err := ioutil.ReadFile(pc.configFile)
	if err != nil {
		return fmt.Errorf("reading config file %s: %v", pc.configFile, err)
	}
	return pc.merge(content, changed)
}

func (pc *pipelineConfig) merge(content []byte, changed func(string) bool) error {
	fileConfig := &pipelineConfig{Config: pc.Config, Seed: pc.Seed}
	err := yaml.UnmarshalStrict(content, fileConfig)
	if err != nil {
		return fmt.Errorf("parsing config file %s: %v", pc.configFile, err)
	}
	if !changed("test-ratio") {
		pc.TestRatio = fileConfig.TestRatio
	}
	if !changed("trees") {
		pc.NumTrees = fileConfig.NumTrees
	}
	if !changed("depth") {
		pc.TreeDepth = fileConfig.TreeDepth
	}
	if !changed("feature") {
		pc.Feature = fileConfig.Feature
	}
	if !changed("seed") {
		pc.Seed = fileConfig.Seed
	}
	return nil
}

// Copyright 2015 Daniël de Kok
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/danieldk/go2vec/v3"
	"github.com/danieldk/go2vec/v3/internal/config"
	"github.com/danieldk/go2vec/v3/internal/explore"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var combineCmd = &cobra.Command{
	Use:   "combine [first [second]]...",
	Short: "List the nearest neighbors of two combined words",
	Long: `Combine the vectors of two words and list the words that are nearest
to the composite vector by cosine similarity. Missing words are read from
standard input. Several pairs can be given; the embeddings are loaded once.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 2 && len(args)%2 != 0 {
			return errors.Errorf("expected word pairs, got %d words", len(args))
		}
		return nil
	},
	RunE: runCombine,
}

func init() {
	addCombineFlags(combineCmd.Flags())
	rootCmd.AddCommand(combineCmd)
}

func addCombineFlags(flags *pflag.FlagSet) {
	flags.StringP("model", "m", "", "Embeddings file (default from config)")
	flags.String("method", "", "Combination method: add or average (default from config)")
	flags.IntP("topn", "n", 0, "Number of neighbors to list (default from config)")
	flags.Bool("normalize", false, "Normalize vectors to unit length before combining")
}

// applyCombineFlags overrides configuration values with the combine
// flags that were set on the command line.
func applyCombineFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	if flags.Changed("model") {
		cfg.Model.Path, _ = flags.GetString("model")
	}
	if flags.Changed("method") {
		cfg.Query.Method, _ = flags.GetString("method")
	}
	if flags.Changed("normalize") {
		cfg.Model.Normalize, _ = flags.GetBool("normalize")
	}

	n, err := topN(flags, cfg)
	if err != nil {
		return err
	}
	cfg.Query.TopN = n

	return nil
}

func runCombine(cmd *cobra.Command, args []string) error {
	if err := applyCombineFlags(cmd.Flags(), cfg); err != nil {
		return err
	}

	embeds := loadEmbeddings(cfg.Model.Path, cfg.Model.Normalize)

	explorer := &explore.Explorer{
		Table:    embeds,
		Prompter: explore.NewLinePrompter(os.Stdin, os.Stdout),
		Out:      os.Stdout,
		Logger:   logger,
		Method:   go2vec.Method(cfg.Query.Method),
		TopN:     cfg.Query.TopN,
	}

	return runPairs(explorer, args)
}

// runPairs runs the explorer on consecutive pairs of words. Fewer than
// two words are padded with empty words, which the explorer prompts for.
func runPairs(explorer *explore.Explorer, words []string) error {
	for len(words) < 2 {
		words = append(words, "")
	}

	for i := 0; i+1 < len(words); i += 2 {
		if err := explorer.Run(words[i], words[i+1]); err != nil {
			return err
		}
	}

	return nil
}

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
	"fmt"
	"os"
	"time"

	"github.com/danieldk/go2vec/v3"
	"github.com/danieldk/go2vec/v3/internal/config"
	"github.com/danieldk/go2vec/v3/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "go2vec",
	Short: "go2vec queries word2vec embeddings",
	Long: `go2vec loads word2vec embeddings and queries them: combining two
words into a composite vector and listing its nearest neighbors, finding
similar words, and answering analogy queries.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command and exits with a non-zero status on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addRootFlags(rootCmd.PersistentFlags())
}

func addRootFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "YAML configuration file")
	flags.BoolP("debug", "d", false, "Log at debug level in a human-readable format")
	flags.Bool("text", false, "Read embeddings in the text word2vec format")
}

func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	if path == "" {
		cfg = config.Default()
	} else {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	applyRootFlags(cmd.Flags(), cfg)

	var err error
	logger, err = logging.New(cfg.Debug)
	return err
}

// applyRootFlags overrides configuration values with the global flags
// that were set on the command line.
func applyRootFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("text") {
		text, _ := flags.GetBool("text")
		binary := !text
		cfg.Model.Binary = &binary
	}
}

// topN returns the --topn flag if it was set, the configured number of
// results otherwise.
func topN(flags *pflag.FlagSet, cfg *config.Config) (int, error) {
	n := cfg.Query.TopN
	if flags.Changed("topn") {
		n, _ = flags.GetInt("topn")
	}

	if n < 1 {
		return 0, errors.Errorf("number of results must be at least 1, was %d", n)
	}

	return n, nil
}

// loadEmbeddings reads the embeddings or terminates the process.
func loadEmbeddings(path string, normalize bool) *go2vec.Embeddings {
	start := time.Now()

	embeds, err := go2vec.ReadWord2VecFile(path, cfg.Model.BinaryOrDefault(), normalize)
	exitIfError("cannot load embeddings", err)

	logger.Info("loaded embeddings",
		zap.String("path", path),
		zap.Int("words", embeds.Size()),
		zap.Int("dims", embeds.VectorSize()),
		zap.Duration("took", time.Since(start)))

	return embeds
}

func exitIfError(msg string, err error) {
	if err != nil {
		logger.Fatal(msg, zap.Error(err))
	}
}

func printSimilarities(results []go2vec.WordSimilarity) {
	for _, wordSimilarity := range results {
		fmt.Println(wordSimilarity.Word, wordSimilarity.Similarity)
	}
}

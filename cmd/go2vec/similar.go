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
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var similarCmd = &cobra.Command{
	Use:     "similar vectors.bin",
	Aliases: []string{"distance"},
	Short:   "List the words most similar to words read from standard input",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := topN(cmd.Flags(), cfg)
		if err != nil {
			return err
		}

		embeds := loadEmbeddings(args[0], false)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			token := scanner.Text()
			results, err := embeds.Similarity(token, limit)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				continue
			}

			logger.Debug("similarity query", zap.String("word", token), zap.Int("results", len(results)))
			printSimilarities(results)
		}
		exitIfError("cannot read standard input", scanner.Err())
		return nil
	},
}

func init() {
	similarCmd.Flags().IntP("topn", "n", 0, "Number of similar words to list (default from config)")
	rootCmd.AddCommand(similarCmd)
}

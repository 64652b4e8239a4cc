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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analogyCmd = &cobra.Command{
	Use:   "analogy vectors.bin",
	Short: "Answer analogy queries read from standard input",
	Long: `Read lines of three words 'a b c' from standard input and list the
words that complete 'a is to b as c is to ?'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := topN(cmd.Flags(), cfg)
		if err != nil {
			return err
		}

		embeds := loadEmbeddings(args[0], true)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanLines)
		for scanner.Scan() {
			line := scanner.Text()

			parts := strings.Fields(line)
			if len(parts) != 3 {
				fmt.Fprintf(os.Stderr, "Skipping line that does not have three words: %s\n", line)
				continue
			}

			results, err := embeds.Analogy(parts[0], parts[1], parts[2], limit)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				continue
			}

			logger.Debug("analogy query", zap.Strings("words", parts), zap.Int("results", len(results)))
			printSimilarities(results)
		}
		exitIfError("cannot read standard input", scanner.Err())
		return nil
	},
}

func init() {
	analogyCmd.Flags().IntP("topn", "n", 0, "Number of answers to list (default from config)")
	rootCmd.AddCommand(analogyCmd)
}

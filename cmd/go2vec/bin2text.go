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
	"os"

	"github.com/danieldk/go2vec/v3"
	"github.com/spf13/cobra"
)

var bin2textCmd = &cobra.Command{
	Use:   "bin2text vectors.bin",
	Short: "Write binary embeddings to standard output in the text format",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		embeds := loadEmbeddings(args[0], false)

		w := bufio.NewWriter(os.Stdout)
		exitIfError("cannot write embeddings", go2vec.WriteWord2VecText(w, embeds))
	},
}

func init() {
	rootCmd.AddCommand(bin2textCmd)
}

// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

// abiguess guesses the function signature of raw Ethereum calldata. It
// reads a hex blob from its argument or from standard input and prints the
// synthetic guessed_<selector> fragment.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/karalabe/abiguess"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:          "abiguess [calldata]",
		Short:        "Guess the function signature of raw Ethereum calldata",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			blob := ""
			if len(args) == 1 {
				blob = args[0]
			} else {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				blob = string(raw)
			}
			blob = strings.TrimSpace(blob)
			if !strings.HasPrefix(blob, "0x") {
				blob = "0x" + blob
			}
			data, err := hexutil.Decode(blob)
			if err != nil {
				return err
			}
			if bare, _ := cmd.Flags().GetBool("data"); bare {
				types, err := abiguess.GuessData(data)
				if err != nil {
					return err
				}
				names := make([]string, len(types))
				for i, t := range types {
					names[i] = t.String()
				}
				fmt.Fprintln(cmd.OutOrStdout(), "("+strings.Join(names, ",")+")")
				return nil
			}
			frag, err := abiguess.GuessFragment(data)
			if err != nil {
				return err
			}
			logger.Debug("guessed calldata signature",
				zap.String("selector", fmt.Sprintf("%x", frag.Selector())),
				zap.Int("params", len(frag.Inputs())))

			fmt.Fprintln(cmd.OutOrStdout(), frag)
			return nil
		},
	}
	root.Flags().Bool("data", false, "treat the input as a bare ABI payload without selector")

	if err := root.Execute(); err != nil {
		logger.Error("failed to guess calldata", zap.Error(err))
		os.Exit(1)
	}
}

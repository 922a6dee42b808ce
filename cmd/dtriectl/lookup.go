package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtrie-go/dtrie"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newPrefixCmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <image> <key>",
		Short: "Exact-match a key against a trie image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args[0], args[1])
		},
	}
	return cmd
}

func runLookup(imagePath, key string) error {
	img, err := dtrie.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", imagePath, err)
	}
	defer img.Close()

	value, ok := img.ExactMatch([]byte(key))
	if jsonOut {
		return printJSON(map[string]any{"key": key, "found": ok, "value": value})
	}
	if !ok {
		printInfo("%q: not found\n", key)
		return nil
	}
	printInfo("%q: %d\n", key, value)
	return nil
}

func newPrefixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix <image> <probe>",
		Short: "List every stored key that is a prefix of probe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefix(args[0], args[1])
		},
	}
	return cmd
}

func runPrefix(imagePath, probe string) error {
	img, err := dtrie.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", imagePath, err)
	}
	defer img.Close()

	type hit struct {
		Value  uint32 `json:"value"`
		Length int    `json:"length"`
	}
	var hits []hit

	it := img.PrefixSearch([]byte(probe))
	for {
		value, length, ok := it.Next()
		if !ok {
			break
		}
		hits = append(hits, hit{value, length})
	}

	if jsonOut {
		return printJSON(hits)
	}
	if len(hits) == 0 {
		printInfo("%q: no prefix matches\n", probe)
		return nil
	}
	for _, h := range hits {
		printInfo("%s -> %d\n", probe[:h.Length], h.Value)
	}
	return nil
}

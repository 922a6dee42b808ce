package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/dtrie-go/dtrie"
	"github.com/dtrie-go/dtrie/internal/writer"
)

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <keys.tsv> <out.dtrie>",
		Short: "Build a trie image from a tab-separated key/value file",
		Long: `The build command reads key<TAB>value lines (value is a decimal
31-bit unsigned integer), NFC-normalizes each UTF-8 key so canonically
equivalent spellings collapse to one entry, sorts the entries, and writes
the resulting trie image atomically to the output path.

Example:
  dtriectl build keys.tsv keys.dtrie`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], args[1])
		},
	}
	return cmd
}

func runBuild(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer f.Close()

	entries, err := readEntries(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	printVerbose("Read %d entries\n", len(entries))

	sort.Slice(entries, func(i, j int) bool {
		return string(entries[i].Key) < string(entries[j].Key)
	})

	image, err := dtrie.Build(entries)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteImage(image); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	printInfo("Wrote %s (%d bytes, %d entries)\n", outputPath, len(image), len(entries))
	return nil
}

func readEntries(f *os.File) ([]dtrie.Entry, error) {
	var entries []dtrie.Entry
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, valueStr, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected <key>\\t<value>, got %q", lineNo, line)
		}
		value, err := strconv.ParseUint(valueStr, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value %q: %w", lineNo, valueStr, err)
		}
		normalized := norm.NFC.String(key)
		if seen[normalized] {
			return nil, fmt.Errorf("line %d: duplicate key %q after NFC normalization", lineNo, normalized)
		}
		seen[normalized] = true
		entries = append(entries, dtrie.Entry{Key: []byte(normalized), Value: uint32(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

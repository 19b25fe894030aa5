package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/llxisdsh/ordmap"
)

// document is a JSON object loaded in member order.
type document = ordmap.OrderedHashMap[string, json.RawMessage]

func loadDocument(cmd *cobra.Command, path string) (*document, error) {
	buckets, err := cmd.Flags().GetInt("buckets")
	if err != nil {
		return nil, err
	}
	if buckets < 1 {
		return nil, fmt.Errorf("invalid --buckets %d: must be at least 1", buckets)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := ordmap.New[string, json.RawMessage](ordmap.WithBucketCount(buckets))
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded document", "path", path, "size", humanize.Bytes(uint64(len(data))), "keys", doc.Size(), "buckets", buckets)
	return doc, nil
}

func KeysHandler(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	doc.RangeKeys(func(k string) bool {
		fmt.Fprintln(w, k)
		return true
	})
	return nil
}

func GetHandler(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	v, ok := doc.Get(args[1])
	if !ok {
		return fmt.Errorf("key %q not found", args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(v))
	return nil
}

func StatsHandler(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	stats := doc.Stats()
	renderStats(cmd.OutOrStdout(), stats)
	return nil
}

func renderStats(w io.Writer, stats *ordmap.MapStats) {
	var data [][]string
	for i, n := range stats.ChainLens {
		data = append(data, []string{strconv.Itoa(i), humanize.Comma(int64(n))})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"BUCKET", "CHAIN"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	fmt.Fprintf(w, "keys %s, empty buckets %d/%d, longest chain %d\n",
		humanize.Comma(int64(stats.Size)), stats.EmptyBuckets, stats.Buckets, stats.MaxChain)
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ordmap",
		Short:         "Inspect JSON objects through an insertion-ordered hash map",
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("buckets", 16, "Fixed number of hash buckets")

	keysCmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "Print the keys of a JSON object in document order",
		Args:  cobra.ExactArgs(1),
		RunE:  KeysHandler,
	}

	getCmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the raw JSON value stored under KEY",
		Args:  cobra.ExactArgs(2),
		RunE:  GetHandler,
	}

	statsCmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Show how the keys of a JSON object spread over the buckets",
		Args:  cobra.ExactArgs(1),
		RunE:  StatsHandler,
	}

	rootCmd.AddCommand(keysCmd, getCmd, statsCmd)
	return rootCmd
}

// symblex - dictionary-token text compressor CLI
//
// Usage:
//
//	symblex encode [text|-]         Replace words with tokens
//	symblex decode [text|-]         Replace tokens with words
//	symblex pack [text|-]           Bit-pack text to a base64url string
//	symblex unpack [text|-]         Reverse of pack
//	symblex stats [text|-]          Compression statistics for a text
//	symblex lookup <word>           Show the token for one word
//	symblex list [prefix]           List registry words and tokens
//	symblex build <files...>        Build a custom dictionary from a corpus
//	symblex --version               Print version info
//
// A custom dictionary artifact is merged at startup when --dict or the
// SYMBLEX_DICT environment variable points at one. With no text
// argument (or "-"), text-accepting commands read from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prapanbiswas/symblex/symblex"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "symblex:", err)
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	dict *symblex.Dictionary
	log  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	root := &cobra.Command{
		Use:           "symblex",
		Short:         "Compress English text with dictionary tokens",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			a.dict = symblex.New()

			if path := viper.GetString("dict"); path != "" {
				cd, err := symblex.LoadCustomDict(path)
				if err != nil {
					// Per the degradation contract the codec proceeds
					// with built-ins only; the failure is still worth
					// a warning.
					a.log.Warn("custom dictionary skipped", "path", path, "err", err)
					return nil
				}
				n := a.dict.Merge(cd)
				a.log.Debug("custom dictionary merged", "path", path, "words", n)
			}
			return nil
		},
	}

	root.PersistentFlags().String("dict", "", "custom dictionary artifact to merge at startup")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("dict", root.PersistentFlags().Lookup("dict"))
	_ = viper.BindEnv("dict", "SYMBLEX_DICT")

	root.AddCommand(
		newTextCmd("encode", "Replace words with tokens", func(s string) string { return a.dict.Encode(s) }),
		newTextCmd("decode", "Replace tokens with words", func(s string) string { return a.dict.Decode(s) }),
		newTextCmd("pack", "Bit-pack text to a base64url string", func(s string) string { return a.dict.Pack(s) }),
		newTextCmd("unpack", "Reverse of pack", func(s string) string { return a.dict.Unpack(s) }),
		newStatsCmd(a),
		newLookupCmd(a),
		newListCmd(a),
		newBuildCmd(a),
	)
	return root
}

// newTextCmd wires one text-in text-out operation.
func newTextCmd(use, short string, op func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), op(text))
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [text]",
		Short: "Compression statistics for a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args)
			if err != nil {
				return err
			}
			st := a.dict.MeasureStats(text)
			out := cmd.OutOrStdout()
			if st.Err != nil {
				fmt.Fprintf(out, "original: %d (degraded: %v)\n", st.Original, st.Err)
				return nil
			}
			fmt.Fprintf(out, "original:     %d\n", st.Original)
			fmt.Fprintf(out, "encoded:      %d (saved %d, %s)\n", st.Encoded, st.SavedEncoded, st.RatioEncoded)
			fmt.Fprintf(out, "packed:       %d (saved %d, %s)\n", st.Packed, st.SavedPacked, st.RatioPacked)
			fmt.Fprintf(out, "words:        %d scanned, %d dictionary, %d stemmed\n",
				st.WordsScanned, st.DictHits, st.StemHits)
			fmt.Fprintf(out, "hit rate:     %s\n", st.HitRate)
			return nil
		},
	}
}

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show the token for one word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, ok := a.dict.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no token for %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "List registry words and their tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = strings.ToLower(args[0])
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			for _, w := range a.dict.Words() {
				if !strings.HasPrefix(w, prefix) {
					continue
				}
				tok, ok := a.dict.TokenFor(w)
				if !ok {
					tok = "-"
				}
				fmt.Fprintf(out, "%s\t%s\n", tok, w)
			}
			return nil
		},
	}
}

func newBuildCmd(a *app) *cobra.Command {
	opts := symblex.DefaultBuildOpts()
	var outPath string

	cmd := &cobra.Command{
		Use:   "build <files...>",
		Short: "Build a custom dictionary artifact from corpus files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := symblex.NewBuilder(a.dict, opts)
			for _, path := range args {
				a.log.Debug("scanning corpus", "path", path)
				if err := b.ScanFile(path); err != nil {
					return fmt.Errorf("scan %s: %w", path, err)
				}
			}
			cd, st := b.Build()
			a.log.Info("corpus scanned",
				"words", st.WordsScanned,
				"covered", st.AlreadyCovered,
				"unique", st.Unique,
				"qualified", st.Qualified,
				"accepted", st.Accepted)

			if outPath == "" {
				return cd.WriteTo(cmd.OutOrStdout())
			}
			if err := cd.Save(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d words to %s\n", cd.Total, outPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.MinWordLength, "min-length", opts.MinWordLength, "shortest word to consider")
	cmd.Flags().IntVar(&opts.MinFrequency, "min-freq", opts.MinFrequency, "occurrences required for a token")
	cmd.Flags().IntVar(&opts.Capacity, "capacity", opts.Capacity, "maximum words in the artifact")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "artifact output path (default stdout, .gz compresses)")
	return cmd
}

// inputText joins the argument text or reads stdin when absent or "-".
func inputText(args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-notes"
	"github.com/goliatone/go-notes/cmd/notes/internal/bootstrap"
	"github.com/goliatone/go-notes/internal/markup"
	"github.com/goliatone/go-notes/internal/nodes"
)

var version = "0.1.0"

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &bootstrap.Options{}

	rootCmd := &cobra.Command{
		Use:   "notes",
		Short: "Parse and render lecture-note markup",
		Long: `notes reads leaf-node files written in the lecture-note markup
(headings, citations, embeds, links, tags and lists), optionally preceded
by a YAML front matter block, and prints their segmentation or a numbered,
source-resolved document.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "Path to a YAML, TOML or JSON config file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Enable go-logger at this level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.LogFormat, "log-format", "", "go-logger output format (json, console, pretty)")

	rootCmd.AddCommand(parseCmd(opts))
	rootCmd.AddCommand(outlineCmd(opts))
	rootCmd.AddCommand(renderCmd(opts))
	rootCmd.AddCommand(extractCmd())

	return rootCmd
}

func parseCmd(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the segmentation of a file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := nodes.LoadFile(args[0])
			if err != nil {
				return err
			}
			module, err := moduleBuilder(*opts)
			if err != nil {
				return err
			}
			defer module.Close()

			parsed, err := module.Parse(cmd.Context(), node.Content)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), parsed)
		},
	}
}

func outlineCmd(opts *bootstrap.Options) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Print numbered headings, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := renderFile(cmd.Context(), *opts, args[0], style)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, heading := range doc.Outline() {
				indent := strings.Repeat("  ", heading.Level-1)
				if heading.Label == "" {
					fmt.Fprintf(out, "%s%s\n", indent, heading.Text)
					continue
				}
				fmt.Fprintf(out, "%s%s %s\n", indent, heading.Label, heading.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "Initial heading style (numeric, alphabetic, none)")
	return cmd
}

func renderCmd(opts *bootstrap.Options) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the rendered document as JSON",
		Long: `Render numbers headings and citations, converts embeds to player URLs
and resolves citations and tags. With --db the source registry and the
content tree are read from a SQLite database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := renderFile(cmd.Context(), *opts, args[0], style)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "Initial heading style (numeric, alphabetic, none)")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite database holding sources and nodes")
	return cmd
}

func extractCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print citations, embeds, headings or tags as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := nodes.LoadFile(args[0])
			if err != nil {
				return err
			}

			var result any
			switch strings.ToLower(strings.TrimSpace(kind)) {
			case "citations":
				result = markup.ExtractCitations(node.Content)
			case "embeds":
				result = markup.ExtractEmbeds(node.Content)
			case "headings":
				result = markup.ExtractHeadings(node.Content)
			case "tags":
				result = markup.ExtractTags(node.Content)
			default:
				return fmt.Errorf("unknown kind %q: want citations, embeds, headings or tags", kind)
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "citations", "What to extract (citations, embeds, headings, tags)")
	return cmd
}

func renderFile(ctx context.Context, opts bootstrap.Options, filename, style string) (*notes.Document, error) {
	node, err := nodes.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	module, err := moduleBuilder(opts)
	if err != nil {
		return nil, err
	}
	defer module.Close()

	renderStyle := notes.NumberingStyle(strings.ToLower(strings.TrimSpace(style)))
	switch renderStyle {
	case "", notes.StyleNumeric, notes.StyleAlphabetic, notes.StyleNone:
	default:
		return nil, fmt.Errorf("unknown style %q: want numeric, alphabetic or none", style)
	}
	return module.Render(ctx, node.Content, notes.RenderOptions{Style: renderStyle})
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/common"
	"github.com/yildizm/go-termfmt"
)

// newPresetsCommand creates the presets command with subcommands
func newPresetsCommand() *cobra.Command {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List and check category presets",
		Long: `Category presets are named lists of categories stored in YAML files.
Built-in presets are always available unless categories.enable_defaults is
false; files in categories.directories add to them and win on id clashes.

Every side of a range or bound must be a number: "<" and "-5" are invalid
rather than read as 0, and negative values cannot be written because a dash
always starts a range.`,
	}

	presetsCmd.AddCommand(newPresetsListCommand())
	presetsCmd.AddCommand(newPresetsShowCommand())
	presetsCmd.AddCommand(newPresetsValidateCommand())

	return presetsCmd
}

func newPresetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := NewPresetLoader(newLogger("presets", cmd.ErrOrStderr()))
			presets := loader.LoadAll(GetGlobalConfig())

			out := cmd.OutOrStdout()
			if len(presets) == 0 {
				fmt.Fprintln(out, "No presets available")
				return nil
			}

			fmt.Fprintf(out, "%s Available presets (%d)\n", GetEmoji("table"), len(presets))
			items := make([]termfmt.TreeItem, 0, len(presets))
			for i, p := range presets {
				items = append(items, termfmt.TreeItem{
					Label: p.ID,
					Value: fmt.Sprintf("%s [%s] %s", p.Name, p.Source, p.Spec()),
					Last:  i == len(presets)-1,
				})
			}
			fmt.Fprintln(out, termfmt.TreeViewWithOptions(items, termOptions()))
			return nil
		},
	}
}

func newPresetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the categories of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := NewPresetLoader(newLogger("presets", cmd.ErrOrStderr()))
			preset, err := loader.Resolve(GetGlobalConfig(), args[0])
			if err != nil {
				return err
			}
			writePreset(cmd.OutOrStdout(), preset)
			return nil
		},
	}
}

func newPresetsValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate preset files",
		Long: `Validate preset YAML files. Without arguments every configured and
built-in preset is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			loader := NewPresetLoader(newLogger("presets", cmd.ErrOrStderr()))

			if len(args) == 0 {
				return validatePresets(out, loader.LoadAll(GetGlobalConfig()))
			}

			failed := 0
			for _, path := range args {
				presets, err := loader.LoadFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", GetEmoji("error"), path, err)
					continue
				}
				if err := validatePresets(out, presets); err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d preset files failed validation", failed, len(args))
			}
			return nil
		},
	}
}

// validatePresets reports one line per preset and fails if any is invalid
func validatePresets(w io.Writer, presets []*common.Preset) error {
	invalid := 0
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			invalid++
			fmt.Fprintf(w, "%s %v\n", GetEmoji("error"), err)
			continue
		}
		fmt.Fprintf(w, "%s %s (%d categories)\n", GetEmoji("success"), p.ID, len(p.Categories))
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid presets", invalid)
	}
	return nil
}

// writePreset prints a preset with one line per category and its kind
func writePreset(w io.Writer, p *common.Preset) {
	fmt.Fprintf(w, "%s %s (%s)\n", GetEmoji("target"), p.Name, p.ID)
	if p.Description != "" {
		fmt.Fprintf(w, "   %s\n", p.Description)
	}
	fmt.Fprintf(w, "   Source: %s\n\n", p.Source)

	items := make([]termfmt.TreeItem, 0, len(p.Categories))
	for i, spec := range p.Categories {
		cat, err := analyzer.ParseCategory(spec)
		value := strings.ReplaceAll(string(cat.Kind), "_", " ")
		if err != nil {
			value = err.Error()
		}
		items = append(items, termfmt.TreeItem{
			Label: GetKindEmoji(cat.Kind) + " " + spec,
			Value: value,
			Last:  i == len(p.Categories)-1,
		})
	}
	fmt.Fprintln(w, termfmt.TreeViewWithOptions(items, termOptions()))
	fmt.Fprintf(w, "\nUse with: freqsum analyze --preset %s\n", p.ID)
}

func termOptions() *termfmt.TerminalOptions {
	opts := termfmt.DefaultOptions()
	opts.Color = useColor()
	opts.Emoji = !noEmoji
	return opts
}

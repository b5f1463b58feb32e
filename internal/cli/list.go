package cli

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/softwayapp/plugingen/internal/generator"
	"github.com/softwayapp/plugingen/internal/manifest"
	"github.com/spf13/cobra"
)

const (
	kindCommand = "command"
	kindSkill   = "skill"

	colKind        = "Kind"
	colID          = "ID"
	colDescription = "Description"
	colLocation    = "Location"
	emptyMsg       = "No commands or skills found."
)

// listEntry is one discovered command or skill.
type listEntry struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		kind   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered commands and skills without writing the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" && kind != kindCommand && kind != kindSkill {
				return fmt.Errorf("invalid --kind %q: must be %q or %q", kind, kindCommand, kindSkill)
			}

			s, err := opts.settings(nil)
			if err != nil {
				return err
			}
			p, err := generator.New(s).Build(cmd.Context())
			if err != nil {
				return err
			}

			entries := listEntries(p, kind)
			if asJSON {
				return printListJSON(cmd, entries)
			}
			return printListTable(cmd, entries)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (command, skill)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

// listEntries flattens the manifest into entries, commands first, each kind
// in manifest order.
func listEntries(p *manifest.Plugin, kind string) []listEntry {
	entries := []listEntry{}
	if kind == "" || kind == kindCommand {
		for id, c := range p.Commands.All() {
			entries = append(entries, listEntry{Kind: kindCommand, ID: id, Description: c.Description, Location: c.File})
		}
	}
	if kind == "" || kind == kindSkill {
		for id, s := range p.Skills.All() {
			entries = append(entries, listEntry{Kind: kindSkill, ID: id, Description: s.Description, Location: s.Path})
		}
	}
	return entries
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, emptyMsg)
		return nil
	}

	cnf := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}

	table := tablewriter.NewTable(out, tablewriter.WithConfig(cnf))
	table.Header(colKind, colID, colDescription, colLocation)
	for _, e := range entries {
		table.Append(e.Kind, e.ID, e.Description, e.Location)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Fprintf(out, "\nTotal: %d entries\n", len(entries))
	return nil
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// Package cli — capabilities.go implements the "taggedgen capabilities"
// command, which lists the fixed capability enumeration per directive
// group.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tagged/internal/model"
)

type capabilitiesFlags struct {
	group string // --group: limit to one directive group
}

// NewCapabilitiesCommand creates the "capabilities" cobra command.
func NewCapabilitiesCommand() *cobra.Command {
	flags := &capabilitiesFlags{}

	cmd := &cobra.Command{
		Use:   "capabilities",
		Short: "List the capabilities each directive accepts",
		Long: `List every capability name accepted by the implement, transparent and
capability directives, with its aliases and the method generated for it.

Examples:
  taggedgen capabilities
  taggedgen capabilities --group transparent
  taggedgen capabilities --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapabilities(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.group, "group", "",
		"Only list one group: implement, transparent, capability (default: all)")

	return cmd
}

// capabilityJSON is the JSON output structure for one capability.
type capabilityJSON struct {
	Group   string   `json:"group"`
	Name    string   `json:"name"`
	Method  string   `json:"method"`
	Aliases []string `json:"aliases"`
	Serde   bool     `json:"serde,omitempty"`
}

func runCapabilities(w io.Writer, flags *capabilitiesFlags) error {
	groups := model.Groups()
	if flags.group != "" {
		g := model.Group(strings.ToLower(flags.group))
		if !g.IsValid() {
			return model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid group %q: valid values are implement, transparent, capability", flags.group))
		}
		groups = []model.Group{g}
	}

	var entries []capabilityJSON
	for _, g := range groups {
		for _, c := range model.Capabilities(g) {
			aliases := c.Aliases()
			if aliases == nil {
				aliases = []string{}
			}
			entries = append(entries, capabilityJSON{
				Group:   g.String(),
				Name:    c.String(),
				Method:  c.Method(),
				Aliases: aliases,
				Serde:   c.IsSerde(),
			})
		}
	}

	if IsJSONOutput() {
		return printJSON(w, struct {
			Capabilities []capabilityJSON `json:"capabilities"`
		}{Capabilities: entries})
	}
	printCapabilitiesText(w, entries)
	return nil
}

// printCapabilitiesText outputs the enumeration as a text table:
//
//	GROUP        NAME          METHOD                  ALIASES
//	implement    Equal         ImplementEqual          Equality, PartialEq
//	transparent  Serialize     TransparentSerialize    - (serde)
func printCapabilitiesText(w io.Writer, entries []capabilityJSON) {
	fmt.Fprintf(w, "%-12s %-13s %-23s %s\n", "GROUP", "NAME", "METHOD", "ALIASES")
	for _, e := range entries {
		aliases := FormatAliases(e.Aliases)
		if e.Serde {
			aliases += " (serde)"
		}
		fmt.Fprintf(w, "%-12s %-13s %-23s %s\n", e.Group, e.Name, e.Method, aliases)
	}
}

// FormatAliases joins alias names for display. Returns "-" if there are
// none.
//
// Example:
//
//	["Equality", "PartialEq"] → "Equality, PartialEq"
//	[]                        → "-"
func FormatAliases(aliases []string) string {
	if len(aliases) == 0 {
		return "-"
	}
	return strings.Join(aliases, ", ")
}

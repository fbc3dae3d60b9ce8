package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meshforge/meshgen/pkg/cli/format"
	"github.com/meshforge/meshgen/pkg/store"
	"github.com/meshforge/meshgen/pkg/types"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	// List command flags
	listService      string
	listOutputFormat string
	listNoHeaders    bool
)

// listOptions holds the options for the list command
type listOptions struct {
	service   string
	output    string
	noHeaders bool
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated manifests",
	Long: `List the manifest files currently in the output directory.
For example:
  meshgen list
  meshgen list --service checkout
  meshgen list --output yaml
  meshgen list --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		opts := &listOptions{
			service:   listService,
			output:    listOutputFormat,
			noHeaders: listNoHeaders,
		}
		return runList(os.Stdout, newStore(), opts)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	// Local flags for the list command
	listCmd.Flags().StringVarP(&listService, "service", "s", "", "Only list manifests for this service")
	listCmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, yaml, json)")
	listCmd.Flags().BoolVar(&listNoHeaders, "no-headers", false, "Do not print table headers")
}

// runList enumerates stored manifests and renders them in the requested
// format.
func runList(out io.Writer, st *store.FileStore, opts *listOptions) error {
	names, err := st.ListService(opts.service)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		if opts.service != "" {
			fmt.Fprintln(out, format.Info("No manifests found for service: %s", opts.service))
		} else {
			fmt.Fprintln(out, format.Info("No manifests found"))
		}
		return nil
	}

	switch opts.output {
	case "table":
		return renderManifestTable(out, st, names, opts.noHeaders)
	case "yaml":
		manifests, err := readManifests(st, names)
		if err != nil {
			return err
		}
		return writeManifestStream(out, manifests)
	case "json":
		manifests, err := readManifests(st, names)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(manifests, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode manifests: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s (expected table, yaml or json)", opts.output)
	}
}

// renderManifestTable prints one row per stored manifest file.
func renderManifestTable(out io.Writer, st *store.FileStore, names []string, noHeaders bool) error {
	data := pterm.TableData{}
	if !noHeaders {
		data = append(data, []string{"FILE", "KIND", "NAME", "NAMESPACE"})
	}

	for _, name := range names {
		m, err := st.Read(name)
		if err != nil {
			// A file that doesn't parse still exists; list it rather
			// than failing the whole enumeration.
			format.PrintWarning("skipping unreadable manifest %s: %v", name, err)
			data = append(data, []string{name, format.Warning("unreadable"), "-", "-"})
			continue
		}
		data = append(data, []string{
			name,
			format.KindLabel(string(m.Kind)),
			m.Metadata.Name,
			m.Metadata.Namespace,
		})
	}

	headerStyle := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	rendered, err := pterm.DefaultTable.
		WithHasHeader(!noHeaders).
		WithHeaderStyle(headerStyle).
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintln(out, rendered)
	return nil
}

func readManifests(st *store.FileStore, names []string) ([]types.Manifest, error) {
	manifests := make([]types.Manifest, 0, len(names))
	for _, name := range names {
		m, err := st.Read(name)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, *m)
	}
	return manifests, nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/meshforge/meshgen/pkg/cli/format"
	"github.com/meshforge/meshgen/pkg/log"
	"github.com/meshforge/meshgen/pkg/render"
	"github.com/meshforge/meshgen/pkg/store"
	"github.com/meshforge/meshgen/pkg/types"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

var (
	// Generate command flags
	generateService   string
	generateNamespace string
	generateDomain    string
	generateDryRun    bool
)

// generateOptions holds the resolved options for the generate command
type generateOptions struct {
	request   types.GenerationRequest
	outputDir string
	dryRun    bool
}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate routing manifests for a service",
	Long: `Generate the four Istio routing manifests for a service and write
them into the output directory, one YAML file per resource kind.
For example:
  meshgen generate --service checkout
  meshgen generate --service checkout --namespace payments
  meshgen generate --service checkout --domain example.com
  meshgen generate --service checkout --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flag errors are already handled; from here on failures are
		// runtime errors and should not dump the usage text.
		cmd.SilenceUsage = true

		cfg := activeConfig()
		namespace := generateNamespace
		if namespace == "" {
			namespace = cfg.DefaultNamespace
		}
		domain := generateDomain
		if domain == "" {
			domain = cfg.DefaultDomain
		}

		opts := &generateOptions{
			request: types.GenerationRequest{
				Service:   generateService,
				Namespace: namespace,
				Domain:    domain,
			},
			outputDir: cfg.OutputDir,
			dryRun:    generateDryRun,
		}
		return runGenerate(os.Stdout, opts)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Local flags for the generate command
	generateCmd.Flags().StringVarP(&generateService, "service", "s", "", "Service name (required)")
	generateCmd.Flags().StringVarP(&generateNamespace, "namespace", "n", "", "Kubernetes namespace (default \"default\")")
	generateCmd.Flags().StringVarP(&generateDomain, "domain", "d", "", "Domain for service hosts (e.g. example.com)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Render manifests to stdout without writing files")
	_ = generateCmd.MarkFlagRequired("service")
}

// runGenerate renders the manifests and writes them through the store,
// or streams them to out in dry-run mode.
func runGenerate(out io.Writer, opts *generateOptions) error {
	req := opts.request
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return err
	}

	manifests := render.Manifests(req)

	if opts.dryRun {
		return writeManifestStream(out, manifests)
	}

	st := store.NewFileStore(opts.outputDir, log.GetDefaultLogger())
	for _, m := range manifests {
		path, err := st.Write(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", format.StatusSymbol(true), format.Success("Generated %s", path))
	}

	printDomainSummary(out, req)
	return nil
}

// writeManifestStream encodes manifests as a YAML multi-document stream.
func writeManifestStream(out io.Writer, manifests []types.Manifest) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	for _, m := range manifests {
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to encode %s %s: %w", m.Kind, m.Metadata.Name, err)
		}
	}
	return enc.Close()
}

func printDomainSummary(out io.Writer, req types.GenerationRequest) {
	fmt.Fprintln(out)
	if req.Domain == "" {
		fmt.Fprintln(out, format.Dim("No domain specified, using plain service names"))
		return
	}
	fmt.Fprintln(out, format.Header("Domain configuration:"))
	fmt.Fprintf(out, "- %s\n", format.Label("Service FQDN", req.Service+"."+req.Domain))
	fmt.Fprintf(out, "- %s\n", format.Label("Gateway hosts", "*."+req.Domain))
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/meshforge/meshgen/pkg/cli/format"
	"github.com/meshforge/meshgen/pkg/store"
	"github.com/meshforge/meshgen/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Delete command flags
	deleteService   string
	deleteNamespace string
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete generated manifests for a service",
	Long: `Delete all generated manifest files belonging to a service.
For example:
  meshgen delete --service checkout
  meshgen delete --service checkout --namespace payments

Deleting a service with no generated manifests is not an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runDelete(os.Stdout, newStore(), deleteService, deleteNamespace)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	// Local flags for the delete command
	deleteCmd.Flags().StringVarP(&deleteService, "service", "s", "", "Service name (required)")
	deleteCmd.Flags().StringVarP(&deleteNamespace, "namespace", "n", "", "Only delete manifests in this namespace")
	_ = deleteCmd.MarkFlagRequired("service")
}

// runDelete removes the service's manifest files and reports each one.
func runDelete(out io.Writer, st *store.FileStore, service, namespace string) error {
	req := types.GenerationRequest{Service: service, Namespace: namespace}
	if err := req.Validate(); err != nil {
		return types.WrapValidationError(err, "delete")
	}

	removed, err := st.Delete(service, namespace)
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		fmt.Fprintln(out, format.Info("No manifests found for service: %s", service))
		return nil
	}

	for _, name := range removed {
		fmt.Fprintf(out, "%s %s\n", format.StatusSymbol(true), format.Success("Deleted %s", filepath.Join(st.Dir(), name)))
	}
	return nil
}

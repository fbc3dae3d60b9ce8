package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/meshforge/meshgen/pkg/cli/format"
	"github.com/meshforge/meshgen/pkg/render"
	"github.com/meshforge/meshgen/pkg/store"
	"github.com/meshforge/meshgen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T, services ...string) *store.FileStore {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "manifests"), nil)
	for _, service := range services {
		req := types.GenerationRequest{Service: service, Namespace: "default"}
		for _, m := range render.Manifests(req) {
			_, err := st.Write(m)
			require.NoError(t, err)
		}
	}
	return st
}

func TestRunDeleteRemovesServiceManifests(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "checkout", "billing")

	var out bytes.Buffer
	require.NoError(t, runDelete(&out, st, "checkout", ""))

	assert.Contains(t, out.String(), "Deleted")
	assert.Contains(t, out.String(), "checkout-virtualservice.yaml")

	names, err := st.List()
	require.NoError(t, err)
	assert.Len(t, names, 4)
	for _, name := range names {
		assert.Contains(t, name, "billing-")
	}
}

func TestRunDeleteUnknownServiceIsNoOp(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "billing")

	var out bytes.Buffer
	require.NoError(t, runDelete(&out, st, "checkout", ""))
	assert.Contains(t, out.String(), "No manifests found for service: checkout")

	names, err := st.List()
	require.NoError(t, err)
	assert.Len(t, names, 4)
}

func TestRunDeleteNamespaceMismatchKeepsFiles(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "checkout")

	var out bytes.Buffer
	require.NoError(t, runDelete(&out, st, "checkout", "staging"))
	assert.Contains(t, out.String(), "No manifests found")

	names, err := st.List()
	require.NoError(t, err)
	assert.Len(t, names, 4)
}

func TestRunDeleteRejectsEmptyService(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "checkout", "billing")

	var out bytes.Buffer
	err := runDelete(&out, st, "", "")
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))

	// No manifest of either service may be touched
	names, err := st.List()
	require.NoError(t, err)
	assert.Len(t, names, 8)
}

func TestRunDeleteRejectsInvalidService(t *testing.T) {
	st := seededStore(t, "checkout")

	var out bytes.Buffer
	err := runDelete(&out, st, "foo/bar", "")
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
}

func TestDeleteRequiresServiceFlag(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	rootCmd.SetArgs([]string{"delete"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service")
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/meshforge/meshgen/pkg/cli/format"
	"github.com/meshforge/meshgen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunListTable(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "checkout", "billing")

	var out bytes.Buffer
	require.NoError(t, runList(&out, st, &listOptions{output: "table"}))

	for _, kind := range types.Kinds() {
		assert.Contains(t, out.String(), types.FileName("checkout", kind))
		assert.Contains(t, out.String(), types.FileName("billing", kind))
	}
}

func TestRunListServiceFilter(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "checkout", "billing")

	var out bytes.Buffer
	require.NoError(t, runList(&out, st, &listOptions{service: "billing", output: "table"}))

	assert.Contains(t, out.String(), "billing-gateway.yaml")
	assert.NotContains(t, out.String(), "checkout-gateway.yaml")
}

func TestRunListEmptyDirectory(t *testing.T) {
	st := seededStore(t)

	var out bytes.Buffer
	require.NoError(t, runList(&out, st, &listOptions{output: "table"}))
	assert.Contains(t, out.String(), "No manifests found")

	out.Reset()
	require.NoError(t, runList(&out, st, &listOptions{service: "checkout", output: "table"}))
	assert.Contains(t, out.String(), "No manifests found for service: checkout")
}

func TestRunListJSON(t *testing.T) {
	st := seededStore(t, "checkout")

	var out bytes.Buffer
	require.NoError(t, runList(&out, st, &listOptions{output: "json"}))

	var manifests []types.Manifest
	require.NoError(t, json.Unmarshal(out.Bytes(), &manifests))
	assert.Len(t, manifests, 4)
	for _, m := range manifests {
		assert.Equal(t, types.IstioAPIVersion, m.APIVersion)
	}
}

func TestRunListYAML(t *testing.T) {
	st := seededStore(t, "checkout")

	var out bytes.Buffer
	require.NoError(t, runList(&out, st, &listOptions{output: "yaml"}))

	assert.Contains(t, out.String(), "kind: VirtualService")
	assert.Contains(t, out.String(), "kind: ServiceEntry")
	// Documents are separated in a single stream
	assert.Contains(t, out.String(), "---")
}

func TestRunListTableListsUnreadableFiles(t *testing.T) {
	format.EnableColor(false)
	st := seededStore(t, "checkout")

	path := filepath.Join(st.Dir(), "legacy-gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{::not yaml"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runList(&out, st, &listOptions{output: "table"}))

	// The file still shows up in the enumeration, marked unreadable
	assert.Contains(t, out.String(), "legacy-gateway.yaml")
	assert.Contains(t, out.String(), "unreadable")
	assert.Contains(t, out.String(), "checkout-gateway.yaml")
}

func TestRunListUnknownFormat(t *testing.T) {
	st := seededStore(t, "checkout")

	var out bytes.Buffer
	err := runList(&out, st, &listOptions{output: "toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

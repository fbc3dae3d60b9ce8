// Package store persists rendered manifests as flat YAML files in a
// single output directory. The directory is the only state meshgen
// keeps between invocations.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meshforge/meshgen/pkg/log"
	"github.com/meshforge/meshgen/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

const manifestExt = ".yaml"

// FileStore reads and writes manifests under a fixed output directory.
// The directory is created lazily on the first write.
type FileStore struct {
	dir    string
	logger log.Logger
}

// NewFileStore creates a store bound to the given output directory.
func NewFileStore(dir string, logger log.Logger) *FileStore {
	if logger == nil {
		logger = log.GetDefaultLogger().WithComponent("store")
	} else {
		logger = logger.WithComponent("store")
	}

	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the output directory the store is bound to.
func (s *FileStore) Dir() string {
	return s.dir
}

// Write serializes the manifest and writes it to
// <dir>/<metadata.name>.yaml, overwriting any existing file. It returns
// the path written.
func (s *FileStore) Write(m types.Manifest) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s %s: %w", m.Kind, m.Metadata.Name, err)
	}

	path := filepath.Join(s.dir, m.Metadata.Name+manifestExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Debug("Wrote manifest",
		log.Str("kind", string(m.Kind)),
		log.Str("name", m.Metadata.Name),
		log.F("path", path))
	return path, nil
}

// List returns the sorted names of all manifest files in the output
// directory. A missing or empty directory yields an empty slice.
func (s *FileStore) List() ([]string, error) {
	return s.list("")
}

// ListService returns the sorted names of manifest files belonging to
// the given service.
func (s *FileStore) ListService(service string) ([]string, error) {
	return s.list(service)
}

func (s *FileStore) list(service string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), manifestExt) {
			continue
		}
		if service != "" && !strings.HasPrefix(entry.Name(), service+"-") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	s.logger.Debug("Listed manifests", log.Str("service", service), log.Int("count", len(names)))
	return names, nil
}

// Read loads and decodes a stored manifest by file name.
func (s *FileStore) Read(name string) (*types.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", name, err)
	}

	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", name, err)
	}
	return &m, nil
}

// Delete removes all manifest files belonging to the service. With a
// non-empty namespace only manifests in that namespace are removed.
// It returns the names of the removed files; no matches is not an error.
// The service name is required: an empty selector would match every
// manifest in the directory.
func (s *FileStore) Delete(service, namespace string) ([]string, error) {
	if service == "" {
		return nil, types.NewValidationError("service name is required")
	}

	names, err := s.list(service)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, name := range names {
		if namespace != "" {
			m, err := s.Read(name)
			if err != nil {
				return removed, err
			}
			if m.Metadata.Namespace != namespace {
				continue
			}
		}

		path := filepath.Join(s.dir, name)
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to delete %s: %w", path, err)
		}
		removed = append(removed, name)
		s.logger.Debug("Deleted manifest", log.Str("name", name))
	}
	return removed, nil
}

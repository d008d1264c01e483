package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed all:kits
var kitsFS embed.FS

// Kit names
const (
	UberCloneKit    = "uber-clone"
	UberFrontendKit = "uber-frontend"
)

var (
	// ErrUnknownKit is returned when no embedded kit has the requested name.
	ErrUnknownKit = errors.New("unknown template kit")

	// ErrInvalidPath is returned for entry paths that are empty, absolute,
	// not clean, or climb out of the output directory.
	ErrInvalidPath = errors.New("invalid template path")
)

// Entry is one file to emit: a slash-separated path relative to the output
// directory and its literal content.
type Entry struct {
	Path    string
	Content string
}

// Table is an ordered list of entries. Iteration order is emission order.
type Table []Entry

// Validate checks that every path stays inside the output directory and
// that no path appears twice.
func (t Table) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for _, e := range t {
		if !fs.ValidPath(e.Path) || e.Path == "." {
			return fmt.Errorf("%w: %q", ErrInvalidPath, e.Path)
		}
		if _, dup := seen[e.Path]; dup {
			return fmt.Errorf("%w: duplicate path %q", ErrInvalidPath, e.Path)
		}
		seen[e.Path] = struct{}{}
	}
	return nil
}

// Manifest describes a kit.
type Manifest struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Files       []string `yaml:"files"`
}

// LoadManifest reads and parses the manifest of a kit.
func LoadManifest(kit string) (*Manifest, error) {
	data, err := kitsFS.ReadFile(path.Join("kits", kit, "manifest.yml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKit, kit)
		}
		return nil, fmt.Errorf("reading manifest for %s: %w", kit, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest for %s: %w", kit, err)
	}
	if m.Name != kit {
		return nil, fmt.Errorf("manifest for %s declares name %q", kit, m.Name)
	}
	return &m, nil
}

// Load returns the template table of a kit in manifest order.
func Load(kit string) (Table, error) {
	m, err := LoadManifest(kit)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(m.Files))
	for _, p := range m.Files {
		if !fs.ValidPath(p) {
			return nil, fmt.Errorf("kit %s: %w: %q", kit, ErrInvalidPath, p)
		}
		content, err := kitsFS.ReadFile(path.Join("kits", kit, "files", p))
		if err != nil {
			return nil, fmt.Errorf("kit %s: reading %s: %w", kit, p, err)
		}
		table = append(table, Entry{Path: p, Content: string(content)})
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("kit %s: %w", kit, err)
	}
	return table, nil
}

// MustLoad is like Load but panics on error. The embedded kits are part of
// the binary, so a failure here is a build defect.
func MustLoad(kit string) Table {
	table, err := Load(kit)
	if err != nil {
		panic(err)
	}
	return table
}

// UberClone returns the React + Tailwind + Mapbox project table.
func UberClone() Table {
	return MustLoad(UberCloneKit)
}

// UberFrontend returns the Next.js frontend table.
func UberFrontend() Table {
	return MustLoad(UberFrontendKit)
}

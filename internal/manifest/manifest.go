package manifest

import (
	"context"

	"github.com/indaco/cra2parcel/internal/core"
)

// Filename is the project manifest read and rewritten by the migration.
const Filename = "package.json"

// Manifest is a package.json loaded from disk. Each migration step loads its
// own copy so it always sees what the previous step wrote.
type Manifest struct {
	*Document
	path string
}

// Load reads the manifest at path.
func Load(ctx context.Context, fs core.FileSystem, path string) (*Manifest, error) {
	doc, err := ReadDocument(ctx, fs, path)
	if err != nil {
		return nil, err
	}
	return &Manifest{Document: doc, path: path}, nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Save writes the manifest back to the file it was loaded from.
func (m *Manifest) Save(ctx context.Context, fs core.FileSystem) error {
	return m.WriteTo(ctx, fs, m.path)
}

// Dependency returns the version range declared in "dependencies" for name.
func (m *Manifest) Dependency(name string) string {
	return m.Get(Key("dependencies", name)).String()
}

// HasDependency reports whether name is declared with a non-empty value.
func (m *Manifest) HasDependency(name string) bool {
	return m.Dependency(name) != ""
}

// Script returns the command registered under scripts[name].
func (m *Manifest) Script(name string) string {
	return m.Get(Key("scripts", name)).String()
}

// SetScript registers command under scripts[name].
func (m *Manifest) SetScript(name, command string) error {
	return m.Set(Key("scripts", name), command)
}

// DeleteScript removes scripts[name] if present.
func (m *Manifest) DeleteScript(name string) error {
	return m.Delete(Key("scripts", name))
}

// SetDevDependency records version under devDependencies[name],
// creating devDependencies when the manifest has none.
func (m *Manifest) SetDevDependency(name, version string) error {
	return m.Set(Key("devDependencies", name), version)
}

package emit

import (
	"context"
)

// ParcelScripts are the lifecycle scripts written into package.json.
var ParcelScripts = []struct {
	Name    string
	Command string
}{
	{"start", "parcel"},
	{"build", "parcel build"},
	{"test", "jest"},
	{"lint", "eslint src"},
}

// RewriteScripts points the manifest at Parcel: the HTML entry becomes the
// build source, lifecycle scripts are replaced and "eject" is dropped.
func (e *Emitter) RewriteScripts(ctx context.Context) error {
	pkg, err := e.loadManifest(ctx)
	if err != nil {
		return err
	}

	if err := pkg.Set("source", HTMLEntryFile); err != nil {
		return err
	}
	for _, s := range ParcelScripts {
		if err := pkg.SetScript(s.Name, s.Command); err != nil {
			return err
		}
	}
	if err := pkg.DeleteScript("eject"); err != nil {
		return err
	}

	return pkg.Save(ctx, e.fs)
}

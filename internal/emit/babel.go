package emit

import (
	"context"

	"github.com/indaco/cra2parcel/internal/manifest"
)

// MacrosPlugin is the Babel plugin CRA enabled implicitly.
const MacrosPlugin = "babel-plugin-macros"

// WriteBabelConfig writes babel.config.json enabling macros when macros is set.
func (e *Emitter) WriteBabelConfig(ctx context.Context, macros bool) (bool, error) {
	if !macros {
		return false, nil
	}

	doc := manifest.NewDocument()
	if err := doc.Set("plugins", []string{MacrosPlugin}); err != nil {
		return false, err
	}
	if err := doc.WriteTo(ctx, e.fs, e.path(BabelConfigFile)); err != nil {
		return false, err
	}
	return true, nil
}

package emit

import (
	"context"

	"github.com/indaco/cra2parcel/internal/manifest"
)

// SVGTransformer turns jsx:-prefixed SVG imports into React components.
const SVGTransformer = "@parcel/transformer-svg-react"

// WriteParcelRC writes .parcelrc routing jsx:*.svg through the SVG React
// transformer. It does nothing unless svgComponents is set.
// Transformer globs are order-sensitive, so keys are inserted one at a time.
func (e *Emitter) WriteParcelRC(ctx context.Context, svgComponents bool) (bool, error) {
	if !svgComponents {
		return false, nil
	}

	doc := manifest.NewDocument()
	if err := doc.Set("extends", "@parcel/config-default"); err != nil {
		return false, err
	}
	if err := doc.Set(manifest.Key("transformers", "jsx:*.svg"), []string{"...", SVGTransformer}); err != nil {
		return false, err
	}
	// https://github.com/parcel-bundler/parcel/issues/7587
	if err := doc.Set(manifest.Key("transformers", "jsx:*"), []string{"..."}); err != nil {
		return false, err
	}

	if err := doc.WriteTo(ctx, e.fs, e.path(ParcelRCFile)); err != nil {
		return false, err
	}
	return true, nil
}

package emit

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/indaco/cra2parcel/internal/manifest"
	"github.com/tidwall/gjson"
)

// PostCSS plugins CRA configured implicitly.
const (
	NormalizePlugin = "postcss-normalize"
	TailwindPlugin  = "tailwindcss"

	// TailwindVersion is the range CRA 5 supported.
	TailwindVersion = "^3.0.2"
)

// PostCSSResult reports what MigratePostCSS changed.
type PostCSSResult struct {
	// Added lists the plugins appended to .postcssrc, in order.
	Added []string

	// Tailwind is true when tailwind.config.js was found.
	Tailwind bool

	// Written is true when .postcssrc was rewritten.
	Written bool
}

// MigratePostCSS adds the PostCSS plugins CRA used to apply implicitly.
// An existing .postcssrc is merged into; if it cannot be read or parsed, a
// fresh config is started. Plugins are not deduplicated, so a second run
// repeats entries. The file is written at most once, and only if a plugin was
// added.
func (e *Emitter) MigratePostCSS(ctx context.Context, importNormalize bool) (PostCSSResult, error) {
	var result PostCSSResult

	doc := e.loadPostCSSRC(ctx)
	plugins := doc.Get("plugins")
	if !plugins.Exists() || plugins.Type == gjson.Null {
		if err := doc.SetRaw("plugins", []byte("[]")); err != nil {
			return result, err
		}
	}

	if importNormalize {
		if err := addPostCSSPlugin(doc, NormalizePlugin); err != nil {
			return result, err
		}
		result.Added = append(result.Added, NormalizePlugin)
	}

	if e.exists(ctx, TailwindConfig) {
		result.Tailwind = true
		if err := addPostCSSPlugin(doc, TailwindPlugin); err != nil {
			return result, err
		}
		result.Added = append(result.Added, TailwindPlugin)

		pkg, err := e.loadManifest(ctx)
		if err != nil {
			return result, err
		}
		if err := pkg.SetDevDependency(TailwindPlugin, TailwindVersion); err != nil {
			return result, err
		}
		if err := pkg.Save(ctx, e.fs); err != nil {
			return result, err
		}
	}

	if len(result.Added) == 0 {
		return result, nil
	}

	if err := doc.WriteTo(ctx, e.fs, e.path(PostCSSRCFile)); err != nil {
		return result, err
	}
	result.Written = true
	return result, nil
}

// loadPostCSSRC reads .postcssrc as JSON, falling back to YAML, and finally
// to an empty config.
func (e *Emitter) loadPostCSSRC(ctx context.Context) *manifest.Document {
	data, err := e.fs.ReadFile(ctx, e.path(PostCSSRCFile))
	if err != nil {
		return manifest.NewDocument()
	}

	if doc, err := manifest.Parse(data); err == nil {
		return doc
	}

	// YAMLToJSON keeps mapping order.
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return manifest.NewDocument()
	}
	doc, err := manifest.Parse(raw)
	if err != nil {
		return manifest.NewDocument()
	}
	return doc
}

// addPostCSSPlugin appends name to an array-style plugin list, or adds it
// with empty options to an object-style one.
func addPostCSSPlugin(doc *manifest.Document, name string) error {
	plugins := doc.Get("plugins")
	switch {
	case plugins.IsArray():
		return doc.Append("plugins", name)
	case plugins.IsObject():
		return doc.SetRaw(manifest.Key("plugins", name), []byte("{}"))
	default:
		return fmt.Errorf("%s: \"plugins\" must be an array or an object", PostCSSRCFile)
	}
}

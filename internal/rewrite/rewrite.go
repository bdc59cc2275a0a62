// Package rewrite holds the text-level source transformations and detectors.
// Everything here works on raw bytes with regular expressions; callers only
// depend on the Rewriter and Detector interfaces so a syntax-aware
// implementation can replace these later.
package rewrite

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

// Rewriter transforms one source file.
type Rewriter interface {
	// Rewrite returns the transformed source and whether anything changed.
	// When changed is false, out is src.
	Rewrite(src []byte) (out []byte, changed bool)
}

// Detector reports whether a file uses a feature.
type Detector interface {
	Detect(src []byte) bool
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func(src []byte) bool

// Detect calls f.
func (f DetectorFunc) Detect(src []byte) bool { return f(src) }

// JSXPrefix is spliced after the opening quote of SVG specifiers so the
// bundler routes them through the React SVG transformer.
const JSXPrefix = "jsx:"

// sourceExtensions are the files scanned for imports.
var sourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// IsSourceFile reports whether path has a JavaScript or TypeScript extension.
func IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range sourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsStyleFile reports whether path is a CSS file.
func IsStyleFile(path string) bool {
	return strings.HasSuffix(path, ".css")
}

// svgComponentPattern matches `import [Default,] { ReactComponent [as Alias] } from 'path';\n`.
// Groups: 1 default import, 2 alias, 3 quoted specifier.
var svgComponentPattern = regexp.MustCompile(
	`import\s*(?:(.*?),)?\s*\{[\s\n]*ReactComponent(?:\s+as\s+([^\s,]*?))?[\s\n]*\}[\s\n]+from\s+(['"].*?['"]);?\n`)

// SVGComponentRewriter splits `ReactComponent` imports of SVG files into a
// default import of the original specifier and a default import of the
// jsx:-prefixed specifier.
type SVGComponentRewriter struct{}

// Verify SVGComponentRewriter implements Rewriter.
var _ Rewriter = SVGComponentRewriter{}

// Rewrite rewrites every match in src. The specifier is assumed to start with
// a quote; the prefix is inserted right after its first byte.
func (SVGComponentRewriter) Rewrite(src []byte) ([]byte, bool) {
	matches := svgComponentPattern.FindAllSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, false
	}

	var out bytes.Buffer
	out.Grow(len(src) + len(matches)*32)

	last := 0
	for _, m := range matches {
		out.Write(src[last:m[0]])

		defaultName := group(src, m, 1)
		componentName := group(src, m, 2)
		specifier := group(src, m, 3)

		if defaultName != "" {
			out.WriteString("import " + defaultName + " from " + specifier + ";\n")
		}
		if componentName == "" {
			componentName = "ReactComponent"
		}
		prefixed := specifier[:1] + JSXPrefix + specifier[1:]
		out.WriteString("import " + componentName + " from " + prefixed + ";\n")

		last = m[1]
	}
	out.Write(src[last:])

	return out.Bytes(), true
}

// group returns submatch n, or "" when the group did not participate.
func group(src []byte, loc []int, n int) string {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return ""
	}
	return string(src[start:end])
}

// macroImportPattern matches an import whose specifier ends in ".macro".
// The import clause may span lines.
var macroImportPattern = regexp.MustCompile(`import(?:.|\n)*?from\s+['"].*?\.macro['"]`)

// MacroDetector finds babel macro imports.
var MacroDetector Detector = DetectorFunc(macroImportPattern.Match)

// NormalizeDirective is the CRA-specific CSS at-rule replaced by postcss-normalize.
const NormalizeDirective = "@import-normalize"

// NormalizeDetector finds the normalize directive in CSS.
var NormalizeDetector Detector = DetectorFunc(func(src []byte) bool {
	return bytes.Contains(src, []byte(NormalizeDirective))
})

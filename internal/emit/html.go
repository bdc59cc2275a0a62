package emit

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/indaco/cra2parcel/internal/core"
)

// templateComments are the explanatory comment blocks in the CRA index.html.
// Only the first occurrence of each is removed.
var templateComments = []*regexp.Regexp{
	regexp.MustCompile(`<!--\n\s*Notice the use of(.|\n)*?-->`),
	regexp.MustCompile(`<!--\n\s*This HTML file is a template(.|\n)*?-->`),
}

// PublicURLPlaceholder is substituted by CRA at build time; Parcel resolves
// paths relative to the HTML file instead.
const PublicURLPlaceholder = "%PUBLIC_URL%"

// MigrateHTML rewrites the HTML entry for Parcel and returns the script
// source injected before </body>.
func (e *Emitter) MigrateHTML(ctx context.Context) (string, error) {
	path := e.path(HTMLEntryFile)
	data, err := e.fs.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}

	entry := "../src/index.js"
	if e.exists(ctx, "src/index.tsx") {
		entry = "../src/index.tsx"
	}

	html := string(data)
	for _, re := range templateComments {
		html = replaceFirst(re, html, "")
	}
	html = strings.ReplaceAll(html, PublicURLPlaceholder, ".")
	html = strings.Replace(html, "</body>",
		fmt.Sprintf("  <script type=\"module\" src=%q></script>\n  </body>", entry), 1)

	if err := e.fs.WriteFile(ctx, path, []byte(html), core.PermFile); err != nil {
		return "", fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return entry, nil
}

// replaceFirst replaces the leftmost match of re in s.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

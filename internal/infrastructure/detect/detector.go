package detect

import (
	"os"
	"path/filepath"
	"strings"

	"loghook/internal/domain"
	"loghook/internal/ports"
)

type toolPattern struct {
	name        string
	configFiles []string
	dependency  string
}

// patterns is priority-ordered: most-specific frameworks first, then generic
// bundlers, then language/runtime signals. A framework built on a bundler
// must surface before the bundler so callers render framework guidance
// first; the bundler signal is deliberately not suppressed.
var patterns = []toolPattern{
	{"next", []string{"next.config.js", "next.config.mjs", "next.config.ts"}, `"next"`},
	{"nuxt", []string{"nuxt.config.js", "nuxt.config.ts"}, `"nuxt"`},
	{"gatsby", []string{"gatsby-config.js", "gatsby-config.ts"}, `"gatsby"`},
	{"astro", []string{"astro.config.mjs", "astro.config.ts"}, `"astro"`},
	{"sveltekit", []string{"svelte.config.js"}, `"@sveltejs/kit"`},
	{"remix", []string{"remix.config.js"}, `"@remix-run/`},
	{"vite", []string{"vite.config.js", "vite.config.ts", "vite.config.mjs"}, `"vite"`},
	{"webpack", []string{"webpack.config.js", "webpack.config.cjs", "webpack.config.ts"}, `"webpack"`},
	{"rollup", []string{"rollup.config.js", "rollup.config.mjs"}, `"rollup"`},
	{"parcel", []string{".parcelrc"}, `"parcel"`},
	{"esbuild", nil, `"esbuild"`},
	{"typescript", []string{"tsconfig.json"}, `"typescript"`},
	{"deno", []string{"deno.json", "deno.jsonc"}, ""},
	{"bun", []string{"bunfig.toml", "bun.lockb"}, ""},
	{"node", []string{"package.json"}, ""},
}

// guidance maps a detected tool to manifest-integration hints, rendered
// framework-first by the detect command.
var guidance = map[string]string{
	"next":       "add the capture hook to next.config.js via NODE_OPTIONS in your dev script",
	"nuxt":       "reference the capture hook from the dev script in package.json",
	"gatsby":     "prefix the develop script with the capture NODE_OPTIONS assignment",
	"astro":      "prefix the dev script with the capture NODE_OPTIONS assignment",
	"sveltekit":  "prefix the dev script with the capture NODE_OPTIONS assignment",
	"remix":      "prefix the dev script with the capture NODE_OPTIONS assignment",
	"vite":       "vite dev runs under node; a shell-level install covers it automatically",
	"webpack":    "webpack dev-server runs under node; a shell-level install covers it",
	"rollup":     "rollup watch runs under node; a shell-level install covers it",
	"parcel":     "parcel serve runs under node; a shell-level install covers it",
	"esbuild":    "esbuild runs under node; a shell-level install covers it",
	"typescript": "ts-node and tsx honor NODE_OPTIONS; a shell-level install covers them",
	"deno":       "deno does not honor NODE_OPTIONS; wire the hook through --import instead",
	"bun":        "bun honors NODE_OPTIONS for node-compat scripts only",
	"node":       "node honors NODE_OPTIONS; a shell-level install covers every launch",
}

// Detector infers which build tools and runtimes a project uses, independent
// of the installer. Detection failure is never fatal: an empty result means
// manual setup.
type Detector struct{}

// NewDetector builds a detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect implements ports.ToolDetector. A tool is detected when any of its
// canonical config files exists in projectDir, or when its package name
// appears in the project manifest. The config-file path wins as confidence
// source when both hold.
func (d *Detector) Detect(projectDir string) ([]domain.DetectedTool, error) {
	manifest := readManifest(projectDir)

	var tools []domain.DetectedTool
	for _, p := range patterns {
		var configFile string
		for _, name := range p.configFiles {
			path := filepath.Join(projectDir, name)
			if _, err := os.Stat(path); err == nil {
				configFile = path
				break
			}
		}
		inManifest := p.dependency != "" && strings.Contains(manifest, p.dependency)

		switch {
		case configFile != "":
			tools = append(tools, domain.DetectedTool{
				Name:             p.name,
				ConfigFile:       configFile,
				ConfidenceSource: domain.ConfigFilePresent,
			})
		case inManifest:
			tools = append(tools, domain.DetectedTool{
				Name:             p.name,
				ConfidenceSource: domain.ManifestDependency,
			})
		}
	}
	return tools, nil
}

// Guidance returns manifest-integration hints for a detected tool name.
func Guidance(name string) string {
	return guidance[name]
}

func readManifest(projectDir string) string {
	data, err := os.ReadFile(filepath.Join(projectDir, "package.json"))
	if err != nil {
		return ""
	}
	return string(data)
}

var _ ports.ToolDetector = (*Detector)(nil)

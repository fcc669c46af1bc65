package headerstamp

import (
	"os"
	"path/filepath"
	"time"

	"golang.org/x/tools/go/analysis"

	"github.com/samber/headerstamp/internal/engine"
)

// Plugin configuration structure expected from golangci-lint custom settings.
type pluginConfig struct {
	Template      string   `mapstructure:"template" yaml:"template"`
	ExcludedFiles []string `mapstructure:"excluded_files" yaml:"excluded_files"`
}

// New implements golangci-lint plugin entrypoint.
func New(conf any) ([]*analysis.Analyzer, error) { //nolint: revive
	cfg := engine.DefaultConfig()
	applySettings(&cfg, conf)
	return []*analysis.Analyzer{buildAnalyzer(cfg)}, nil
}

func applySettings(cfg *engine.Config, conf any) {
	m, ok := conf.(map[string]any)
	if !ok {
		return
	}
	if s, ok := m["template"].(string); ok && s != "" {
		cfg.Template = s
	}
	if list, ok := m["excluded_files"].([]any); ok {
		for _, e := range list {
			if s, ok := e.(string); ok {
				cfg.ExcludedFiles = append(cfg.ExcludedFiles, s)
			}
		}
	}
}

func buildAnalyzer(cfg engine.Config) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name: "headerstamp",
		Doc:  "checks that Go files start with a well-formed copyright header",
		Run: func(pass *analysis.Pass) (interface{}, error) {
			for _, f := range pass.Files {
				path := pass.Fset.File(f.Pos()).Name()
				content, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				if !engine.IsEligible(filepath.Base(path), "go", "go", cfg) {
					continue
				}
				state := engine.Classify(string(content))
				if state.Kind == engine.WellFormed {
					continue
				}
				header := engine.Render(cfg.Template, cfg, time.Now())
				pass.Report(analysis.Diagnostic{
					Pos:     f.Package,
					Message: "missing or incorrect file header",
					SuggestedFixes: []analysis.SuggestedFix{{
						Message: "Add header",
						TextEdits: []analysis.TextEdit{{
							Pos:     f.Package,
							End:     f.Package,
							NewText: []byte(header),
						}},
					}},
				})
			}
			return nil, nil
		},
	}
}

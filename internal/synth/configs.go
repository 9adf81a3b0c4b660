package synth

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/options"
)

// TSConfig is tsconfig.json. Field order is the output order.
type TSConfig struct {
	CompilerOptions TSCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

// TSCompilerOptions is the compilerOptions block of tsconfig.json.
type TSCompilerOptions struct {
	Target                           string   `json:"target"`
	Module                           string   `json:"module"`
	Lib                              []string `json:"lib"`
	JSX                              string   `json:"jsx,omitempty"`
	OutDir                           string   `json:"outDir"`
	RootDir                          string   `json:"rootDir"`
	Strict                           bool     `json:"strict"`
	EsModuleInterop                  bool     `json:"esModuleInterop"`
	SkipLibCheck                     bool     `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool     `json:"forceConsistentCasingInFileNames"`
	ResolveJSONModule                bool     `json:"resolveJsonModule"`
	ModuleResolution                 string   `json:"moduleResolution"`
}

// ESLintConfig is .eslintrc.json.
type ESLintConfig struct {
	Env           map[string]bool     `json:"env"`
	Extends       []string            `json:"extends"`
	Parser        string              `json:"parser,omitempty"`
	ParserOptions ESLintParserOptions `json:"parserOptions"`
	Plugins       []string            `json:"plugins"`
	Rules         map[string]any      `json:"rules"`
}

// ESLintParserOptions is the parserOptions block of .eslintrc.json.
type ESLintParserOptions struct {
	EcmaVersion string `json:"ecmaVersion"`
	SourceType  string `json:"sourceType"`
}

// PrettierConfig is .prettierrc.
type PrettierConfig struct {
	Semi          bool   `json:"semi"`
	TrailingComma string `json:"trailingComma"`
	SingleQuote   bool   `json:"singleQuote"`
	PrintWidth    int    `json:"printWidth"`
	TabWidth      int    `json:"tabWidth"`
}

// HuskyConfig is .huskyrc.json.
type HuskyConfig struct {
	Hooks map[string]string `json:"hooks"`
}

// PreCommitConfig is .pre-commit-config.yaml.
type PreCommitConfig struct {
	Repos []PreCommitRepo `yaml:"repos"`
}

// PreCommitRepo is one hook repository entry.
type PreCommitRepo struct {
	Repo  string          `yaml:"repo"`
	Rev   string          `yaml:"rev"`
	Hooks []PreCommitHook `yaml:"hooks"`
}

// PreCommitHook selects a hook from a repository.
type PreCommitHook struct {
	ID string `yaml:"id"`
}

// viteFrameworks are the frameworks that get a vite.config.js, with the
// plugin import and call each one needs.
var viteFrameworks = map[string]struct{ importLine, call string }{
	"vite":   {},
	"vue":    {"import vue from '@vitejs/plugin-vue'", "vue()"},
	"react":  {"import react from '@vitejs/plugin-react'", "react()"},
	"svelte": {"import { svelte } from '@sveltejs/vite-plugin-svelte'", "svelte()"},
}

var reactFamily = map[string]bool{"react": true, "next": true, "remix": true}

// SecondaryConfigs returns the compiler and bundler configuration files.
func (s *Synthesizer) SecondaryConfigs(r options.Resolved) ([]Artifact, error) {
	var out []Artifact

	if r.IsTypeScript() {
		cfg := TSConfig{
			CompilerOptions: TSCompilerOptions{
				Target:                           "ES2020",
				Module:                           "commonjs",
				Lib:                              []string{"ES2020"},
				OutDir:                           "./dist",
				RootDir:                          "./src",
				Strict:                           true,
				EsModuleInterop:                  true,
				SkipLibCheck:                     true,
				ForceConsistentCasingInFileNames: true,
				ResolveJSONModule:                true,
				ModuleResolution:                 "node",
			},
			Include: []string{"src/**/*"},
			Exclude: []string{"node_modules", "dist"},
		}
		if reactFamily[r.Framework] {
			cfg.CompilerOptions.Lib = append(cfg.CompilerOptions.Lib, "DOM")
			cfg.CompilerOptions.JSX = "react-jsx"
		}
		b, err := marshalJSON(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshal tsconfig.json: %w", err)
		}
		out = append(out, Artifact{Path: "tsconfig.json", Content: b})
	}

	if r.Framework == "next" {
		out = append(out, Artifact{Path: "next.config.js", Content: `/** @type {import('next').NextConfig} */
const nextConfig = {
  reactStrictMode: true,
}

module.exports = nextConfig
`})
	}

	if plugin, ok := viteFrameworks[r.Framework]; ok {
		var b strings.Builder
		b.WriteString("import { defineConfig } from 'vite'\n")
		if plugin.importLine != "" {
			b.WriteString(plugin.importLine + "\n")
		}
		fmt.Fprintf(&b, "\nexport default defineConfig({\n  plugins: [%s],\n})\n", plugin.call)
		out = append(out, Artifact{Path: "vite.config.js", Content: b.String()})
	}

	return out, nil
}

// LinterConfigs returns the configuration files for the selected linters.
func (s *Synthesizer) LinterConfigs(r options.Resolved) ([]Artifact, error) {
	if !r.IsJavaScriptFamily() {
		return nil, nil
	}
	var out []Artifact

	if r.HasLinter(catalog.ESLint) {
		cfg := ESLintConfig{
			Env:     map[string]bool{"browser": true, "es2021": true, "node": true},
			Extends: []string{"eslint:recommended"},
			ParserOptions: ESLintParserOptions{
				EcmaVersion: "latest",
				SourceType:  "module",
			},
			Plugins: []string{},
			Rules:   map[string]any{},
		}
		if r.IsTypeScript() {
			cfg.Extends = append(cfg.Extends, "plugin:@typescript-eslint/recommended")
			cfg.Parser = "@typescript-eslint/parser"
			cfg.Plugins = append(cfg.Plugins, "@typescript-eslint")
		}
		switch r.Framework {
		case "react", "next":
			cfg.Extends = append(cfg.Extends, "plugin:react/recommended", "plugin:react-hooks/recommended")
		case "vue", "nuxt":
			cfg.Extends = append(cfg.Extends, "plugin:vue/vue3-essential")
		}
		if r.HasLinter(catalog.Prettier) {
			cfg.Extends = append(cfg.Extends, "plugin:prettier/recommended")
		}
		b, err := marshalJSON(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshal .eslintrc.json: %w", err)
		}
		out = append(out, Artifact{Path: ".eslintrc.json", Content: b})
	}

	if r.HasLinter(catalog.Prettier) {
		b, err := marshalJSON(PrettierConfig{
			Semi:          true,
			TrailingComma: "es5",
			SingleQuote:   true,
			PrintWidth:    100,
			TabWidth:      2,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal .prettierrc: %w", err)
		}
		out = append(out, Artifact{Path: ".prettierrc", Content: b})
	}

	return out, nil
}

// HookConfigs returns the version-control hook configuration. Languages
// without a hook format produce a warning instead of a file.
func (s *Synthesizer) HookConfigs(r options.Resolved) ([]Artifact, []string, error) {
	switch {
	case r.IsJavaScriptFamily():
		run := scriptRunner(r.PackageManager)
		preCommit := testCommand(r)
		switch {
		case r.HasLinter(catalog.ESLint):
			preCommit = run + " lint"
		case r.HasLinter(catalog.Prettier):
			preCommit = run + " format"
		}
		b, err := marshalJSON(HuskyConfig{Hooks: map[string]string{
			"pre-commit": preCommit,
			"pre-push":   testCommand(r),
		}})
		if err != nil {
			return nil, nil, fmt.Errorf("marshal .huskyrc.json: %w", err)
		}
		return []Artifact{{Path: ".huskyrc.json", Content: b}}, nil, nil

	case r.Language == catalog.Python:
		cfg := PreCommitConfig{Repos: []PreCommitRepo{
			{Repo: "https://github.com/psf/black", Rev: s.version(PyPI, "black"), Hooks: []PreCommitHook{{ID: "black"}}},
			{Repo: "https://github.com/pycqa/flake8", Rev: s.version(PyPI, "flake8"), Hooks: []PreCommitHook{{ID: "flake8"}}},
		}}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, nil, fmt.Errorf("marshal .pre-commit-config.yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, nil, fmt.Errorf("marshal .pre-commit-config.yaml: %w", err)
		}
		return []Artifact{{Path: ".pre-commit-config.yaml", Content: buf.String()}}, nil, nil

	default:
		return nil, []string{fmt.Sprintf("git hooks are not supported for %s; skipped", catalog.LanguageName(r.Language))}, nil
	}
}

package synth

import "github.com/blazestart/blazestart/internal/catalog"

// ruleKey selects a framework rule by exact (language, framework) match.
type ruleKey struct {
	language  string
	framework string
}

// Crate is a Rust dependency with optional cargo features.
type Crate struct {
	Name     string
	Features []string
}

// FrameworkRule is the data record describing what one framework adds to
// a project manifest. Versions are resolved through the VersionSource.
type FrameworkRule struct {
	Dependencies    []string
	DevDependencies []string
	Scripts         map[string]string
	ESModule        bool

	Requirements []string
	GoRequires   []string
	Crates       []Crate
}

var viteScripts = map[string]string{
	"dev":     "vite",
	"build":   "vite build",
	"preview": "vite preview",
}

var frameworkRules = buildFrameworkRules()

func buildFrameworkRules() map[ruleKey]FrameworkRule {
	rules := make(map[ruleKey]FrameworkRule)

	for _, lang := range []string{catalog.JavaScript, catalog.TypeScript} {
		nodeDev := "nodemon src/index.js"
		if lang == catalog.TypeScript {
			nodeDev = "ts-node-dev src/index.ts"
		}
		add := func(fw string, r FrameworkRule) {
			rules[ruleKey{lang, fw}] = r
		}

		add("express", FrameworkRule{
			Dependencies: []string{"express", "cors", "dotenv"},
			Scripts:      map[string]string{"dev": nodeDev},
		})
		add("fastify", FrameworkRule{
			Dependencies: []string{"fastify", "@fastify/cors", "@fastify/helmet"},
			Scripts:      map[string]string{"dev": nodeDev},
		})
		add("koa", FrameworkRule{
			Dependencies: []string{"koa", "koa-router", "koa-bodyparser"},
			Scripts:      map[string]string{"dev": nodeDev},
		})
		add("react", FrameworkRule{
			Dependencies:    []string{"react", "react-dom"},
			DevDependencies: []string{"vite", "@vitejs/plugin-react"},
			Scripts:         viteScripts,
		})
		add("next", FrameworkRule{
			Dependencies: []string{"next", "react", "react-dom"},
			Scripts: map[string]string{
				"dev":   "next dev",
				"build": "next build",
				"start": "next start",
				"lint":  "next lint",
			},
		})
		add("vue", FrameworkRule{
			Dependencies:    []string{"vue"},
			DevDependencies: []string{"vite", "@vitejs/plugin-vue"},
			Scripts:         viteScripts,
			ESModule:        true,
		})
		add("nuxt", FrameworkRule{
			DevDependencies: []string{"nuxt"},
			Scripts: map[string]string{
				"dev":      "nuxt dev",
				"build":    "nuxt build",
				"preview":  "nuxt preview",
				"generate": "nuxt generate",
			},
		})
		add("svelte", FrameworkRule{
			DevDependencies: []string{"svelte", "vite", "@sveltejs/vite-plugin-svelte"},
			Scripts:         viteScripts,
			ESModule:        true,
		})
		add("sveltekit", FrameworkRule{
			DevDependencies: []string{"@sveltejs/adapter-auto", "@sveltejs/kit", "@sveltejs/vite-plugin-svelte", "svelte", "vite"},
			Scripts: map[string]string{
				"dev":     "vite dev",
				"build":   "vite build",
				"preview": "vite preview",
			},
			ESModule: true,
		})
		add("remix", FrameworkRule{
			Dependencies:    []string{"@remix-run/node", "@remix-run/react", "@remix-run/serve", "react", "react-dom"},
			DevDependencies: []string{"@remix-run/dev"},
			Scripts: map[string]string{
				"dev":   "remix dev",
				"build": "remix build",
				"start": "remix-serve build",
			},
		})
		add("astro", FrameworkRule{
			Dependencies: []string{"astro"},
			Scripts: map[string]string{
				"dev":     "astro dev",
				"build":   "astro build",
				"preview": "astro preview",
			},
		})
		add("vite", FrameworkRule{
			DevDependencies: []string{"vite"},
			Scripts:         viteScripts,
			ESModule:        true,
		})
	}

	rules[ruleKey{catalog.TypeScript, "angular"}] = FrameworkRule{
		Dependencies: []string{
			"@angular/animations", "@angular/common", "@angular/compiler", "@angular/core",
			"@angular/forms", "@angular/platform-browser", "@angular/platform-browser-dynamic",
			"@angular/router", "rxjs", "tslib", "zone.js",
		},
		DevDependencies: []string{"@angular-devkit/build-angular", "@angular/cli", "@angular/compiler-cli"},
		Scripts: map[string]string{
			"ng":    "ng",
			"start": "ng serve",
			"build": "ng build",
			"test":  "ng test",
		},
	}
	rules[ruleKey{catalog.TypeScript, "nestjs"}] = FrameworkRule{
		Dependencies:    []string{"@nestjs/common", "@nestjs/core", "@nestjs/platform-express", "reflect-metadata", "rxjs"},
		DevDependencies: []string{"@nestjs/cli"},
		Scripts: map[string]string{
			"start": "nest start",
			"dev":   "nest start --watch",
			"build": "nest build",
		},
	}

	rules[ruleKey{catalog.Python, "flask"}] = FrameworkRule{
		Requirements: []string{"Flask", "python-dotenv"},
		Scripts:      map[string]string{"dev": "flask --app src/main run --debug"},
	}
	rules[ruleKey{catalog.Python, "django"}] = FrameworkRule{
		Requirements: []string{"Django"},
	}
	rules[ruleKey{catalog.Python, "fastapi"}] = FrameworkRule{
		Requirements: []string{"fastapi", "uvicorn"},
		Scripts:      map[string]string{"dev": "uvicorn src.main:app --reload"},
	}
	rules[ruleKey{catalog.Python, "pyramid"}] = FrameworkRule{
		Requirements: []string{"pyramid", "waitress"},
	}

	rules[ruleKey{catalog.Go, "gin"}] = FrameworkRule{GoRequires: []string{"github.com/gin-gonic/gin"}}
	rules[ruleKey{catalog.Go, "echo"}] = FrameworkRule{GoRequires: []string{"github.com/labstack/echo/v4"}}
	rules[ruleKey{catalog.Go, "fiber"}] = FrameworkRule{GoRequires: []string{"github.com/gofiber/fiber/v2"}}

	rules[ruleKey{catalog.Rust, "actix"}] = FrameworkRule{
		Crates: []Crate{{Name: "actix-web"}, {Name: "serde", Features: []string{"derive"}}, {Name: "serde_json"}},
	}
	rules[ruleKey{catalog.Rust, "rocket"}] = FrameworkRule{
		Crates: []Crate{{Name: "rocket"}},
	}
	rules[ruleKey{catalog.Rust, "axum"}] = FrameworkRule{
		Crates: []Crate{{Name: "axum"}, {Name: "tokio", Features: []string{"full"}}},
	}

	return rules
}

// LookupRule returns the framework rule for the pair. A framework with no
// rule, including an unknown one, behaves exactly like "none".
func LookupRule(language, framework string) (FrameworkRule, bool) {
	r, ok := frameworkRules[ruleKey{language, framework}]
	return r, ok
}

// typeDefinitions lists the TypeScript-only devDependencies per framework.
var typeDefinitions = map[string][]string{
	"express": {"@types/express", "@types/cors", "ts-node-dev"},
	"fastify": {"ts-node-dev"},
	"koa":     {"@types/koa", "@types/koa-router", "@types/koa-bodyparser", "ts-node-dev"},
	"react":   {"@types/react", "@types/react-dom"},
	"next":    {"@types/react", "@types/react-dom"},
	"remix":   {"@types/react", "@types/react-dom"},
}

// frameworkDirs lists the extra directories created for web frameworks.
var frameworkDirs = map[string][]string{
	"react":   {"src/components", "src/pages", "src/styles", "public"},
	"next":    {"src/components", "src/pages", "src/styles", "public"},
	"vue":     {"src/components", "src/pages", "src/styles", "public"},
	"express": {"src/routes", "src/controllers", "src/models", "src/middleware"},
	"fastapi": {"src/routes", "src/controllers", "src/models", "src/middleware"},
	"flask":   {"src/routes", "src/controllers", "src/models", "src/middleware"},
}

// baseDirs are created for every project.
var baseDirs = []string{"src", "tests", "docs"}

// languageDirs are created for every project of a language.
var languageDirs = map[string][]string{
	catalog.Python: {"src/utils", "requirements"},
}

// Directories returns the directory plan for a language/framework pair,
// in creation order and without duplicates.
func Directories(language, framework string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, group := range [][]string{baseDirs, frameworkDirs[framework], languageDirs[language]} {
		for _, d := range group {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

package catalog

import "slices"

// Language identifiers.
const (
	JavaScript = "javascript"
	TypeScript = "typescript"
	Python     = "python"
	Go         = "go"
	Rust       = "rust"
	Ruby       = "ruby"
	CSharp     = "csharp"
	PHP        = "php"
	Java       = "java"
	Kotlin     = "kotlin"
	Swift      = "swift"
	Cpp        = "cpp"
)

// Language describes a supported programming language.
type Language struct {
	ID         string
	Name       string
	Extensions []string
}

var languages = []Language{
	{ID: JavaScript, Name: "JavaScript", Extensions: []string{"js", "jsx"}},
	{ID: TypeScript, Name: "TypeScript", Extensions: []string{"ts", "tsx"}},
	{ID: Python, Name: "Python", Extensions: []string{"py"}},
	{ID: Go, Name: "Go", Extensions: []string{"go"}},
	{ID: Rust, Name: "Rust", Extensions: []string{"rs"}},
	{ID: Ruby, Name: "Ruby", Extensions: []string{"rb"}},
	{ID: CSharp, Name: "C#", Extensions: []string{"cs"}},
	{ID: PHP, Name: "PHP", Extensions: []string{"php"}},
	{ID: Java, Name: "Java", Extensions: []string{"java"}},
	{ID: Kotlin, Name: "Kotlin", Extensions: []string{"kt"}},
	{ID: Swift, Name: "Swift", Extensions: []string{"swift"}},
	{ID: Cpp, Name: "C++", Extensions: []string{"cpp", "cc", "h"}},
}

// Languages returns every supported language in display order.
func Languages() []Language {
	return slices.Clone(languages)
}

// LanguageIDs returns the identifiers of every supported language.
func LanguageIDs() []string {
	ids := make([]string, len(languages))
	for i, l := range languages {
		ids[i] = l.ID
	}
	return ids
}

// LookupLanguage returns the language with the given identifier.
func LookupLanguage(id string) (Language, bool) {
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageName returns the display name for id, or id itself when unknown.
func LanguageName(id string) string {
	if l, ok := LookupLanguage(id); ok {
		return l.Name
	}
	return id
}

// IsJavaScriptFamily reports whether the language uses the npm ecosystem.
func IsJavaScriptFamily(id string) bool {
	return id == JavaScript || id == TypeScript
}

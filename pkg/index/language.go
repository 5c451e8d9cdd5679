// File: pkg/index/language.go
package index

import (
	"path/filepath"
	"strings"
)

// DefaultLanguage is the fence tag used when the extension is not recognized.
const DefaultLanguage = "text"

// languageByExtension maps lowercased file extensions to Markdown fence tags.
var languageByExtension = map[string]string{
	// Python
	".py":  "python",
	".pyi": "python",
	".pyx": "python",
	".pxd": "python",
	".pxi": "python",
	".pyd": "python",
	// JavaScript/TypeScript
	".js":  "javascript",
	".jsx": "jsx",
	".ts":  "typescript",
	".tsx": "tsx",
	// Web
	".html": "html",
	".htm":  "html",
	".css":  "css",
	".scss": "scss",
	".sass": "sass",
	".less": "less",
	// XML
	".xml":   "xml",
	".xhtml": "xml",
	// Shell
	".sh":   "bash",
	".bash": "bash",
	".zsh":  "bash",
	// Configuration
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".ini":  "ini",
	".cfg":  "ini",
	// Documentation
	".md":  "markdown",
	".rst": "rst",
	".txt": "text",
	// SQL
	".sql": "sql",
	// C/C++
	".c":   "c",
	".cpp": "cpp",
	".h":   "cpp",
	".hpp": "cpp",
	// Java
	".java":  "java",
	".class": "java",
	// Ruby
	".rb":  "ruby",
	".rbw": "ruby",
	// PHP
	".php":   "php",
	".phtml": "php",
	// Go
	".go": "go",
	// Rust
	".rs": "rust",
	// Swift
	".swift": "swift",
	// Kotlin
	".kt":  "kotlin",
	".kts": "kotlin",
}

// LanguageFor returns the fence tag for a file path based on its extension.
// The lookup is case-insensitive; unrecognized extensions fall back to
// DefaultLanguage.
func LanguageFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return DefaultLanguage
}

package runner

// Extension-to-language table for the eligibility filter. Unlisted
// extensions map to the empty language id, so only the extension side of the
// filter can match them.
var languageByExt = map[string]string{
	"go":    "go",
	"c":     "c",
	"h":     "c",
	"cc":    "cpp",
	"cpp":   "cpp",
	"cxx":   "cpp",
	"hpp":   "cpp",
	"cs":    "csharp",
	"java":  "java",
	"kt":    "kotlin",
	"js":    "javascript",
	"jsx":   "javascriptreact",
	"mjs":   "javascript",
	"cjs":   "javascript",
	"ts":    "typescript",
	"tsx":   "typescriptreact",
	"py":    "python",
	"rb":    "ruby",
	"rs":    "rust",
	"php":   "php",
	"swift": "swift",
	"scala": "scala",
	"sh":    "shellscript",
	"bash":  "shellscript",
	"zsh":   "shellscript",
	"pl":    "perl",
	"r":     "r",
	"lua":   "lua",
	"dart":  "dart",
	"ahk":   "ahk",
	"sql":   "sql",
	"css":   "css",
	"html":  "html",
	"vue":   "vue",
}

// LanguageID maps a bare file extension to an editor-style language id.
func LanguageID(ext string) string {
	return languageByExt[ext]
}

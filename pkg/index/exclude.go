// File: pkg/index/exclude.go
package index

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// RuleKind identifies how a rule's pattern is applied to a path.
type RuleKind int

const (
	// KindBasenameGlob matches a shell glob against the final name component.
	KindBasenameGlob RuleKind = iota
	// KindSegment matches a literal pattern against whole path components.
	KindSegment
	// KindPathGlob matches an ignore-file glob against the full relative path.
	KindPathGlob
)

// Rule is one compiled exclusion rule.
type Rule struct {
	Kind    RuleKind
	Pattern string         // Original pattern text.
	regex   *regexp.Regexp // Compiled form, set for KindPathGlob rules only.
}

// RuleSet is the ordered collection of exclusion rules for one run. Rules are
// evaluated any-match with short-circuiting; every match means exclude.
type RuleSet struct {
	rules  []Rule
	logger *zap.Logger
}

// DefaultExcludes is the static exclusion set applied to every run.
var DefaultExcludes = []string{
	".git",
	".svn",
	".hg",
	"node_modules",
	"__pycache__",
	"dist",
	"build",
	"target",
	"venv",
	".env",
	".idea",
	".vscode",
	".DS_Store",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	"*.so",
	"*.dylib",
	"*.dll",
	"*.class",
	"*.o",
	"*.a",
	"*.lib",
	"*.exe",
	"*.log",
	"*.tmp",
	"*.temp",
	"*.swp",
	"*.swo",
	"*.bak",
	"*.backup",
	"*.orig",
	"*.rej",
	"*.patch",
	"*.diff",
	"*.zip",
	"*.tar",
	"*.gz",
	"*.rar",
	"*.7z",
	"*.bz2",
	"*.xz",
	"*.tgz",
	"*.tar.gz",
	"*.tar.bz2",
	"*.tar.xz",
}

// NewRuleSet initializes an empty RuleSet with an optional logger.
func NewRuleSet(logger *zap.Logger) *RuleSet {
	if logger == nil {
		logger = zap.NewNop() // Use no-op logger if none is provided
	}
	return &RuleSet{logger: logger}
}

// AddPatterns registers exclusion patterns from the default set or the
// command line. Each pattern yields a basename-glob rule; patterns without
// glob metacharacters additionally yield a segment rule, so a bare directory
// name like ".git" excludes anything beneath it at any depth.
func (rs *RuleSet) AddPatterns(patterns ...string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		rs.rules = append(rs.rules, Rule{Kind: KindBasenameGlob, Pattern: p})
		if !strings.ContainsAny(p, "*?[") {
			rs.rules = append(rs.rules, Rule{Kind: KindSegment, Pattern: p})
		}
	}
	rs.logger.Debug("Compiled exclusion patterns", zap.Int("totalRules", len(rs.rules)))
}

// AddIgnoreFile loads glob patterns from a .gitignore-style file. Each
// non-empty, non-comment line becomes a full-path glob rule. This is a
// best-effort filter: negation, anchoring, and double-star semantics are
// deliberately not reproduced. A missing file is not an error.
func (rs *RuleSet) AddIgnoreFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		if os.IsNotExist(err) {
			rs.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", fpath))
			return nil
		}
		rs.logger.Error("Failed to read ignore file", zap.String("filePath", fpath), zap.Error(err))
		return fmt.Errorf("failed to read ignore file %s: %w", fpath, err)
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		re, compileErr := globToRegexp(trimmed)
		if compileErr != nil {
			rs.logger.Warn("Skipping unusable ignore pattern",
				zap.String("filePath", fpath),
				zap.Int("lineNo", i+1),
				zap.String("pattern", trimmed),
				zap.Error(compileErr))
			continue
		}
		rs.rules = append(rs.rules, Rule{Kind: KindPathGlob, Pattern: trimmed, regex: re})
	}
	rs.logger.Debug("Compiled ignore file", zap.String("filePath", fpath), zap.Int("totalRules", len(rs.rules)))
	return nil
}

// MatchesPath checks if the given root-relative path matches any rule.
func (rs *RuleSet) MatchesPath(relPath string) bool {
	matched, _ := rs.MatchesPathWithRule(relPath)
	return matched
}

// MatchesPathWithRule checks if the given path matches any exclusion rule.
// It returns a boolean indicating a match and the specific Rule that matched.
func (rs *RuleSet) MatchesPathWithRule(relPath string) (bool, *Rule) {
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)

	for i := range rs.rules {
		rule := &rs.rules[i]
		if rule.matches(normalized, base) {
			rs.logger.Debug("Path matches exclusion rule",
				zap.String("path", normalized),
				zap.String("pattern", rule.Pattern))
			return true, rule
		}
	}
	return false, nil
}

// Patterns returns the distinct basename-glob pattern texts, in insertion
// order. Used to build the filter argument for the external tree utility.
func (rs *RuleSet) Patterns() []string {
	seen := make(map[string]bool)
	var patterns []string
	for _, rule := range rs.rules {
		if rule.Kind != KindBasenameGlob || seen[rule.Pattern] {
			continue
		}
		seen[rule.Pattern] = true
		patterns = append(patterns, rule.Pattern)
	}
	return patterns
}

func (r *Rule) matches(fullPath, base string) bool {
	switch r.Kind {
	case KindBasenameGlob:
		ok, err := path.Match(r.Pattern, base)
		return err == nil && ok
	case KindSegment:
		for _, seg := range strings.Split(fullPath, "/") {
			if seg == r.Pattern {
				return true
			}
		}
		return false
	case KindPathGlob:
		return r.regex.MatchString(fullPath)
	}
	return false
}

// globToRegexp converts an fnmatch-style glob to an anchored regular
// expression. Unlike path.Match, '*' here crosses path separators.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			// Copy the character class through, translating '!' negation.
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				// Unterminated class, treat the bracket literally.
				b.WriteString(`\[`)
				continue
			}
			class := pattern[i : j+1]
			if strings.HasPrefix(class, "[!") {
				class = "[^" + class[2:]
			}
			b.WriteString(class)
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

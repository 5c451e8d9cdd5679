// File: pkg/index/tree.go
package index

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RenderTree produces a human-readable listing of the directory structure
// rooted at rootDir, respecting the exclusion rules. It prefers the host tree
// utility; any failure there is non-fatal and falls back to the internal
// renderer.
func RenderTree(rootDir string, rs *RuleSet, logger *zap.Logger) string {
	out, err := externalTree(rootDir, rs)
	if err == nil {
		return out
	}
	logger.Debug("External tree utility unavailable, using internal renderer", zap.Error(err))
	return renderTreeInternal(rootDir, rs, logger)
}

// externalTree delegates to the host tree binary, passing the exclusion
// patterns as its -I filter.
func externalTree(rootDir string, rs *RuleSet) (string, error) {
	treeBin, err := exec.LookPath("tree")
	if err != nil {
		return "", err
	}
	filter := strings.Join(rs.Patterns(), "|")
	out, err := exec.Command(treeBin, "-a", "-I", filter, rootDir).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// treeFrame is one pending node in the iterative traversal. Carrying the
// accumulated prefix per frame avoids unbounded call-stack depth on deep
// trees.
type treeFrame struct {
	path   string
	name   string
	prefix string
	isLast bool
}

// renderTreeInternal renders the tree with connector notation: a last child
// gets a corner connector, others a tee, and ancestor last-ness accumulates
// as continuation bars or blank padding in the prefix. Children are sorted
// lexicographically and excluded ones are filtered before descent.
func renderTreeInternal(rootDir string, rs *RuleSet, logger *zap.Logger) string {
	var lines []string
	stack := []treeFrame{{path: rootDir, name: filepath.Base(rootDir), isLast: true}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector := "├── "
		childPrefix := frame.prefix + "│   "
		if frame.isLast {
			connector = "└── "
			childPrefix = frame.prefix + "    "
		}
		lines = append(lines, frame.prefix+connector+frame.name)

		info, err := os.Stat(frame.path)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(frame.path)
		if err != nil {
			logger.Warn("Failed to read directory for tree rendering",
				zap.String("directory", frame.path), zap.Error(err))
			continue
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		var children []treeFrame
		for _, entry := range entries {
			childPath := filepath.Join(frame.path, entry.Name())
			relPath, relErr := filepath.Rel(rootDir, childPath)
			if relErr != nil {
				continue
			}
			if rs.MatchesPath(relPath) {
				continue
			}
			children = append(children, treeFrame{
				path:   childPath,
				name:   entry.Name(),
				prefix: childPrefix,
			})
		}
		if len(children) > 0 {
			children[len(children)-1].isLast = true
		}
		// Push in reverse so the first child is rendered next.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return strings.Join(lines, "\n")
}

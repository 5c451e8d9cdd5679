// File: pkg/index/format.go
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// FormatFile reads the file at absPath and returns its content block: the
// root-relative path as a heading, then the raw content fenced and tagged
// with its detected language. Content that is not valid UTF-8 is treated as
// binary and yields an empty block with no error, so the caller skips it
// silently.
func FormatFile(absPath, relPath string, logger *zap.Logger) (string, error) {
	fileBytes, err := os.ReadFile(absPath)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", absPath), zap.Error(err))
		return "", fmt.Errorf("error reading file %s: %w", absPath, err)
	}

	if !utf8.Valid(fileBytes) {
		logger.Debug("Skipping binary file", zap.String("filePath", relPath))
		return "", nil
	}

	language := LanguageFor(absPath)
	return fmt.Sprintf("**%s**\n\n```%s\n%s\n```\n\n",
		filepath.ToSlash(relPath), language, fileBytes), nil
}

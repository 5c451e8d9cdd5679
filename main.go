package main

import (
	"log"
	"os"
	"strings"

	"codeindex/cmd"
	"codeindex/pkg/logging"
	"codeindex/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	debug := os.Getenv("CODEINDEX_DEBUG") != ""
	if err := logging.Setup(debug, "codeindex", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	if err := cmd.Execute(logger); err != nil {
		logger.Fatal("codeindex execution failed", zap.Error(err))
	}

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}

package main

import (
	"log"
	"os"
	"path/filepath"
)

// setupLogging sends the standard logger to path. An empty path keeps stderr.
// The returned file, if any, must be closed by the caller.
func setupLogging(path string) *os.File {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("snake: ")
	if path == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Warning: could not create log directory: %v", err)
			return nil
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Warning: could not open log file: %v", err)
		return nil
	}
	log.SetOutput(file)
	return file
}

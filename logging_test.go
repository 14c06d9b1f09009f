package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingStderrByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if file := setupLogging(""); file != nil {
		file.Close()
		t.Fatal("expected nil log file for an empty path")
	}
	if log.Writer() != os.Stderr {
		t.Errorf("log output = %v, want stderr", log.Writer())
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	file := setupLogging(path)
	if file == nil {
		t.Fatal("expected a log file")
	}

	log.Println("test log message")
	file.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "test log message") {
		t.Errorf("log file content = %q", data)
	}
}

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := New(dir, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.WithField("status", 200).Debug("request")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "request") {
		t.Errorf("log line missing: %q", data)
	}
	if !strings.Contains(string(data), "status=200") {
		t.Errorf("field missing: %q", data)
	}
}

func TestLevelFallback(t *testing.T) {
	log, err := New(t.TempDir(), "chatty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v; want info fallback", log.GetLevel())
	}
}

func TestDiscardNeverPanics(t *testing.T) {
	log := Discard()
	log.Info("dropped")
	log.WithField("k", "v").Error("also dropped")
}

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// restoreLogger puts the standard logger back once the test ends
func restoreLogger(t *testing.T) {
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		// prior is the size of a log left by an earlier run, -1 for none
		prior       int64
		wantFile    bool
		wantRotated bool
	}{
		{name: "release discards", debug: false, prior: -1},
		{name: "debug creates log", debug: true, prior: -1, wantFile: true},
		{name: "debug appends small log", debug: true, prior: 128, wantFile: true},
		{name: "debug rotates oversized log", debug: true, prior: maxLogSize + 1, wantFile: true, wantRotated: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreLogger(t)
			t.Chdir(t.TempDir())
			logPath := filepath.Join(logDir, logFileName)

			if tt.prior >= 0 {
				if err := os.MkdirAll(logDir, 0755); err != nil {
					t.Fatalf("MkdirAll failed: %v", err)
				}
				if err := os.WriteFile(logPath, make([]byte, tt.prior), 0644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}

			f := setupLogging(tt.debug)
			if f != nil {
				defer f.Close()
			}
			if (f != nil) != tt.wantFile {
				t.Fatalf("Expected log file %v, got %v", tt.wantFile, f != nil)
			}

			out := log.Writer()
			if out == os.Stdout || out == os.Stderr {
				t.Error("Expected logs kept off stdout and stderr while the screen owns them")
			}
			if !tt.wantFile {
				if out != io.Discard {
					t.Errorf("Expected io.Discard, got %v", out)
				}
				if _, err := os.Stat(logDir); !os.IsNotExist(err) {
					t.Errorf("Expected no %s directory in release mode", logDir)
				}
				return
			}

			log.Printf("Test: frame %d", 1)
			info, err := os.Stat(logPath)
			if err != nil {
				t.Fatalf("Stat failed: %v", err)
			}
			if tt.wantRotated && info.Size() > maxLogSize {
				t.Errorf("Expected a fresh log after rotation, got %d bytes", info.Size())
			}
			if !tt.wantRotated && tt.prior > 0 && info.Size() <= tt.prior {
				t.Errorf("Expected the message appended after %d bytes, got %d", tt.prior, info.Size())
			}

			entries, err := os.ReadDir(logDir)
			if err != nil {
				t.Fatalf("ReadDir failed: %v", err)
			}
			rotated := 0
			for _, e := range entries {
				if e.Name() != logFileName && strings.HasPrefix(e.Name(), "glyphterm-") {
					rotated++
				}
			}
			if tt.wantRotated && rotated != 1 {
				t.Errorf("Expected one rotated log, got %d", rotated)
			}
			if !tt.wantRotated && rotated != 0 {
				t.Errorf("Expected no rotation, got %d rotated logs", rotated)
			}
		})
	}
}

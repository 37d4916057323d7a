package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

const testSheet = "ab#\ncd\n"

func TestParseSpriteSheet(t *testing.T) {
	sheet, err := ParseSpriteSheet([]byte(testSheet), []core.Rect{
		core.NewRect(0, 0, 2, 2),
		core.NewRect(2, 0, 1, 1),
	})
	if err != nil {
		t.Fatalf("ParseSpriteSheet() failed: %v", err)
	}

	if sheet.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", sheet.Len())
	}
	if sheet.At(0, 1, 1) != 'd' {
		t.Errorf("At(0, 1, 1) = %q, expected 'd'", sheet.At(0, 1, 1))
	}
	if sheet.At(1, 0, 0) != '#' {
		t.Errorf("At(1, 0, 0) = %q, expected '#'", sheet.At(1, 0, 0))
	}
}

func TestParseSpriteSheetPadsShortLines(t *testing.T) {
	sheet, err := ParseSpriteSheet([]byte(testSheet), []core.Rect{core.NewRect(2, 1, 1, 1)})
	if err != nil {
		t.Fatalf("ParseSpriteSheet() failed: %v", err)
	}
	if sheet.At(0, 0, 0) != ' ' {
		t.Errorf("padded cell = %q, expected space", sheet.At(0, 0, 0))
	}
}

func TestParseSpriteSheetErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		regions []core.Rect
		wantErr string
	}{
		{"empty image", "", []core.Rect{core.NewRect(0, 0, 1, 1)}, "empty"},
		{"region outside", testSheet, []core.Rect{core.NewRect(2, 0, 2, 1)}, "outside"},
		{"region below", testSheet, []core.Rect{core.NewRect(0, 1, 1, 2)}, "outside"},
		{"empty region", testSheet, []core.Rect{core.NewRect(0, 0, 0, 1)}, "no area"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSpriteSheet([]byte(tc.data), tc.regions)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSpriteSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	if err := os.WriteFile(path, []byte("xy\r\nzw\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	sheet, err := LoadSpriteSheet(path, []core.Rect{core.NewRect(0, 0, 2, 2)})
	if err != nil {
		t.Fatalf("LoadSpriteSheet() failed: %v", err)
	}
	if sheet.At(0, 1, 1) != 'w' {
		t.Errorf("At(0, 1, 1) = %q, expected 'w'", sheet.At(0, 1, 1))
	}

	if _, err := LoadSpriteSheet(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("missing file should fail")
	}
}

package qrcode

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/ytget/qr-creator/internal/model"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"hello", "hello.png"},
		{"QR Codes", "QR Codes.png"},
		{"a.b", "a.b.png"},
	}

	for _, test := range tests {
		if result := FileName(test.name); result != test.expected {
			t.Errorf("FileName(%s) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestSave_WritesFile(t *testing.T) {
	dir := t.TempDir()
	img, err := NewGenerator(DefaultLevel, DefaultBoxSize).Generate("hello", model.ImageModeRaw)
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}

	path, err := NewFileWriter().Save(img, "hello", dir)
	if err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	expected := filepath.Join(dir, "hello.png")
	if path != expected {
		t.Errorf("Expected path %s, got %s", expected, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != string(img.PNG) {
		t.Error("Saved file content differs from generated PNG bytes")
	}
}

func TestSave_OverwritesSilently(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(DefaultLevel, DefaultBoxSize)
	writer := NewFileWriter()

	first, _ := g.Generate("first", model.ImageModeRaw)
	second, _ := g.Generate("second payload", model.ImageModeRaw)

	if _, err := writer.Save(first, "same", dir); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	path, err := writer.Save(second, "same", dir)
	if err != nil {
		t.Fatalf("Second save should overwrite, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != string(second.PNG) {
		t.Error("Expected file to contain the second image")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected 1 file in dir, got %d", len(entries))
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	img, _ := NewGenerator(DefaultLevel, DefaultBoxSize).Generate("hello", model.ImageModeRaw)

	_, err := NewFileWriter().Save(img, "hello", dir)
	if err == nil {
		t.Fatal("Expected error for missing directory, got nil")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("Save must not create the directory")
	}
}

func TestSave_PathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	img, _ := NewGenerator(DefaultLevel, DefaultBoxSize).Generate("hello", model.ImageModeRaw)

	_, err := NewFileWriter().Save(img, "hello", file)
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}

func TestSave_NoImageData(t *testing.T) {
	_, err := NewFileWriter().Save(&model.QRImage{}, "empty", t.TempDir())
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}

// Round trip: the written PNG must scan back to the original payload
func TestSave_RoundTripDecode(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(DefaultLevel, DefaultBoxSize)
	writer := NewFileWriter()

	payloads := []string{"hello", "world", "https://example.com/some/path?q=1", strings.Repeat("Z", 60)}
	for i, payload := range payloads {
		img, err := g.Generate(payload, model.ImageModeRaw)
		if err != nil {
			t.Fatalf("Failed to generate %q: %v", payload, err)
		}
		path, err := writer.Save(img, "item"+string(rune('0'+i)), dir)
		if err != nil {
			t.Fatalf("Failed to save %q: %v", payload, err)
		}

		text, err := scanFile(path)
		if err != nil {
			t.Fatalf("Failed to scan %s: %v", path, err)
		}
		if text != payload {
			t.Errorf("Decoded payload = %q, expected %q", text, payload)
		}
	}
}

func scanFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	result, err := gozxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", err
	}
	return result.GetText(), nil
}

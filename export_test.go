package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestExportPNGWritesDecodableImage(t *testing.T) {
	cfg := defaultConfig()
	s := NewScene(cfg)
	vp := NewViewport(cfg)
	a := s.AddNodeAt(Point{0, 0})
	b := s.AddNodeAt(Point{300, 0})
	s.Connect(a, b)

	ops := BuildFrame(s, vp, 200, 120, cfg)
	path := filepath.Join(t.TempDir(), "snap.png")

	if err := ExportPNG(ops, vp, 200, 120, path); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 480 {
		t.Errorf("image is %dx%d, want 800x480 at 4 px per screen unit", bounds.Dx(), bounds.Dy())
	}
}

func TestExportPNGRejectsEmptyViewport(t *testing.T) {
	cfg := defaultConfig()
	vp := NewViewport(cfg)
	if err := ExportPNG(nil, vp, 0, 0, filepath.Join(t.TempDir(), "snap.png")); err == nil {
		t.Error("zero-sized export should fail")
	}
}

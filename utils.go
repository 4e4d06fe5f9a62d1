package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanLabel reduces arbitrary clipboard text to a single printable
// line that fits on a node.
func cleanLabel(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\t' {
			b.WriteRune(' ')
		} else if r >= 32 {
			b.WriteRune(r)
		}
	}
	label := strings.TrimSpace(b.String())
	if len(label) > 48 {
		label = label[:48]
	}
	if label == "" {
		label = "node"
	}
	return label
}

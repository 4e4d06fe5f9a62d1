package main

import "testing"

func TestCleanLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mixer", "mixer"},
		{"  reverb  ", "reverb"},
		{"line one\nline two", "line one"},
		{"tab\there", "tab here"},
		{"ctrl\x07chars\x1b", "ctrlchars"},
		{"", "node"},
		{"\n\n", "node"},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
	}
	for _, c := range cases {
		if got := cleanLabel(c.in); got != c.want {
			t.Errorf("cleanLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

package search

import (
	"errors"
	"testing"
)

func TestCompileValidPattern(t *testing.T) {
	re, err := Compile("wor", false)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("hello world") {
		t.Fatalf("expected pattern to match")
	}
	if re.MatchString("hello WORLD") {
		t.Fatalf("case-sensitive pattern matched different case")
	}
}

func TestCompileCaseInsensitive(t *testing.T) {
	re, err := Compile("WoR", true)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("hello world") {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	tests := []string{"(", "[a-", "a{2,1}", "*"}
	for _, pattern := range tests {
		if _, err := Compile(pattern, false); !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("pattern %q: expected ErrInvalidPattern, got %v", pattern, err)
		}
	}
}

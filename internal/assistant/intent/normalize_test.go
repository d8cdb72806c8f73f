package intent

import "testing"

func TestExtractQuoted(t *testing.T) {
	t.Run("straight quotes", func(t *testing.T) {
		got, ok := ExtractQuoted(`Remove vehicle from "Bulk - 00:01" now`)
		if !ok || got != "Bulk - 00:01" {
			t.Errorf("expected Bulk - 00:01, got %q ok=%v", got, ok)
		}
	})

	t.Run("curly quotes", func(t *testing.T) {
		got, ok := ExtractQuoted("Check trip status for “Bulk - 08:30”")
		if !ok || got != "Bulk - 08:30" {
			t.Errorf("expected Bulk - 08:30, got %q ok=%v", got, ok)
		}
	})

	t.Run("mixed quote styles", func(t *testing.T) {
		got, ok := ExtractQuoted(`route called “Night Owl"`)
		if !ok || got != "Night Owl" {
			t.Errorf("expected Night Owl, got %q ok=%v", got, ok)
		}
	})

	t.Run("first quoted run wins", func(t *testing.T) {
		got, ok := ExtractQuoted(`"first" and "second"`)
		if !ok || got != "first" {
			t.Errorf("expected first, got %q ok=%v", got, ok)
		}
	})

	t.Run("no quotes", func(t *testing.T) {
		if _, ok := ExtractQuoted("no quotes here"); ok {
			t.Error("expected not found")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if _, ok := ExtractQuoted(""); ok {
			t.Error("expected not found on empty input")
		}
	})
}

func TestExtractStopName(t *testing.T) {
	t.Run("captures and trims", func(t *testing.T) {
		got, ok := ExtractStopName("Create a new stop called West Gate")
		if !ok || got != "West Gate" {
			t.Errorf("expected West Gate, got %q ok=%v", got, ok)
		}
	})

	t.Run("case insensitive keyword", func(t *testing.T) {
		got, ok := ExtractStopName("new Stop Called East Gate")
		if !ok || got != "East Gate" {
			t.Errorf("expected East Gate, got %q ok=%v", got, ok)
		}
	})

	t.Run("letters and spaces only", func(t *testing.T) {
		got, ok := ExtractStopName("new stop called Gate 7 please")
		if !ok || got != "Gate" {
			t.Errorf("expected capture to stop at the digit, got %q ok=%v", got, ok)
		}
	})

	t.Run("missing keyword", func(t *testing.T) {
		if _, ok := ExtractStopName("create a stop named West Gate"); ok {
			t.Error("expected not found without the keyword phrase")
		}
	})
}

func TestExtractPathName(t *testing.T) {
	t.Run("plain path keyword", func(t *testing.T) {
		got, ok := ExtractPathName("show stops for path North Loop")
		if !ok || got != "North Loop" {
			t.Errorf("expected North Loop, got %q ok=%v", got, ok)
		}
	})

	t.Run("path called variant", func(t *testing.T) {
		got, ok := ExtractPathName("create path called South Loop")
		if !ok || got != "South Loop" {
			t.Errorf("expected South Loop, got %q ok=%v", got, ok)
		}
	})

	t.Run("missing keyword", func(t *testing.T) {
		if _, ok := ExtractPathName("show me the routes"); ok {
			t.Error("expected not found")
		}
	})
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Create Route NOW"); got != "create route now" {
		t.Errorf("unexpected normalization: %q", got)
	}
}

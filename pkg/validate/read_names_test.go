package validate

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestReadBreedNames_JSON_Auto(t *testing.T) {
	path := writeFile(t, "breeds.json", `["hound", "Akita", " pug "]`)

	got, err := ReadBreedNames(path, FormatAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []string{"hound", "Akita", " pug "}) {
		t.Fatalf("got %v", got)
	}
}

func TestReadBreedNames_Lines_Auto(t *testing.T) {
	path := writeFile(t, "breeds.txt", "hound\n\n# комментарий\n  Akita  \npug\n")

	got, err := ReadBreedNames(path, FormatAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []string{"hound", "Akita", "pug"}) {
		t.Fatalf("got %v", got)
	}
}

func TestReadBreedNames_Auto_SniffsContent(t *testing.T) {
	jsonPath := writeFile(t, "breeds", "  \n[\"beagle\"]")
	got, err := ReadBreedNames(jsonPath, FormatAuto)
	if err != nil || !slices.Equal(got, []string{"beagle"}) {
		t.Fatalf("json sniff: got %v err=%v", got, err)
	}

	linesPath := writeFile(t, "breeds.list", "beagle\nboxer")
	got, err = ReadBreedNames(linesPath, FormatAuto)
	if err != nil || !slices.Equal(got, []string{"beagle", "boxer"}) {
		t.Fatalf("lines sniff: got %v err=%v", got, err)
	}
}

func TestReadBreedNames_ExplicitFormatOverridesExtension(t *testing.T) {
	path := writeFile(t, "breeds.json", "hound\nboxer\n")

	if _, err := ReadBreedNames(path, FormatJSON); err == nil {
		t.Fatalf("expected json error for line-separated content")
	}
	got, err := ReadBreedNames(path, FormatLines)
	if err != nil || !slices.Equal(got, []string{"hound", "boxer"}) {
		t.Fatalf("got %v err=%v", got, err)
	}
}

func TestParseNamesJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"not array", `{"a":1}`},
		{"non-string element", `["a", 1]`},
		{"trailing data", `["a"] ["b"]`},
		{"broken", `["a"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseNamesJSON([]byte(tt.raw)); err == nil || !strings.Contains(err.Error(), "invalid json") {
				t.Fatalf("want invalid json error, got %v", err)
			}
		})
	}
}

func TestParseNamesJSON_NullIsEmpty(t *testing.T) {
	got, err := ParseNamesJSON([]byte("null"))
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("want empty list, got %#v err=%v", got, err)
	}
}

func TestReadBreedNames_MissingFile(t *testing.T) {
	if _, err := ReadBreedNames(filepath.Join(t.TempDir(), "nope.json"), FormatAuto); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseInputFormat(t *testing.T) {
	for in, want := range map[string]InputFormat{"": FormatAuto, "AUTO": FormatAuto, "json": FormatJSON, " lines ": FormatLines} {
		got, err := ParseInputFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseInputFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseInputFormat("jsonl"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

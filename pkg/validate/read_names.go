package validate

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatLines InputFormat = "lines"
)

// ParseInputFormat — разбор значения флага --format.
func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatLines:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// ReadBreedNames — читает имена пород из файла: JSON-массив строк или по одному имени в строке.
// auto: .json — JSON, .txt/.lines — строки, иначе по первому значимому символу ('[' — JSON).
func ReadBreedNames(filePath string, format InputFormat) ([]string, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if format == FormatAuto {
		format = detectFormat(filePath, raw)
	}

	switch format {
	case FormatJSON:
		return ParseNamesJSON(raw)
	case FormatLines:
		return ParseNamesLines(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ParseNamesJSON — строгий разбор JSON-массива строк (без данных после массива).
func ParseNamesJSON(raw []byte) ([]string, error) {
	var names []string
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&names); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ParseNamesLines — по одному имени в строке; пустые строки и строки с '#' пропускаются.
func ParseNamesLines(r io.Reader) ([]string, error) {
	names := []string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return names, nil
}

func detectFormat(filePath string, raw []byte) InputFormat {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return FormatJSON
	case ".txt", ".lines":
		return FormatLines
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatLines
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var whitespace = regexp.MustCompile(`\s+`)

// ExportReport writes a named report body to a timestamped text file
// under dir and returns the path. The body arrives pre-formatted; this
// only adds the header block.
func ExportReport(dir, name, body string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := whitespace.ReplaceAllString(strings.ToLower(name), "_") +
		"_" + time.Now().Format("2006-01-02") + ".txt"
	path := filepath.Join(dir, filename)

	var b strings.Builder
	fmt.Fprintf(&b, "--- REPORT: %s ---\n", strings.ToUpper(name))
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02"))
	b.WriteString("----------------------------------------\n")
	b.WriteString(body)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

package roster

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// ReadList reads a newline-delimited list. Blank lines and lines starting
// with '#' are skipped, surrounding space and one leading '@' are removed.
// A missing file is an empty list.
func ReadList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", path, err)
	}

	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line = stripHandle(line); line != "" {
			entries = append(entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan list %s: %w", path, err)
	}

	return entries, nil
}

// Fold case-folds s for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// NormalizeEntry turns "@Alice " into "alice".
func NormalizeEntry(s string) string {
	return Fold(stripHandle(strings.TrimSpace(s)))
}

func stripHandle(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "@"))
}

type UserSet map[string]struct{}

func NewUserSet(entries ...[]string) UserSet {
	set := make(UserSet)
	for _, list := range entries {
		for _, entry := range list {
			if normalized := NormalizeEntry(entry); normalized != "" {
				set[normalized] = struct{}{}
			}
		}
	}
	return set
}

func (s UserSet) Contains(identity string) bool {
	if identity == "" {
		return false
	}
	_, ok := s[identity]
	return ok
}

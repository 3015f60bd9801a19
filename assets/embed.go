// assets/embed.go
//
// Embedded word list used when no DICTIONARY_FILE is configured.
// One lowercase word per line; blank lines and "#" comments are skipped.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words_en.txt
var FS embed.FS

// ReadLines returns the non-empty, non-comment lines of r, trimmed and lowercased.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded default dictionary.
func WordList() ([]string, error) {
	f, err := FS.Open("words_en.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

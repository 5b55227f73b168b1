package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed candidates.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// CandidatesList returns the embedded default candidate word list.
func CandidatesList() ([]string, error) {
	return readLines("candidates.txt")
}

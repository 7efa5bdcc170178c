// Package fixture loads the "--TEST--/--INPUT--/--EXPECTED--" golden
// files the tokenizer, folder, classifier and HTML5 lexer tests are
// checked against. It mirrors the section-splitting convention
// sqltest.Fixture uses for migration fixtures, but for flat text files
// instead of ephemeral databases.
package fixture

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind is derived from the filename marker and selects which check a
// Case exercises.
type Kind int

const (
	KindUnknown Kind = iota
	KindTokens
	KindFolding
	KindSQLi
	KindHTML5
)

// kindMarkers is checked in order; a filename may only ever match one.
var kindMarkers = []struct {
	marker string
	kind   Kind
}{
	{"-tokens-", KindTokens},
	{"-folding-", KindFolding},
	{"-sqli-", KindSQLi},
	{"-html5-", KindHTML5},
}

// KindOf inspects name (typically filepath.Base of a fixture path) for
// one of the marker substrings and reports the matching Kind.
func KindOf(name string) Kind {
	for _, m := range kindMarkers {
		if strings.Contains(name, m.marker) {
			return m.kind
		}
	}
	return KindUnknown
}

// Case is one parsed fixture: a human-readable test name, the raw
// input bytes to run through the pipeline, and the expected output to
// compare against (format depends on Kind: a fingerprint string, a
// "true"/"false" verdict, or a token dump).
type Case struct {
	Path     string
	Kind     Kind
	Name     string
	Input    []byte
	Expected string
}

const (
	sectionTest     = "--TEST--"
	sectionInput    = "--INPUT--"
	sectionExpected = "--EXPECTED--"
)

// Parse splits the contents of one fixture file into a Case. Section
// lines are joined with LF and one trailing blank line of --INPUT-- is
// dropped, so a one-line input carries no implicit trailing LF; a
// deliberate trailing newline in the input is written as two blank
// lines at the end of the section.
func Parse(path string, data []byte) (Case, error) {
	sections := map[string][]string{}
	var current string

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch line {
		case sectionTest, sectionInput, sectionExpected:
			current = line
			continue
		}
		if current == "" {
			continue
		}
		sections[current] = append(sections[current], line)
	}
	if err := scanner.Err(); err != nil {
		return Case{}, fmt.Errorf("fixture: %s: %w", path, err)
	}

	name := strings.Join(sections[sectionTest], "\n")
	input := strings.Join(sections[sectionInput], "\n")
	input = strings.TrimSuffix(input, "\n")
	expected := strings.TrimRight(strings.Join(sections[sectionExpected], "\n"), "\n")

	return Case{
		Path:     path,
		Kind:     KindOf(filepath.Base(path)),
		Name:     name,
		Input:    []byte(input),
		Expected: expected,
	}, nil
}

// LoadFile reads and parses a single fixture file.
func LoadFile(path string) (Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Case{}, err
	}
	return Parse(path, data)
}

// LoadDir reads every fixture file directly inside dir (non-recursive,
// sorted by name for deterministic test output).
func LoadDir(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	cases := make([]Case, 0, len(names))
	for _, name := range names {
		c, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/smasher164/xid"
	"github.com/spf13/cobra"
)

var keywordgenOut string

// keywordgenCmd rebuilds a sorted keyword-table source fragment from a
// plain wordlist ("WORD<TAB>typecode" per line). It is the one place
// in the repository that reaches for Unicode identifier classification
// (github.com/smasher164/xid): a candidate word is only accepted into
// the generated table if every rune in it is identifier-shaped, which
// catches wordlist corruption (stray punctuation, BOMs, copy-paste
// artifacts) before it reaches the binary-searched table the lexer
// depends on at request time. The lexer's own word rule stays
// byte/ASCII-only; this check never runs on the request path.
var keywordgenCmd = &cobra.Command{
	Use:   "keywordgen <wordlist>",
	Short: "Validate a wordlist and emit a sorted Go keyword-table fragment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return fmt.Errorf("expected exactly one argument: the wordlist path")
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		type entry struct {
			word string
			typ  byte
		}
		var entries []entry

		scanner := bufio.NewScanner(f)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) != 2 || len(fields[1]) != 1 {
				return fmt.Errorf("keywordgen: %s:%d: expected \"WORD<TAB>T\"", args[0], lineNo)
			}
			word := strings.ToUpper(fields[0])
			if !isIdentifierShaped(word) {
				return fmt.Errorf("keywordgen: %s:%d: %q is not identifier-shaped", args[0], lineNo, word)
			}
			entries = append(entries, entry{word: word, typ: fields[1][0]})
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].word < entries[j].word })

		out := os.Stdout
		if keywordgenOut != "" {
			w, err := os.Create(keywordgenOut)
			if err != nil {
				return err
			}
			defer w.Close()
			out = w
		}

		fmt.Fprintln(out, "// Code generated by wafcheck keywordgen. DO NOT EDIT.")
		fmt.Fprintln(out, "package sqltoken")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "var generatedKeywords = []keywordEntry{")
		for _, e := range entries {
			fmt.Fprintf(out, "\t{%q, %q},\n", e.word, e.typ)
		}
		fmt.Fprintln(out, "}")

		return nil
	},
}

// isIdentifierShaped reports whether every rune in word is valid in a
// Unicode identifier, per github.com/smasher164/xid's classification
// (the first rune checked against xid.Start, the rest against
// xid.Continue).
func isIdentifierShaped(word string) bool {
	for i, r := range word {
		if i == 0 {
			if !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return len(word) > 0
}

func init() {
	keywordgenCmd.Flags().StringVarP(&keywordgenOut, "out", "o", "", "output path (defaults to stdout)")
	rootCmd.AddCommand(keywordgenCmd)
}

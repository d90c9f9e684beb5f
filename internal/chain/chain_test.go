package chain

import (
	"strings"
	"sync"
	"testing"

	gowildcard "github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/google/go-cmp/cmp"
)

func mustEither(t testing.TB, patterns []Node, rest ...Node) Node {
	t.Helper()
	n, err := Either(patterns, rest...)
	if err != nil {
		t.Fatalf("Either: %v", err)
	}
	return n
}

func mustRange(t testing.TB, low, high rune, rest ...Node) Node {
	t.Helper()
	n, err := Range(low, high, rest...)
	if err != nil {
		t.Fatalf("Range(%q, %q): %v", low, high, err)
	}
	return n
}

// TestCaptures checks the captures collected along the successful path.
func TestCaptures(t *testing.T) {
	cases := []struct {
		name    string
		pattern Node
		text    string
		matched bool
		caps    []string
	}{
		{"any alone", Any(), "text", true, []string{"text"}},
		{"any empty input", Any(), "", true, []string{""}},
		{"any suffixed", Any(Lit(".txt")), "text.txt", true, []string{"text", ".txt"}},
		{"any wrapped", Lit("te", Any(Lit(".txt"))), "text.txt", true, []string{"te", "xt", ".txt"}},
		{"either injects patterns", Lit("te", mustEither(t, []Node{Lit("x", Lit("t"))}, Lit(".txt"))), "text.txt", true, []string{"te", "x", "t", ".txt"}},
		{"any is greedy", Any(Lit("a", Any())), "banana", true, []string{"banan", "a", ""}},
		{"two wildcards", Any(Lit("-", Any())), "a-b-c", true, []string{"a-b", "-", "c"}},
		{"literal prefix missing", Lit("te", Any()), "xtext", false, []string{}},
		{"not contributes nothing", Not(Lit("a"), Lit("b")), "b", true, []string{"b"}},
		{"terminal on empty", Terminal(), "", true, []string{}},
		{"terminal on text", Terminal(), "x", false, []string{}},
		{"zero node", Node{}, "", true, []string{}},
		{"unicode", Lit("é", Any(Lit("😊"))), "éxyz😊", true, []string{"é", "xyz", "😊"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched, caps := tc.pattern.Match(tc.text)
			if matched != tc.matched {
				t.Errorf("%s.Match(%q) matched = %v, want %v", tc.pattern, tc.text, matched, tc.matched)
			}
			if diff := cmp.Diff(tc.caps, caps); diff != "" {
				t.Errorf("%s.Match(%q) captures mismatch (-want +got):\n%s", tc.pattern, tc.text, diff)
			}
		})
	}
}

// TestMatchIsAnchored verifies that a match must consume the whole input.
func TestMatchIsAnchored(t *testing.T) {
	p := Lit("ab")
	for _, s := range []string{"ab"} {
		if ok, _ := p.Match(s); !ok {
			t.Errorf("Lit(ab).Match(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"abc", "xab", "a", ""} {
		if ok, caps := p.Match(s); ok || len(caps) != 0 {
			t.Errorf("Lit(ab).Match(%q) = %v, %q; want false, []", s, ok, caps)
		}
	}
}

// TestMatchIdempotent evaluates the same pattern repeatedly on the same input.
func TestMatchIdempotent(t *testing.T) {
	p := Lit("te", mustEither(t, []Node{Lit("x", Lit("t")), Any()}, Lit(".txt")))
	inputs := []string{"text.txt", "teabc.txt", "te.txt", "nope"}
	for _, s := range inputs {
		ok1, caps1 := p.Match(s)
		ok2, caps2 := p.Match(s)
		if ok1 != ok2 {
			t.Errorf("Match(%q) not stable: %v then %v", s, ok1, ok2)
		}
		if diff := cmp.Diff(caps1, caps2); diff != "" {
			t.Errorf("Match(%q) captures not stable (-first +second):\n%s", s, diff)
		}
	}
}

// TestConcurrentMatch shares one pattern between goroutines.
func TestConcurrentMatch(t *testing.T) {
	p := Lit("te", Any(mustEither(t, []Node{Lit(".txt"), Lit(".md")})))
	cases := map[string][]string{
		"text.txt":     {"te", "xt", ".txt"},
		"template.md":  {"te", "mplate", ".md"},
		"test.txt.txt": {"te", "st.txt", ".txt"},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for s, want := range cases {
					ok, caps := p.Match(s)
					if !ok || !cmp.Equal(want, caps) {
						select {
						case errs <- s:
						default:
						}
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for s := range errs {
		t.Errorf("concurrent Match(%q) returned an unexpected result", s)
	}
}

// globChain builds the chain equivalent of a glob made of literals and '*'.
func globChain(glob string) Node {
	parts := strings.Split(glob, "*")
	rest := Terminal()
	for k := len(parts) - 1; k >= 0; k-- {
		if parts[k] != "" {
			rest = Lit(parts[k], rest)
		}
		if k > 0 {
			rest = Any(rest)
		}
	}
	return rest
}

// TestStarGlobAgainstGoWildcard compares star-only globs with go-wildcard.
// go-wildcard treats '.' and '?' as wildcards, so the globs avoid them.
func TestStarGlobAgainstGoWildcard(t *testing.T) {
	globs := []string{
		"", "*", "**", "a*", "*a", "a*b", "*_txt", "te*_txt", "*a*b*c*",
		"file_txt", "f*e*t", "a**b", "*ab*ba*",
	}
	inputs := []string{
		"", "a", "b", "ab", "abc", "file_txt", "text_txt", "te_txt", "file.txt", "aXbYc",
		"abba", "ba", "a-b-c", "txt", "f.e.t",
	}

	for _, g := range globs {
		p := globChain(g)
		for _, s := range inputs {
			want := gowildcard.Match(g, s)
			got, _ := p.Match(s)
			if got != want {
				t.Errorf("%s.Match(%q) = %v, go-wildcard Match(%q, %q) = %v", p, s, got, g, s, want)
			}
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		pattern Node
		want    string
	}{
		{Terminal(), "End"},
		{Lit("te", Any(Lit(".txt"))), `Lit("te") -> Any -> Lit(".txt")`},
		{Set("cab", mustRange(t, 'a', 'z')), `Set("abc") -> Range('a', 'z')`},
		{Not(Lit("a")), `Not(Lit("a")) -> Rest`},
		{Not(Lit("a"), Lit("b")), `Not(Lit("a")) -> Lit("b")`},
		{mustEither(t, []Node{Lit("x", Lit("t")), Lit("y")}, Lit(".txt")), `Either(Lit("x") -> Lit("t") | Lit("y")) -> Lit(".txt")`},
	}

	for _, tc := range cases {
		if got := tc.pattern.String(); got != tc.want {
			t.Errorf("String() = %s, want %s", got, tc.want)
		}
	}
}

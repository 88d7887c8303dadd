package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/az-ai-labs/silabas/internal/analysis"
	"github.com/az-ai-labs/silabas/internal/escase"
	"github.com/az-ai-labs/silabas/syllable"
	"github.com/az-ai-labs/silabas/tokenizer"
)

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *cli) split(args []string) int {
	fs := c.flagSet("split")
	sep := fs.String("sep", "-", "separator placed between syllables")
	asJSON := fs.Bool("json", false, "print one JSON array of results per line")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	emit := func(line string) {
		if *asJSON {
			_, results := analysis.Text(line)
			if results == nil {
				results = []analysis.Result{}
			}
			c.writeJSON(results)
			return
		}
		fmt.Fprintln(c.stdout, hyphenateLine(escase.ComposeNFC(line), *sep))
	}

	if fs.NArg() > 0 {
		for _, arg := range fs.Args() {
			emit(arg)
		}
		return exitOK
	}
	sc := bufio.NewScanner(c.stdin)
	for sc.Scan() {
		emit(sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(c.stderr, "silabas: read stdin: %v\n", err)
		return exitFail
	}
	return exitOK
}

// hyphenateLine rewrites every word of line with sep between its
// syllables, leaving everything else untouched.
func hyphenateLine(line, sep string) string {
	var b strings.Builder
	b.Grow(len(line) * 2)
	for _, tok := range tokenizer.WordTokens(line) {
		if tok.Type != tokenizer.Word {
			b.WriteString(tok.Text)
			continue
		}
		for i, part := range tokenizer.SplitHyphenated(tok) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteString(syllable.Hyphenate(part.Text, sep))
		}
	}
	return b.String()
}

func (c *cli) info(args []string) int {
	fs := c.flagSet("info")
	asJSON := fs.Bool("json", false, "print results as JSON")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(c.stderr, "silabas info: at least one word required")
		return exitUsage
	}

	code := exitOK
	results := make([]analysis.Result, 0, fs.NArg())
	for _, word := range fs.Args() {
		r := analysis.Analyze(word)
		if !r.OK() {
			code = exitFail
		}
		results = append(results, r)
	}
	if *asJSON {
		c.writeJSON(results)
		return code
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(c.stdout)
		}
		printInfo(c, r)
	}
	return code
}

func printInfo(c *cli, r analysis.Result) {
	fmt.Fprintln(c.stdout, r.Word)
	if r.Error != "" {
		fmt.Fprintf(c.stdout, "  error:       %s\n", r.Error)
		return
	}
	fmt.Fprintf(c.stdout, "  syllables:   %s\n", strings.Join(r.Syllables, "-"))
	fmt.Fprintf(c.stdout, "  stress:      %d of %d (%s)\n", r.StressIndex+1, len(r.Syllables), r.Stress)
	fmt.Fprintf(c.stdout, "  rhyme:       %s\n", r.Rhyme)
	fmt.Fprintf(c.stdout, "  assonance:   %s\n", r.Assonance)
	if r.CombosError != "" {
		fmt.Fprintf(c.stdout, "  error:       %s\n", r.CombosError)
		return
	}
	for _, d := range r.Combos.Diphthongs {
		fmt.Fprintf(c.stdout, "  diphthong:   %s (%s, syllable %d)\n", d.Composite, d.Kind, d.SyllableIndex+1)
	}
	for _, tr := range r.Combos.Triphthongs {
		fmt.Fprintf(c.stdout, "  triphthong:  %s (syllable %d)\n", tr.Composite, tr.SyllableIndex+1)
	}
	for _, h := range r.Combos.Hiatuses {
		fmt.Fprintf(c.stdout, "  hiatus:      %s (%s, syllables %d-%d)\n", h.Composite, h.Kind, h.SyllableIndex+1, h.SyllableIndex+2)
	}
}

func (c *cli) rhyme(args []string) int {
	opts, err := rhymeDefaults()
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	fs := c.flagSet("rhyme")
	fs.BoolVar(&opts.Seseo, "seseo", opts.Seseo, "treat s, z and soft c as the same sound")
	fs.BoolVar(&opts.Yeismo, "yeismo", opts.Yeismo, "treat y and ll as the same sound")
	fs.BoolVar(&opts.BEqualsV, "bv", opts.BEqualsV, "treat b and v as the same sound")
	assonant := fs.Bool("assonant", false, "compare vowels only")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(c.stderr, "silabas rhyme: exactly two words required")
		return exitUsage
	}

	a, b := fs.Arg(0), fs.Arg(1)
	wa, err := syllable.Parse(escase.ComposeNFC(a))
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	wb, err := syllable.Parse(escase.ComposeNFC(b))
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}

	var ok bool
	kind := "rhyme"
	if *assonant {
		ok = wa.AssonantRhymesWith(wb)
		kind = "assonate"
	} else {
		ok = wa.RhymesWithOptions(wb, opts)
	}
	if ok {
		fmt.Fprintf(c.stdout, "%s and %s %s (%s / %s)\n", a, b, kind, wa.Rhyme(), wb.Rhyme())
		return exitOK
	}
	fmt.Fprintf(c.stdout, "%s and %s do not %s (%s / %s)\n", a, b, kind, wa.Rhyme(), wb.Rhyme())
	return exitFail
}

func (c *cli) writeJSON(v any) {
	enc := json.NewEncoder(c.stdout)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

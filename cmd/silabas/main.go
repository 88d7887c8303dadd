// Command silabas splits Spanish words into syllables, reports their
// stress and rhyme, compares rhymes, and maintains a rhyme index.
//
// Usage:
//
//	silabas split [-sep "-"] [-json] [text...]
//	silabas info [-json] word...
//	silabas rhyme [-seseo] [-yeismo] [-bv] [-assonant] a b
//	silabas index -db path [-workers N] [-batch N] [-seed] [file|-]
//	silabas query -db path [-assonant | -near] [-limit N] word
//
// Without text arguments, split reads lines from stdin. Defaults for the
// rhyme options, worker count and batch size come from the configuration
// (CONFIG_PATH, environment).
//
// Exit codes: 0 = success, 1 = failure or no rhyme, 2 = usage error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	env := &cli{ctx: ctx, stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "split":
		return env.split(args[1:])
	case "info":
		return env.info(args[1:])
	case "rhyme":
		return env.rhyme(args[1:])
	case "index":
		return env.index(args[1:])
	case "query":
		return env.query(args[1:])
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "silabas: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  silabas split [-sep "-"] [-json] [text...]
  silabas info [-json] word...
  silabas rhyme [-seseo] [-yeismo] [-bv] [-assonant] a b
  silabas index -db path [-workers N] [-batch N] [-seed] [file|-]
  silabas query -db path [-assonant | -near] [-limit N] word
`)
}

type cli struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

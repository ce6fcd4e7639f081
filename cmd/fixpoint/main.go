package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/vic/fixpoint/pkg/lambda"
)

const historyFile = ".fixpoint_history"

func main() {
	interactive := flag.Bool("i", false, "start an interactive session")
	maxSteps := flag.Uint64("max-steps", lambda.DefaultMaxSteps, "beta reduction limit before giving up")
	noPrelude := flag.Bool("no-prelude", false, "do not resolve prelude names (true, pair, fix, fib, ...)")
	flag.Parse()

	if *interactive {
		os.Exit(repl(*maxSteps, *noPrelude))
	}

	var input []byte
	var err error
	if flag.NArg() > 0 {
		input, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(string(input), *maxSteps, *noPrelude, true); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run parses, normalizes, and prints one program. Stats go to stderr so
// the normal form on stdout stays pipeable.
func run(src string, maxSteps uint64, noPrelude, showStats bool) error {
	parse := lambda.ParseProgram
	if noPrelude {
		parse = lambda.Parse
	}
	term, err := parse(src)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	eval := lambda.NewEvaluator()
	eval.MaxSteps = maxSteps

	start := time.Now()
	normal, err := eval.Normalize(term)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%w after %d steps", err, eval.Stats().Beta)
	}

	fmt.Println(normal)
	if n, ok := lambda.DecodeNumeral(normal); ok {
		fmt.Printf("= numeral %d\n", n)
	} else if b, ok := lambda.DecodeBool(normal); ok {
		fmt.Printf("= %v\n", b)
	}

	if showStats {
		stats := eval.Stats()
		seconds := elapsed.Seconds()
		fmt.Fprintf(os.Stderr, "\nStats:\n")
		fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
		fmt.Fprintf(os.Stderr, "Beta reductions: %d", stats.Beta)
		if seconds > 0 {
			fmt.Fprintf(os.Stderr, " (%.2f ops/sec)", float64(stats.Beta)/seconds)
		}
		fmt.Fprintf(os.Stderr, "\n")
		if stats.Renames > 0 {
			fmt.Fprintf(os.Stderr, "Alpha renames:   %d\n", stats.Renames)
		}
	}
	return nil
}

func repl(maxSteps uint64, noPrelude bool) int {
	fmt.Println("fixpoint: anonymous recursion playground. :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("λ> ")
		if err != nil {
			fmt.Println()
			return 0
		}

		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		if strings.HasPrefix(src, ":") {
			switch strings.ToLower(src) {
			case ":quit", ":q":
				return 0
			case ":names":
				fmt.Println(strings.Join(lambda.PreludeNames(), " "))
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		if err := run(src, maxSteps, noPrelude, false); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		ln.AppendHistory(src)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	_ "embed"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/regginator/crank/charclass"
	"github.com/regginator/crank/util"
)

//go:embed VERSION
var crankVersion string

// All command-line arguments. Positionals are MIN_LEN MAX_LEN [CHARSET]
var (
	// modifiers
	Prefix string
	Suffix string

	// generation modes
	Pattern      string
	Permutations string

	// control and output
	OutputPath string
	Limit      uint64
	Progress   bool
)

func init() {
	flag.StringVar(&Prefix, "p", "", "Literal prefix prepended to every generated word")
	flag.StringVar(&Prefix, "prefix", "", "Alias of -p")
	flag.StringVar(&Suffix, "s", "", "Literal suffix appended to every generated word")
	flag.StringVar(&Suffix, "suffix", "", "Alias of -s")
	flag.StringVar(&Pattern, "t", "", "Pattern of literals and placeholders (e.g. \"pass@@%^\"). '@' expands to lowercase letters, '%' to digits, '^' to symbols, anything else is a literal. Supersedes charset enumeration, output length equals pattern length")
	flag.StringVar(&Pattern, "pattern", "", "Alias of -t")
	flag.StringVar(&Permutations, "x", "", "Generate every permutation of the given string. Length/charset/pattern arguments are ignored")
	flag.StringVar(&Permutations, "permutations", "", "Alias of -x")
	flag.StringVar(&OutputPath, "o", "", "Output file path. If not provided, words are written to stdout")
	flag.StringVar(&OutputPath, "output", "", "Alias of -o")
	flag.Uint64Var(&Limit, "l", 0, "Maximum number of words to emit across all lengths. 0 means unbounded")
	flag.Uint64Var(&Limit, "limit", 0, "Alias of -l")
	flag.BoolVar(&Progress, "progress", false, "Show a progress bar on stderr")
}

var (
	minLen int
	maxLen int

	// PTerm progress bar
	progressBar *pterm.ProgressbarPrinter
)

func usage(exitCode int) {
	flag.Usage()
	os.Exit(exitCode)
}

func main() {
	// Words go to stdout, everything human-facing goes to stderr
	pterm.SetDefaultOutput(os.Stderr)

	fmt.Fprintf(os.Stderr, `crank v%s
MIT License | Copyright (c) 2025 reggie@latte.to
https://github.com/regginator/crank

`, crankVersion)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "USAGE: %s [OPTION]... MIN_LEN MAX_LEN [CHARSET]\nCHARSET defaults to lowercase letters\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	// PTerm ANSI formatting (mainly from the progress bar) can persist after ctrl+c, hook
	// os.Interrupt so the generation loop can stop cleanly and flush partial output
	var interrupted atomic.Bool
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

		<-signalChan
		interrupted.Store(true)

		// A second signal force-quits even if a sink write is blocked
		<-signalChan
		if progressBar != nil {
			_, err := progressBar.Stop()
			_ = err
		}
		fmt.Fprint(os.Stderr, "\033[0m")
		os.Exit(130)
	}()

	args := flag.Args()

	var provider WordProvider

	// Check args based on generation mode, and assign the WordProvider
	if Permutations != "" {
		if len(args) != 0 || Pattern != "" {
			pterm.Warning.Printf("length, charset, and pattern arguments are ignored when permutations (-x) is set\n")
		}

		provider = NewPermutationIter(Permutations)
	} else {
		if len(args) < 2 {
			pterm.Error.Printf("missing required arguments MIN_LEN and MAX_LEN\n")
			fmt.Fprintln(os.Stderr)
			usage(1)
		} else if len(args) > 3 {
			pterm.Error.Printf("too many arguments, expected MIN_LEN MAX_LEN [CHARSET]\n")
			fmt.Fprintln(os.Stderr)
			usage(1)
		}

		var err error
		minLen, err = util.ParseWordLen(args[0])
		if err != nil {
			pterm.Error.Printf("failed to parse MIN_LEN: %s\n", err)
			fmt.Fprintln(os.Stderr)
			usage(1)
		}

		maxLen, err = util.ParseWordLen(args[1])
		if err != nil {
			pterm.Error.Printf("failed to parse MAX_LEN: %s\n", err)
			fmt.Fprintln(os.Stderr)
			usage(1)
		}

		if minLen > maxLen {
			pterm.Error.Printf("MIN_LEN (%d) cannot exceed MAX_LEN (%d)\n", minLen, maxLen)
			fmt.Fprintln(os.Stderr)
			usage(1)
		}

		if Pattern != "" {
			if len(args) == 3 {
				pterm.Warning.Printf("CHARSET is ignored when a pattern (-t) is set\n")
			}

			provider = NewPatternIter(Pattern)
		} else {
			charset := charclass.Lowercase
			if len(args) == 3 {
				charset = args[2]
			}

			if charset == "" {
				pterm.Error.Printf("CHARSET cannot be empty\n")
				fmt.Fprintln(os.Stderr)
				usage(1)
			}

			provider = NewCharsetIter(minLen, maxLen, charset)
		}
	}

	// Open the sink up front so a bad output path fails before anything is generated
	sink := io.Writer(os.Stdout)
	var outFile *os.File
	if OutputPath != "" {
		f, err := os.Create(OutputPath)
		if err != nil {
			pterm.Error.Printf("failed to open output file: %s\n", err)
			os.Exit(1)
		}

		outFile = f
		sink = f
	}

	wordCount := provider.GetWordCount()
	pterm.Info.Printf("Total combinations: %s\n", humanize.Comma(util.ClampInt64(wordCount)))

	total := wordCount
	if Limit != 0 && Limit < total {
		total = Limit
		pterm.Info.Printf("Emission limit: %s\n", humanize.Comma(util.ClampInt64(Limit)))
	}

	if Progress {
		progressBar, _ = pterm.DefaultProgressbar.
			WithTotal(util.ClampInt(total)).
			WithTitle("Generating").
			WithShowCount(true).
			WithShowElapsedTime(true).
			WithShowPercentage(true).
			WithWriter(os.Stderr).
			Start()
	}

	startTime := time.Now()

	count, err := writeWords(provider, sink, emitOptions{
		Prefix:      Prefix,
		Suffix:      Suffix,
		Limit:       Limit,
		Progress:    progressBar,
		Interrupted: &interrupted,
	})

	if progressBar != nil {
		_, stopErr := progressBar.Stop()
		_ = stopErr
		fmt.Fprint(os.Stderr, "\033[0m")
	}

	if outFile != nil {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	elapsed := time.Since(startTime)

	switch {
	case err == nil:
		pterm.Success.Printf("Generated %s words in %.2fs\n", humanize.Comma(util.ClampInt64(count)), elapsed.Seconds())
		if outFile != nil {
			pterm.Success.Printf("Wordlist saved to \"%s\"\n", OutputPath)
		}
	case errors.Is(err, errInterrupted):
		pterm.Warning.Printf("Interrupted after %s words, partial output kept\n", humanize.Comma(util.ClampInt64(count)))
		os.Exit(130)
	default:
		pterm.Error.Printf("failed writing output: %s\n", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: EPL-2.0

// Command notepcm renders note scores to PCM audio files and names the
// pitches heard in audio files.
//
//	notepcm render [-v] [-parallel N] [-f format] -o out.wav score.yaml
//	notepcm analyze [-v] [-window N] [-segments] input.{wav,aiff,mp3,ogg}
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ik5/notepcm"
	"github.com/ik5/notepcm/analysis"
	"github.com/ik5/notepcm/score"
)

var errUsage = errors.New("usage: notepcm <render|analyze> [options] <file>")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "render":
		return render(args[1:], stdout)
	case "analyze":
		return analyze(args[1:], stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, errUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func render(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "", "Output file (required)")
	format := fs.String("f", "", "Output format: wav or aiff (default: from score, then from -o extension)")
	parallel := fs.Int("parallel", runtime.NumCPU(), "Notes synthesized concurrently; 1 disables concurrency")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *out == "" {
		fs.Usage()
		return fmt.Errorf("render needs -o and one score file: %w", errUsage)
	}

	scorePath := fs.Arg(0)
	sc, err := score.LoadFile(scorePath)
	if err != nil {
		return err
	}

	switch {
	case *format != "":
		sc.Format = *format
	case sc.Format == "":
		if ext := extension(*out); ext != "" {
			sc.Format = ext
		}
	}

	if *verbose {
		cfg, _ := sc.Config()
		log.Printf("Score: %s (%d notes, %.2fs)", scorePath, len(sc.Notes), sc.Duration())
		log.Printf("Output: %s as %s, %s", *out, sc.OutputFormat(), cfg)
		log.Printf("Workers: %d", *parallel)
	}

	start := time.Now()
	if err := renderFile(*out, sc, *parallel); err != nil {
		return err
	}

	info, err := os.Stat(*out)
	if err != nil {
		return fmt.Errorf("checking output: %w", err)
	}

	fmt.Fprintf(stdout, "Rendered %s -> %s (%d bytes)\n", filepath.Base(scorePath), filepath.Base(*out), info.Size())
	if *verbose {
		log.Printf("Took %s", time.Since(start).Round(time.Millisecond))
	}

	return nil
}

func renderFile(path string, sc *score.Score, workers int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return notepcm.RenderScore(f, sc, notepcm.NewRegistry(), notepcm.WithWorkers(workers))
}

func analyze(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	window := fs.Int("window", analysis.DefaultWindow, "Samples per analysis window")
	rate := fs.Int("rate", analysis.DefaultRate, "Analysis sample rate in Hz")
	segments := fs.Bool("segments", false, "Report every window instead of only the first")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("analyze needs one input file: %w", errUsage)
	}

	path := fs.Arg(0)
	ext := extension(path)

	dec, ok := notepcm.NewRegistry().Get(ext)
	if !ok {
		return fmt.Errorf("%w: %q", notepcm.ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	if *verbose {
		log.Printf("Input: %s (%d Hz, %d channels)", path, src.SampleRate(), src.Channels())
		log.Printf("Analysis: %d Hz, %d-sample windows", *rate, *window)
	}

	opts := analysis.Options{Rate: *rate, Window: *window}

	if !*segments {
		res, err := analysis.Analyze(src, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, res)
		return nil
	}

	results, err := analysis.Segments(src, opts)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintln(stdout, res)
	}

	return nil
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

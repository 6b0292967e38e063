// Command calc reads assignment statements line by line, executes them
// against a single variable store and prints the final store.
//
//	$ printf 'i = 0\nj = ++i\nx = i++ + 5\n' | calc
//	i = 0 => 0
//	j = ++i => 1
//	x = (i++ + 5) => 6
//	(i=2,j=1,x=6)
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/store"
)

type options struct {
	dumpAST   bool
	keepGoing bool
}

// run executes every statement read from r and reports results to w.
// Blank lines and lines starting with '#' are ignored.
// Unless opts.keepGoing is set, it stops at the first failing line.
func run(r io.Reader, w io.Writer, logger *zap.Logger, opts options) (*store.Store, error) {
	s := store.New()
	ev := evaluator.New(s, evaluator.WithLogger(logger))

	var errs error
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(ev, w, logger, line, opts); err != nil {
			err = errors.Wrapf(err, "line %d", n)
			if !opts.keepGoing {
				return s, err
			}
			logger.Warn("Statement failed", zap.Int("line", n), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return s, multierr.Append(errs, errors.Wrap(err, "read input"))
	}
	return s, errs
}

func runLine(ev *evaluator.Evaluator, w io.Writer, logger *zap.Logger, line string, opts options) error {
	stmt, err := parser.Parse(line)
	if err != nil {
		return err
	}
	logger.Debug("Parsed",
		zap.Stringer("stmt", stmt),
		zap.Strings("reads", ast.Variables(stmt.Value)),
	)
	if opts.dumpAST {
		if _, err := pretty.Fprintf(w, "%# v\n", stmt); err != nil {
			return errors.Wrap(err, "dump tree")
		}
	}
	value, err := ev.Execute(stmt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s => %s\n", stmt, ast.FormatNumber(value))
	return err
}

type config struct {
	options
	file     string
	verbose  bool
	showHelp bool
}

// parseFlags parses the command line. Usage goes to w.
func parseFlags(args []string, w io.Writer) (config, *flag.FlagSet, error) {
	var cfg config
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVarP(&cfg.file, "file", "f", "", "Read statements from this file instead of stdin")
	fs.BoolVarP(&cfg.dumpAST, "ast", "a", false, "Print the parsed tree of each statement")
	fs.BoolVarP(&cfg.keepGoing, "keep-going", "k", false, "Continue with the next line after a failing statement")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "Logs additional information")
	fs.BoolVarP(&cfg.showHelp, "help", "h", false, "Print usage information (this message) and quit")
	fs.Usage = func() {
		_, _ = fmt.Fprintln(w, "usage: calc [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, fs, errors.Wrap(err, "parse flags")
	}
	if fs.NArg() > 0 {
		return cfg, fs, errors.Errorf("unexpected arguments %q", fs.Args())
	}
	return cfg, fs, nil
}

func main() {
	cfg, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}
	if cfg.showHelp {
		fs.Usage()
		os.Exit(0)
	}

	al := zap.NewAtomicLevel()
	if cfg.verbose {
		al.SetLevel(zap.DebugLevel)
	}
	ec := zap.NewDevelopmentEncoderConfig()
	logger := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), al))
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	input := io.Reader(os.Stdin)
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			log.Fatalf("Failed to open input: %s", err)
		}
		defer func() { _ = f.Close() }() // Best effort, read only.
		input = f
	}

	s, err := run(input, os.Stdout, logger, cfg.options)
	fmt.Println(s)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Errorf("%s", e)
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type options struct {
	path       string
	configPath string
	prompt     string
	debug      bool
	silent     bool

	set map[string]bool // flags given on the command line
}

// parseArgs parses the command line. Flags may appear before or after
// the file name, of which at most one may be given.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("led", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.debug, "debug", false, "print diagnostics on error")
	fs.BoolVar(&opts.debug, "d", false, "print diagnostics on error (shorthand)")
	fs.BoolVar(&opts.silent, "s", false, "suppress byte counts")
	fs.StringVar(&opts.prompt, "p", "", "command prompt")
	fs.StringVar(&opts.configPath, "config", "", "path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "path to configuration file (shorthand)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: led [-d] [-s] [-p prompt] [-c config] [file]\n")
		fs.PrintDefaults()
	}
	var paths []string
	for {
		if err := fs.Parse(args); err != nil {
			return opts, err
		}
		if fs.NArg() == 0 {
			break
		}
		paths = append(paths, fs.Arg(0))
		args = fs.Args()[1:]
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	switch len(paths) {
	case 0:
	case 1:
		opts.path = paths[0]
	default:
		return opts, fmt.Errorf("%w: %q", ErrMultipleFiles, paths)
	}
	return opts, nil
}

// merge fills in the settings that were not given as flags from cfg.
func (o *options) merge(cfg Config) {
	if !o.set["p"] {
		o.prompt = cfg.Prompt
	}
	if !o.set["d"] && !o.set["debug"] {
		o.debug = cfg.Debug
	}
	if !o.set["s"] {
		o.silent = cfg.Silent
	}
}

func main() {
	script := !term.IsTerminal(int(os.Stdin.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, script))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, script bool) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, ErrMultipleFiles) {
			fmt.Fprintf(stderr, "led: %s\n", err)
			return 1
		}
		return 2
	}
	configPath := opts.configPath
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := loadConfig(configPath, opts.configPath != "")
	if err != nil {
		fmt.Fprintf(stderr, "led: %s\n", err)
		return 1
	}
	opts.merge(cfg)

	ed := NewEditor(
		WithStdin(stdin),
		WithStdout(stdout),
		WithStderr(stderr),
		WithPrompt(opts.prompt),
		WithSilent(opts.silent),
		WithDebug(opts.debug),
		WithScript(script),
	)
	if opts.path != "" {
		if err := ed.Load(opts.path); err != nil {
			fmt.Fprintf(stderr, "led: %s\n", err)
			return 1
		}
	}
	if err := ed.Run(); err != nil {
		return 1
	}
	return 0
}

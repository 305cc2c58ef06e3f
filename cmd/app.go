package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/exp/maps"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

// errQuit signals a clean end of the interactive session.
var errQuit = errors.New("quit requested")

const historyFileName = ".gocalc_history"

// replCommands is populated in init: help prints the command names, so a
// composite literal here would make the declaration depend on itself.
var replCommands map[string]func(*CalcApp) error

func init() {
	replCommands = map[string]func(*CalcApp) error{
		"quit":  (*CalcApp).quit,
		"exit":  (*CalcApp).quit,
		"help":  (*CalcApp).help,
		"clear": (*CalcApp).clear,
	}
}

type CalcApp struct {
	err      error
	interp   interpreter.Interpreter
	stdout   io.Writer
	stderr   io.Writer
	reporter calcerrors.ErrReporter
	log      *slog.Logger
}

func NewCalcApp(options ...AppOption) *CalcApp {
	opts := newAppOpts(options...)

	return &CalcApp{
		interp:   interpreter.NewInterpreter(),
		stdout:   opts.stdout,
		stderr:   opts.stderr,
		reporter: opts.reporter,
		log:      opts.logger,
	}
}

func (app *CalcApp) reportError(err error) {
	app.reporter.ReportError(err)
	app.err = err
}

func (app *CalcApp) resetError() {
	app.err = nil
}

func (app *CalcApp) Main(args []string) int {
	flags := flag.NewFlagSet("gocalc", flag.ContinueOnError)
	flags.SetOutput(app.stderr)
	flags.Usage = func() {
		fmt.Fprintln(app.stderr, "Usage: gocalc [flags] [expression]")
		flags.PrintDefaults()
	}
	debug := flags.Bool("debug", false, "log the output of each evaluation stage")
	logFile := flags.String("log-file", "", "append logs to `file`")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 64
	}

	if *debug || *logFile != "" {
		log, closeLog, err := newLogger(app.stderr, *debug, *logFile)
		if err != nil {
			app.reportError(err)
			return 64
		}
		defer func() { _ = closeLog() }()
		app.log = log
	}

	var err error
	if rest := flags.Args(); len(rest) > 0 {
		err = app.run(strings.Join(rest, " "))
	} else {
		err = app.runPrompt()
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *CalcApp) runPrompt() error {
	app.printHelp()

	history := historyFile()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		HistoryFile:  history,
		AutoComplete: commandCompleter(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	app.log.Info("interactive session started", "history", history)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := app.execLine(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			app.reportError(err)
			app.resetError()
		}
	}
}

// execLine runs a single prompt line: a blank line is a no-op, control words
// match case-insensitively, anything else is evaluated as an expression.
func (app *CalcApp) execLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if command, ok := replCommands[strings.ToLower(line)]; ok {
		return command(app)
	}

	return app.run(line)
}

func (app *CalcApp) run(input string) error {
	s := scanner.NewScanner(input)

	tokens, err := s.Scan()
	if err != nil {
		return err
	}
	app.log.Debug("scanned", "tokens", token.Join(tokens, " "))

	p := parser.NewParser(tokens)
	rpn, err := p.Parse()
	if err != nil {
		return err
	}
	app.log.Debug("reordered", "postfix", token.Join(rpn, " "))

	return app.interpret(rpn)
}

func (app *CalcApp) interpret(rpn []token.Token) error {
	value, err := app.interp.EvaluatePostfix(rpn)
	if err != nil {
		return err
	}

	app.log.Debug("evaluated", "value", value)
	fmt.Fprintln(app.stdout, interpreter.FormatResult(value))

	return nil
}

func (app *CalcApp) quit() error {
	fmt.Fprintln(app.stdout, "Goodbye.")
	return errQuit
}

func (app *CalcApp) help() error {
	app.printHelp()
	return nil
}

func (app *CalcApp) clear() error {
	// ANSI: erase display, home cursor
	fmt.Fprint(app.stdout, "\x1B[2J\x1B[1;1H")
	return nil
}

func (app *CalcApp) printHelp() {
	fmt.Fprintln(app.stdout, "gocalc, an interactive calculator")
	fmt.Fprintln(app.stdout, "Type an expression, e.g.: 2 + 3 * (4 - 1) ^ 2")
	fmt.Fprintln(app.stdout, "Operators: + - * / ^ % (percent turns a number into a fraction, e.g. 50% -> 0.5)")
	fmt.Fprintln(app.stdout, "Commands: "+strings.Join(commandNames(), ", "))
}

// historyFile returns the prompt history location, or empty to disable
// persistent history when the home directory is unknown.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, historyFileName)
}

func commandNames() []string {
	names := maps.Keys(replCommands)
	slices.Sort(names)
	return names
}

func commandCompleter() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(replCommands))
	for _, name := range commandNames() {
		items = append(items, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(items...)
}

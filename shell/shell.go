// Package shell implements the interactive line-based front end that parses
// commands and dispatches them to a file system.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/fssim"
	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/internal/util"
)

const MsgGoodbye = "Goodbye!"

var bannerRule = strings.Repeat("=", 60)

// Shell reads commands line by line and writes their results to out.
// A Shell is single-threaded; only the input reader runs on its own goroutine.
type Shell struct {
	fs      fssim.FileSystemOperator
	cfg     *config.Config
	out     io.Writer
	styles  styles
	running bool
}

// New creates a shell over fs. A nil cfg uses the defaults.
func New(fs fssim.FileSystemOperator, cfg *config.Config, out io.Writer) *Shell {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Shell{
		fs:      fs,
		cfg:     cfg,
		out:     out,
		styles:  newStyles(out, cfg.Color),
		running: true,
	}
}

// Running reports whether the session is still accepting commands
func (s *Shell) Running() bool {
	return s.running
}

// ParseCommand splits line on whitespace and lower-cases the command name.
// An empty or blank line yields an empty name.
func ParseCommand(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute runs a single command line and returns the text to display.
// Errors and panics from the handler are turned into messages so that a
// failing command never ends the session.
func (s *Shell) Execute(line string) (out string) {
	logger := util.GetLogger("Shell")

	name, args := ParseCommand(line)
	if name == "" {
		return ""
	}
	h, ok := commands[name]
	if !ok {
		return s.styles.err(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", name))
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("cmd", name).Msg("Command panicked")
			out = s.styles.err(fmt.Sprintf("Error executing command: %v", r))
		}
	}()

	logger.Debug().Str("cmd", name).Strs("args", args).Msg("Executing command")
	res, err := h(s, args)
	if err != nil {
		logger.Trace().Err(err).Str("cmd", name).Msg("Command failed")
		return s.styles.err(err.Error())
	}
	return res
}

// Prompt returns the prompt for the current directory, i.e. "fs:/docs$ "
func (s *Shell) Prompt() string {
	return s.styles.prompt(fmt.Sprintf("%s:%s$", s.cfg.PromptPrefix, s.fs.Pwd())) + " "
}

// Run prints the banner (if enabled) and then loops reading commands from in
// until exit/quit, end of input or ctx is done. Only a read error from in is
// returned.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	logger := util.GetLogger("Shell")

	if s.cfg.Banner {
		s.printBanner()
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for s.running {
		fmt.Fprint(s.out, s.Prompt())

		select {
		case <-ctx.Done():
			logger.Info().Err(ctx.Err()).Msg("Session interrupted")
			fmt.Fprintln(s.out, "\n\n"+MsgGoodbye)
			return nil
		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if err != nil {
					logger.Error().Err(err).Msg("Failed reading input")
				}
				fmt.Fprintln(s.out, "\n\n"+MsgGoodbye)
				return err
			}
			if res := s.Execute(line); res != "" {
				fmt.Fprintln(s.out, res)
			}
		}
	}
	return nil
}

func (s *Shell) printBanner() {
	fmt.Fprintln(s.out, s.styles.muted(bannerRule))
	fmt.Fprintln(s.out, s.styles.title("Welcome to the File System Simulator!"))
	fmt.Fprintln(s.out, "In-memory tree of directories and files")
	fmt.Fprintln(s.out, s.styles.muted(bannerRule))
	fmt.Fprintln(s.out, "Type 'help' for available commands or 'exit' to quit.")
	fmt.Fprintln(s.out)
}

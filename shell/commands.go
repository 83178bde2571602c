package shell

import (
	"strconv"
	"strings"

	"github.com/brettbedarf/fssim"
)

// UsageError reports a command invoked with missing arguments
type UsageError struct {
	Usage string // i.e. "mkdir <directory_name>"
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

// handler runs one command against the shell and returns its output
type handler func(s *Shell, args []string) (string, error)

// commands maps every command name to its handler
var commands = map[string]handler{
	"ls":    cmdLs,
	"pwd":   cmdPwd,
	"mkdir": cmdMkdir,
	"touch": cmdTouch,
	"cd":    cmdCd,
	"rm":    cmdRm,
	"mv":    cmdMv,
	"tree":  cmdTree,
	"help":  cmdHelp,
	"exit":  cmdExit,
	"quit":  cmdExit,
	"clear": cmdClear,
}

func cmdLs(s *Shell, args []string) (string, error) {
	if len(args) > 0 {
		return s.fs.Ls(args[0])
	}
	return s.fs.Ls("")
}

func cmdPwd(s *Shell, _ []string) (string, error) {
	return s.fs.Pwd(), nil
}

func cmdMkdir(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", &UsageError{Usage: "mkdir <directory_name>"}
	}
	return s.fs.Mkdir(args[0])
}

func cmdTouch(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", &UsageError{Usage: "touch <filename>"}
	}
	return s.fs.Touch(args[0])
}

func cmdCd(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return s.fs.Cd("/")
	}
	return s.fs.Cd(args[0])
}

func cmdRm(s *Shell, args []string) (string, error) {
	if len(args) == 0 {
		return "", &UsageError{Usage: "rm [-r] <name>"}
	}
	name := args[0]
	recursive := false
	if name == "-r" {
		if len(args) < 2 {
			return "", &UsageError{Usage: "rm -r <name>"}
		}
		recursive = true
		name = args[1]
	}
	return s.fs.Rm(name, recursive)
}

func cmdMv(s *Shell, args []string) (string, error) {
	if len(args) < 2 {
		return "", &UsageError{Usage: "mv <source> <destination>"}
	}
	return s.fs.Mv(args[0], args[1])
}

func cmdTree(s *Shell, args []string) (string, error) {
	maxDepth := fssim.NoDepthLimit
	if len(args) > 0 {
		if depth, ok := parseDepth(args[0]); ok {
			maxDepth = depth
		}
	}
	return s.fs.Tree(maxDepth), nil
}

// parseDepth accepts only tokens made of ASCII digits that fit in an int
func parseDepth(tok string) (int, bool) {
	if tok == "" || strings.TrimLeft(tok, "0123456789") != "" {
		return 0, false
	}
	depth, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return depth, true
}

func cmdHelp(_ *Shell, _ []string) (string, error) {
	return helpText, nil
}

func cmdExit(s *Shell, _ []string) (string, error) {
	s.running = false
	return MsgGoodbye, nil
}

func cmdClear(s *Shell, _ []string) (string, error) {
	return strings.Repeat("\n", s.cfg.ClearLines), nil
}

package cli

import (
	"errors"
	"fmt"
)

const Usage = "Usage: gg [PATH_TO_DIRECTORY] | gg --set-default PATH_TO_DIRECTORY"

var ErrUsage = errors.New("invalid arguments")

// Args are the command line arguments without the program name.
type Args []string

type Action int

const (
	ActionScan Action = iota
	ActionScanDefault
	ActionSetDefault
	ActionHelp
)

type Command struct {
	Action Action
	Path   string
}

// Parse maps arguments to a command:
//
//	gg                      scan the stored default directory
//	gg PATH                 scan PATH
//	gg --set-default PATH   store PATH as the default directory
//	gg -h | --help          print usage
func Parse(args Args) (Command, error) {
	switch len(args) {
	case 0:
		return Command{Action: ActionScanDefault}, nil
	case 1:
		switch args[0] {
		case "-h", "--help":
			return Command{Action: ActionHelp}, nil
		case "--set-default", "-s":
			return Command{}, fmt.Errorf("%w: %s requires a path", ErrUsage, args[0])
		}
		if isFlag(args[0]) {
			return Command{}, fmt.Errorf("%w: unknown flag %s", ErrUsage, args[0])
		}
		return Command{Action: ActionScan, Path: args[0]}, nil
	case 2:
		if args[0] == "--set-default" || args[0] == "-s" {
			return Command{Action: ActionSetDefault, Path: args[1]}, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %v", ErrUsage, []string(args))
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

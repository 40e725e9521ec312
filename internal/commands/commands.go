// Package commands is the console's command registry. A console line starting with "/" names
// a command followed by its flags and arguments, e.g. "/regen -seed 7".
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "/"

// ErrNoCommand is returned by Execute for an empty command line.
var ErrNoCommand = errors.New("missing command, try /help")

// Command is a console command. Flags are defined on FlagSet; Run receives the positional
// arguments left after parsing.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds commands by name and writes their output to Out.
type Registry struct {
	Out  io.Writer
	cmds map[string]*Command
}

// NewRegistry returns a registry that already knows "help".
func NewRegistry(out io.Writer) *Registry {
	r := &Registry{Out: out, cmds: make(map[string]*Command)}
	r.Register("help", "list commands", nil, func([]string) error {
		r.help()
		return nil
	})
	return r
}

// Register adds a command. fs may be nil for commands without flags; its errors and usage
// are sent to the registry's output.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(r.Out)
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse splits a console line. Lines starting with "/" return their fields with ok true;
// any other line is chat and returns ok false.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	return strings.Fields(line[len(prefix):]), true
}

// Execute runs the command in args[0] with args[1:] as its flags and arguments. "-h" prints
// the command's usage and is not an error.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, try /help", args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return cmd.Run(cmd.FlagSet.Args())
}

func (r *Registry) help() {
	for _, name := range r.Names() {
		fmt.Fprintf(r.Out, "/%-8s %s\n", name, r.cmds[name].Summary)
	}
}

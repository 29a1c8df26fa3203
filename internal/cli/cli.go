// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/nextsysinfo/internal/config"
	"github.com/retroenv/nextsysinfo/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
// Values of an optional settings file are used for all flags that are not
// given on the command line.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(args []string) (options.Program, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	var opts options.Program
	unitID := readOptionFlags(flags, &opts)

	if err := flags.Parse(args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if *unitID > 0xFF {
		return opts, &UsageError{flags: flags, msg: fmt.Sprintf("invalid Modbus unit id %d", *unitID)}
	}
	opts.UnitID = uint8(*unitID)

	positional := flags.Args()
	if err := validateArgs(flags, positional); err != nil {
		return opts, err
	}
	if len(positional) == 1 {
		opts.Output = positional[0]
	}

	if opts.Config != "" {
		settings, err := config.Load(opts.Config)
		if err != nil {
			return opts, fmt.Errorf("reading settings: %w", err)
		}
		applySettings(flags, &opts, settings)
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: nextsysinfo [options] [file]\n\n")
	fmt.Printf("  file\tname of log file or directory (directory: sysinfo-N.txt)\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that at most one log file is given and that it is
// passed after all options.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after log file, please pass the log file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: fmt.Sprintf("unexpected argument %s", args[1])}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *uint {
	flags.StringVar(&opts.Topics, "t", "", "topics to show: r[eg] v[ar] o[s] (default: all)")
	flags.StringVar(&opts.Topics, "topic", "", "alias for -t")
	flags.BoolVar(&opts.Force, "f", false, "force overwrite of an existing log file")
	flags.BoolVar(&opts.Force, "force", false, "alias for -f")
	flags.BoolVar(&opts.Quiet, "q", false, "no screen output")
	flags.BoolVar(&opts.Quiet, "quiet", false, "alias for -q")
	flags.BoolVar(&opts.Version, "v", false, "print version info")
	flags.StringVar(&opts.Snapshot, "i", "", "machine snapshot file (.yaml/.yml)")
	flags.StringVar(&opts.Address, "bridge", "", "Modbus TCP bridge endpoint host:port")
	unitID := flags.Uint("unit", options.DefaultUnitID, "Modbus unit id")
	flags.DurationVar(&opts.Timeout, "timeout", options.DefaultTimeout, "bridge timeout")
	flags.StringVar(&opts.Source, "s", "", "machine source: snapshot, bridge (default: auto-detect)")
	flags.StringVar(&opts.Save, "save", "", "save the captured machine snapshot as YAML")
	flags.IntVar(&opts.Columns, "cols", 0, "screen columns for section headers (default: terminal width or 32)")
	flags.StringVar(&opts.Config, "c", "", "YAML settings file")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	return unitID
}

// flagAliases maps long flag names to the short flag they share a value with.
var flagAliases = map[string]string{
	"topic": "t",
	"force": "f",
	"quiet": "q",
}

// applySettings copies all settings into the options whose flags were not
// set on the command line.
func applySettings(flags *flag.FlagSet, opts *options.Program, settings *config.Settings) {
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		name := f.Name
		if short, ok := flagAliases[name]; ok {
			name = short
		}
		set[name] = true
	})

	setString := func(name string, target *string, value string) {
		if !set[name] && value != "" {
			*target = value
		}
	}
	setBool := func(name string, target *bool, value *bool) {
		if !set[name] && value != nil {
			*target = *value
		}
	}

	setString("t", &opts.Topics, settings.Topics)
	setString("i", &opts.Snapshot, settings.Snapshot)
	setString("s", &opts.Source, settings.Source)
	setBool("f", &opts.Force, settings.Force)
	setBool("q", &opts.Quiet, settings.Quiet)
	setBool("debug", &opts.Debug, settings.Debug)

	if opts.Output == "" {
		opts.Output = settings.Output
	}
	if !set["cols"] && settings.Columns > 0 {
		opts.Columns = settings.Columns
	}

	if settings.Bridge == nil {
		return
	}
	setString("bridge", &opts.Address, settings.Bridge.Address)
	if !set["unit"] && settings.Bridge.UnitID != nil {
		opts.UnitID = *settings.Bridge.UnitID
	}
	if !set["timeout"] && settings.Bridge.Timeout > time.Duration(0) {
		opts.Timeout = settings.Bridge.Timeout
	}
}

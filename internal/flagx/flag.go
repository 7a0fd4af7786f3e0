// Package flagx contains small helpers that let several independent flag
// parsers (JSON config lookup, server flags, CLI sub-commands) share os.Args
// without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Both "-f value" and "-f=value" forms are recognised. A following argument
// is treated as the value unless it starts with "-". The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFile extracts the JSON config path given via -c or -config.
// It returns "" when neither flag is present. Other flags are ignored.
func ConfigFile(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return config
}

// SplitCommand separates a leading sub-command name from its arguments.
// Leading global flags (anything starting with "-") are skipped over and
// returned as part of rest, so "cli -c x.json register -mint M" yields
// ("register", ["-c", "x.json", "-mint", "M"]).
func SplitCommand(args []string) (cmd string, rest []string) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if cmd == "" && !strings.HasPrefix(a, "-") {
			if i > 0 && strings.HasPrefix(args[i-1], "-") && !strings.Contains(args[i-1], "=") && isValueOfPrev(rest) {
				rest = append(rest, a)
				continue
			}
			cmd = a
			continue
		}
		rest = append(rest, a)
	}
	return cmd, rest
}

// isValueOfPrev reports whether the last collected token is a global flag
// that takes a value.
func isValueOfPrev(rest []string) bool {
	if len(rest) == 0 {
		return false
	}
	switch rest[len(rest)-1] {
	case "-c", "-config", "-a", "-w", "-i", "-t":
		return true
	}
	return false
}

// Package flagx contains helpers for parsing a subset of command-line
// flags without tripping over flags owned by other components.
package flagx

import "strings"

// Select returns the arguments from args that belong to one of the given
// flag names. Both the "-flag value" and "-flag=value" forms are kept
// intact; everything else is dropped, so a flag.FlagSet can parse the
// result without ever seeing an unknown flag.
func Select(args []string, names ...string) []string {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	selected := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value" form: match on the part before '='.
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				selected = append(selected, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			selected = append(selected, arg)
			// Keep the value that follows, unless it looks like a flag.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				selected = append(selected, args[i+1])
				i++
			}
		}
	}
	return selected
}

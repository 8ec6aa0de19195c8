package main

import (
	"flag"
	"strings"
)

// splitArgs separates registered flags from positional arguments so that
// ranges such as "-2,1" stay positional. A flag is an argument starting with
// '-' whose name (before any '=') is defined in fs; a non-boolean flag given
// without '=' takes the next argument as its value. "--" ends flag scanning.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		name, hasValue := flagName(a)
		f := fs.Lookup(name)
		if name == "" || (f == nil && name != "h" && name != "help") {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		if f == nil || hasValue || isBoolFlag(f) {
			continue
		}
		if i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, positional
}

// flagName returns the name of a "-name", "--name" or "-name=value" argument.
func flagName(a string) (name string, hasValue bool) {
	if len(a) < 2 || a[0] != '-' {
		return "", false
	}
	name = strings.TrimPrefix(a[1:], "-")
	name, _, hasValue = strings.Cut(name, "=")
	return name, hasValue
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

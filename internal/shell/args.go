package shell

// flagSet holds single-character flags parsed from POSIX-bundled clusters
// such as -ltra. Unrecognized characters are recorded too; handlers just
// never look at them.
type flagSet map[rune]bool

// splitArgs separates bundled flag clusters from positional operands.
// There is no quoting or escaping; a lone "-" counts as an operand.
func splitArgs(args []string) (flagSet, []string) {
	flags := make(flagSet)
	var operands []string
	for _, a := range args {
		if len(a) > 1 && a[0] == '-' {
			for _, r := range a[1:] {
				flags[r] = true
			}
			continue
		}
		operands = append(operands, a)
	}
	return flags, operands
}

package shell

// The mutating commands are simulated: they validate operand counts and
// print a success line, but never touch the tree. Real writes in the
// product go through the admin persistence API, which the terminal does
// not talk to.

func cmdMkdir(_ *Interpreter, _ *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		res.errorf("mkdir: missing operand")
		return
	}
	for _, op := range operands {
		res.outputf("mkdir: created directory '%s'", op)
	}
}

func cmdTouch(_ *Interpreter, _ *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		res.errorf("touch: missing file operand")
		return
	}
	for _, op := range operands {
		res.outputf("touch: updated '%s'", op)
	}
}

func cmdRm(_ *Interpreter, _ *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		res.errorf("rm: missing operand")
		return
	}
	for _, op := range operands {
		res.outputf("rm: removed '%s'", op)
	}
}

func cmdCp(_ *Interpreter, _ *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) < 2 {
		res.errorf("cp: missing file operand")
		return
	}
	res.outputf("cp: '%s' -> '%s'", operands[0], operands[1])
}

func cmdMv(_ *Interpreter, _ *Session, args []string, res *Result) {
	_, operands := splitArgs(args)
	if len(operands) < 2 {
		res.errorf("mv: missing file operand")
		return
	}
	res.outputf("mv: '%s' -> '%s'", operands[0], operands[1])
}

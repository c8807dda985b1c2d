package shell

import "fmt"

// LineKind types a single line of terminal output.
type LineKind int

const (
	// LineInput echoes the prompt and the submitted command.
	LineInput LineKind = iota
	// LineOutput is ordinary command output.
	LineOutput
	// LineError is a reported failure (never a Go error to the caller).
	LineError
)

// String returns the lowercase name used in wire payloads.
func (k LineKind) String() string {
	switch k {
	case LineInput:
		return "input"
	case LineError:
		return "error"
	default:
		return "output"
	}
}

// Line is one row of the session log.
type Line struct {
	Kind LineKind `json:"kind"`
	Text string   `json:"text"`
}

// Result is the outcome of evaluating one command line.
type Result struct {
	Lines []Line

	// ClearScreen asks the host to empty the visible log (the clear
	// command); Exited asks it to close the terminal (the exit command).
	ClearScreen bool
	Exited      bool
}

func (r *Result) output(text string) {
	r.Lines = append(r.Lines, Line{Kind: LineOutput, Text: text})
}

func (r *Result) outputf(format string, args ...any) {
	r.Lines = append(r.Lines, Line{Kind: LineOutput, Text: fmt.Sprintf(format, args...)})
}

func (r *Result) errorf(format string, args ...any) {
	r.Lines = append(r.Lines, Line{Kind: LineError, Text: fmt.Sprintf(format, args...)})
}

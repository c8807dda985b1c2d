// Package diff implements the line differ behind the editor's change view.
// It classifies lines as added, removed, modified or unchanged using a
// greedy two-pointer scan rather than a minimal-edit-distance algorithm;
// the lookahead makes it O(n²) worst case, which is fine at editor scale
// but not for large files.
package diff

import (
	"encoding/json"
	"strings"
)

// Kind classifies a single diff line.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
	Modified
)

// String returns the lowercase name used in wire payloads.
func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}

// MarshalJSON emits the kind name rather than its numeric value.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Line is one classified row of the comparison. LeftNumber and RightNumber
// are 1-based; zero means the side does not participate. LeftText is set
// for Removed, Modified and Unchanged lines, RightText for Added, Modified
// and Unchanged lines.
type Line struct {
	Kind        Kind   `json:"kind"`
	LeftText    string `json:"leftText,omitempty"`
	RightText   string `json:"rightText,omitempty"`
	LeftNumber  int    `json:"leftNumber,omitempty"`
	RightNumber int    `json:"rightNumber,omitempty"`
}

// Stats tallies line kinds over a produced sequence.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
}

// Compare diffs two texts line by line. Reading the result in order
// reconstructs the left text from the Removed/Modified/Unchanged entries
// and the right text from the Added/Modified/Unchanged entries.
func Compare(left, right string) []Line {
	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")

	var result []Line
	i, j := 0, 0
	for i < len(leftLines) || j < len(rightLines) {
		switch {
		case i < len(leftLines) && j < len(rightLines) && leftLines[i] == rightLines[j]:
			result = append(result, Line{
				Kind:        Unchanged,
				LeftText:    leftLines[i],
				RightText:   rightLines[j],
				LeftNumber:  i + 1,
				RightNumber: j + 1,
			})
			i++
			j++
		case i >= len(leftLines):
			result = append(result, Line{
				Kind:        Added,
				RightText:   rightLines[j],
				RightNumber: j + 1,
			})
			j++
		case j >= len(rightLines):
			result = append(result, Line{
				Kind:       Removed,
				LeftText:   leftLines[i],
				LeftNumber: i + 1,
			})
			i++
		default:
			rightHasLeftLater := contains(rightLines[j+1:], leftLines[i])
			leftHasRightLater := contains(leftLines[i+1:], rightLines[j])
			switch {
			case !rightHasLeftLater && !leftHasRightLater:
				// Neither line reappears: treat as an in-place edit.
				result = append(result, Line{
					Kind:        Modified,
					LeftText:    leftLines[i],
					RightText:   rightLines[j],
					LeftNumber:  i + 1,
					RightNumber: j + 1,
				})
				i++
				j++
			case rightHasLeftLater:
				// The left line shows up further down on the right, so the
				// current right line is a genuine insertion.
				result = append(result, Line{
					Kind:        Added,
					RightText:   rightLines[j],
					RightNumber: j + 1,
				})
				j++
			default:
				result = append(result, Line{
					Kind:       Removed,
					LeftText:   leftLines[i],
					LeftNumber: i + 1,
				})
				i++
			}
		}
	}
	return result
}

// Summarize tallies the kinds in a diff sequence.
func Summarize(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		default:
			s.Unchanged++
		}
	}
	return s
}

func contains(lines []string, target string) bool {
	for _, l := range lines {
		if l == target {
			return true
		}
	}
	return false
}

package server

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rustpress/adminterm/internal/shell"
)

// MessageType identifies a websocket request from the browser terminal.
type MessageType string

const (
	MessageTypeExec     MessageType = "exec"
	MessageTypeComplete MessageType = "complete"
	MessageTypeHistory  MessageType = "history"
	MessageTypeReset    MessageType = "reset"
)

// Request is the envelope for all websocket messages. Data is decoded per
// message type with mapstructure.
type Request struct {
	Type MessageType    `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// ExecData carries a command line to evaluate.
type ExecData struct {
	Command string `mapstructure:"command"`
}

// CompleteData carries a partial command for Tab completion.
type CompleteData struct {
	Partial string `mapstructure:"partial"`
}

// HistoryData steps through the session history: direction is "prev" or
// "next".
type HistoryData struct {
	Direction string `mapstructure:"direction"`
}

// LineDTO is the wire format of one output line.
type LineDTO struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Response is the envelope sent back for every request.
type Response struct {
	Type       MessageType `json:"type"`
	SessionID  string      `json:"sessionId"`
	Cwd        string      `json:"cwd"`
	Prompt     string      `json:"prompt"`
	Lines      []LineDTO   `json:"lines,omitempty"`
	Cleared    bool        `json:"cleared,omitempty"`
	Exited     bool        `json:"exited,omitempty"`
	Completion string      `json:"completion,omitempty"`
	Entry      string      `json:"entry,omitempty"`
	Browsing   bool        `json:"browsing,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// decodeData unmarshals the untyped request payload into a typed struct.
func decodeData[T any](data map[string]any) (T, error) {
	var out T
	if err := mapstructure.Decode(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode request data: %w", err)
	}
	return out, nil
}

func toLineDTOs(lines []shell.Line) []LineDTO {
	out := make([]LineDTO, len(lines))
	for i, l := range lines {
		out[i] = LineDTO{Kind: l.Kind.String(), Text: l.Text}
	}
	return out
}

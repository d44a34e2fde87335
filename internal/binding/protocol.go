package binding

import (
	"encoding/json"
	"fmt"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

// Message types on the wire.
const (
	TypeValue     = "value"
	TypeSet       = "set"
	TypeIncrement = "increment"
	TypeDecrement = "decrement"
)

// Message is a JSON text frame exchanged with binding clients.
type Message struct {
	Type  string           `json:"type"`
	ID    string           `json:"id,omitempty"`
	Value spinbutton.Value `json:"value"`
}

// CommandKind is the action a client asked for.
type CommandKind int

const (
	CommandSet CommandKind = iota
	CommandIncrement
	CommandDecrement
)

// String returns the wire name of the command.
func (k CommandKind) String() string {
	switch k {
	case CommandSet:
		return TypeSet
	case CommandIncrement:
		return TypeIncrement
	case CommandDecrement:
		return TypeDecrement
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a decoded client request.
type Command struct {
	Kind   CommandKind
	Value  spinbutton.Value // only for CommandSet
	Remote string
}

// ProtocolError reports a frame that could not be turned into a Command.
type ProtocolError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("binding protocol: %s: %v", e.Reason, e.Err)
	}
	return "binding protocol: " + e.Reason
}

// Unwrap returns the underlying error
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// DecodeCommand parses an inbound frame.
func DecodeCommand(data []byte) (Command, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Command{}, &ProtocolError{Reason: "malformed JSON", Err: err}
	}

	switch msg.Type {
	case TypeSet:
		return Command{Kind: CommandSet, Value: msg.Value}, nil
	case TypeIncrement:
		return Command{Kind: CommandIncrement}, nil
	case TypeDecrement:
		return Command{Kind: CommandDecrement}, nil
	case "":
		return Command{}, &ProtocolError{Reason: "missing message type"}
	default:
		return Command{}, &ProtocolError{Reason: fmt.Sprintf("unknown message type %q", msg.Type)}
	}
}

// encodeValue builds the outbound value message.
func encodeValue(id string, v spinbutton.Value) ([]byte, error) {
	return json.Marshal(Message{Type: TypeValue, ID: id, Value: v})
}

package uuid

import (
	"encoding/json"
	"os"
)

// State is the Gregorian generation state a Saver persists across process
// restarts: the last issued timestamp, the clock sequence and the node the
// pair belongs to. A restored state is only meaningful for the same node.
type State struct {
	Ticks    uint64  `json:"ticks"`
	ClockSeq uint16  `json:"clock_seq"`
	Node     [6]byte `json:"node"`
}

// Saver is the stable store RFC 4122 section 4.2.1 describes for time-based
// generators. Load runs once at first use; Save runs after every issued
// time-based UUID and is best effort.
type Saver interface {
	Load() (State, error)
	Save(State) error
}

// FileSaver persists the state as JSON in a single file.
type FileSaver struct {
	Path string
}

// Load reads the state file.
func (f FileSaver) Load() (State, error) {
	var st State
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, err
	}
	return st, nil
}

// Save writes the state file.
func (f FileSaver) Save(st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}

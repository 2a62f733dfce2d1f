package cpl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// EventOp identifies the kind of a lifetime event.
type EventOp uint8

const (
	// EventAlloc records the creation of a tracked owned value.
	EventAlloc EventOp = iota
	// EventDrop records the destruction of a tracked owned value.
	EventDrop
)

// String returns a human-readable name for the event kind.
func (op EventOp) String() string {
	switch op {
	case EventAlloc:
		return "alloc"
	case EventDrop:
		return "drop"
	default:
		return "event"
	}
}

// Event is one recorded lifetime transition.
type Event struct {
	Seq    uint64
	Op     EventOp
	Object uint64
}

// Tracer records lifetime events for debugging. Only the safe variant
// emits events; under the fast variant a registered Tracer stays empty.
// A nil *Tracer discards everything.
type Tracer struct {
	w      io.Writer
	events []Event
	seq    uint64
}

// NewTracer creates a tracer that additionally writes a text form of each
// event to w. Pass nil to record events without streaming them.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Format: [life] <op> object#<id>
func (t *Tracer) record(op EventOp, object uint64) {
	if t == nil {
		return
	}
	t.seq++
	t.events = append(t.events, Event{Seq: t.seq, Op: op, Object: object})
	if t.w != nil {
		fmt.Fprintf(t.w, "[life] %s object#%d\n", op, object)
	}
}

// Events returns the recorded events in order.
func (t *Tracer) Events() []Event {
	if t == nil {
		return nil
	}
	return t.events
}

// Current schema version - increment when the log format changes.
const traceLogSchemaVersion uint16 = 1

type traceLog struct {
	Schema  uint16
	Variant string
	Events  []Event
}

// WriteLog serializes the recorded events to path. The write goes through
// a temporary file in the same directory followed by a rename, so a
// partially written log is never observed.
func (t *Tracer) WriteLog(path string) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".cpl-trace-*")
	if err != nil {
		return err
	}
	defer func() {
		if f != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(traceLog{
		Schema:  traceLogSchemaVersion,
		Variant: Variant,
		Events:  t.Events(),
	}); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	name := f.Name()
	f = nil
	return os.Rename(name, path)
}

// ReadLog reads a serialized event log back. It returns the recorded
// events and the variant that produced them.
func ReadLog(path string) ([]Event, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()

	var log traceLog
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&log); err != nil {
		return nil, "", err
	}
	if log.Schema != traceLogSchemaVersion {
		return nil, "", fmt.Errorf("unsupported trace log schema %d", log.Schema)
	}
	return log.Events, log.Variant, nil
}

var activeTracer *Tracer

// SetTracer installs t as the tracer receiving lifetime events and
// returns the previous one. Pass nil to disable tracing.
func SetTracer(t *Tracer) *Tracer {
	prev := activeTracer
	activeTracer = t
	return prev
}

func traceEvent(op EventOp, object uint64) {
	activeTracer.record(op, object)
}

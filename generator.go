package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"github.com/benbjohnson/clock"
)

// Generator issues new UUIDs. It is thread-safe and owns all generation
// state explicitly: the wall clock, the random source, the node identity,
// the DCE local identifiers and the persisted clock sequence are injected
// collaborators, never reached for ambiently.
type Generator struct {
	mu sync.Mutex

	clock    clock.Clock
	rand     io.Reader
	node     NodeProvider
	localIDs LocalIDProvider
	saver    Saver

	// Gregorian state, shared by versions 1, 2 and 6.
	timeReady bool
	lastTicks uint64
	clockSeq  uint16
	nodeID    [6]byte

	// Unix-millisecond state for version 7. The 12-bit counter keeps
	// values generated within one millisecond monotonic.
	lastUnixMilli uint64
	unixSeq       uint16
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock substitutes the wall clock, typically a mock in tests.
func WithClock(c clock.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithRandom substitutes the random source, typically a deterministic
// reader in tests.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// WithNode substitutes the node identity source for time-based versions.
func WithNode(p NodeProvider) Option {
	return func(g *Generator) { g.node = p }
}

// WithLocalIDs substitutes the DCE Security local identifier source for
// version 2.
func WithLocalIDs(p LocalIDProvider) Option {
	return func(g *Generator) { g.localIDs = p }
}

// WithSaver attaches a stable store for the Gregorian generation state, so
// the clock sequence survives restarts as RFC 4122 section 4.2.1 asks.
func WithSaver(s Saver) Option {
	return func(g *Generator) { g.saver = s }
}

// NewGenerator creates a generator with the real clock, crypto/rand, the
// hardware node identity (with a random fallback) and POSIX local
// identifiers. Options override any of these.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:    clock.New(),
		rand:     rand.Reader,
		node:     HardwareNode(),
		localIDs: POSIXLocalIDs{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// initTimeState resolves the node identity and seeds the clock sequence on
// first use. A persisted state is honored only when it belongs to the same
// node; otherwise the sequence is rerolled randomly. Callers hold g.mu.
func (g *Generator) initTimeState() error {
	if g.timeReady {
		return nil
	}
	node, err := g.node.NodeID()
	if err != nil {
		if node, err = randomNodeID(g.rand); err != nil {
			return err
		}
	}
	restored := false
	if g.saver != nil {
		if st, err := g.saver.Load(); err == nil && st.Node == node {
			g.lastTicks = st.Ticks
			g.clockSeq = st.ClockSeq & 0x3fff
			restored = true
		}
	}
	if !restored {
		var b [2]byte
		if _, err := io.ReadFull(g.rand, b[:]); err != nil {
			return err
		}
		g.clockSeq = binary.BigEndian.Uint16(b[:]) & 0x3fff
	}
	g.nodeID = node
	g.timeReady = true
	return nil
}

// timeState advances the Gregorian state for one issued UUID. The clock
// sequence bumps whenever the tick count fails to advance, which covers both
// clock regression and callers faster than the 100ns grid.
func (g *Generator) timeState(ticks uint64) (uint64, uint16, [6]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.initTimeState(); err != nil {
		return 0, 0, [6]byte{}, err
	}
	if ticks <= g.lastTicks {
		g.clockSeq = (g.clockSeq + 1) & 0x3fff
	}
	g.lastTicks = ticks
	if g.saver != nil {
		// Best effort: a missed save only risks a clock sequence reroll
		// on the next restart.
		_ = g.saver.Save(State{Ticks: g.lastTicks, ClockSeq: g.clockSeq, Node: g.nodeID})
	}
	return ticks, g.clockSeq, g.nodeID, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(uuid.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

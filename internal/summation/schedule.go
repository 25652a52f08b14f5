package summation

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Schedule selects how the index range is handed out to workers.
type Schedule int

const (
	// Static gives every worker one contiguous block up front. Block sizes
	// differ by at most one term.
	Static Schedule = iota
	// Dynamic lets workers pull fixed-size chunks from a shared cursor.
	Dynamic
	// Guided is Dynamic with chunks that shrink as the range drains.
	Guided
)

// DefaultSchedule is the schedule used when none is configured.
//
// Variation between runs needs workers that actually overlap. On a short
// range the first goroutine may drain every chunk before the others start,
// and then runs agree. Static with two workers never varies: each block
// partial is fixed and a+b == b+a exactly, so arrival order cannot matter.
const DefaultSchedule = Dynamic

// DefaultChunkSize is the chunk size of the dynamic and guided schedules.
const DefaultChunkSize = 1

var scheduleNames = map[Schedule]string{
	Static:  "static",
	Dynamic: "dynamic",
	Guided:  "guided",
}

// String implements fmt.Stringer.
func (s Schedule) String() string {
	if name, ok := scheduleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Schedule(%d)", int(s))
}

// ParseSchedule converts a schedule name into a Schedule.
func ParseSchedule(name string) (Schedule, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for s, n := range scheduleNames {
		if n == needle {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown schedule %q (want static, dynamic or guided)", name)
}

// ScheduleNames lists the accepted schedule names in declaration order.
func ScheduleNames() []string {
	return []string{Static.String(), Dynamic.String(), Guided.String()}
}

// span is a half-open index interval [lo, hi).
type span struct {
	lo, hi int
}

// dispenser hands out spans to workers until the range is exhausted.
// next must be safe for concurrent use by distinct workers.
type dispenser interface {
	next(worker int) (span, bool)
}

func newDispenser(s Schedule, r TermRange, workers, chunk int) dispenser {
	end := r.Hi + 1
	switch s {
	case Static:
		return newStaticDispenser(r.Lo, end, workers)
	case Guided:
		d := &guidedDispenser{end: end, workers: workers, minChunk: chunk}
		d.cursor.Store(int64(r.Lo))
		return d
	default:
		d := &dynamicDispenser{end: end, chunk: chunk}
		d.cursor.Store(int64(r.Lo))
		return d
	}
}

// staticDispenser assigns block w to worker w exactly once. Each worker only
// touches its own slot in taken.
type staticDispenser struct {
	blocks []span
	taken  []bool
}

func newStaticDispenser(lo, end, workers int) *staticDispenser {
	blocks := staticBlocks(lo, end, workers)
	return &staticDispenser{blocks: blocks, taken: make([]bool, len(blocks))}
}

// staticBlocks splits [lo, end) into workers contiguous blocks; the first
// (end-lo)%workers blocks get one extra term.
func staticBlocks(lo, end, workers int) []span {
	n := end - lo
	if n < 0 {
		n = 0
	}
	base, rem := n/workers, n%workers
	blocks := make([]span, workers)
	start := lo
	for w := range workers {
		size := base
		if w < rem {
			size++
		}
		blocks[w] = span{lo: start, hi: start + size}
		start += size
	}
	return blocks
}

func (d *staticDispenser) next(worker int) (span, bool) {
	if d.taken[worker] {
		return span{}, false
	}
	d.taken[worker] = true
	b := d.blocks[worker]
	return b, b.hi > b.lo
}

type dynamicDispenser struct {
	cursor atomic.Int64
	end    int
	chunk  int
}

func (d *dynamicDispenser) next(int) (span, bool) {
	start := int(d.cursor.Add(int64(d.chunk))) - d.chunk
	if start >= d.end {
		return span{}, false
	}
	return span{lo: start, hi: min(start+d.chunk, d.end)}, true
}

type guidedDispenser struct {
	cursor   atomic.Int64
	end      int
	workers  int
	minChunk int
}

func (d *guidedDispenser) next(int) (span, bool) {
	for {
		start := d.cursor.Load()
		if int(start) >= d.end {
			return span{}, false
		}
		size := max((d.end-int(start))/(2*d.workers), d.minChunk)
		if d.cursor.CompareAndSwap(start, start+int64(size)) {
			return span{lo: int(start), hi: min(int(start)+size, d.end)}, true
		}
	}
}

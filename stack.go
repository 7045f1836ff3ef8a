package cnc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nygeek/cnc/internal/value"
)

// Stack is the HP-35 register stack: a fixed number of slots labeled
// X, Y, Z, T (then 4, 5, ...), one memory register, and a monotonic
// interaction counter. The slot count never changes for the stack's
// lifetime: a push discards the topmost slot, a pop duplicates it
// downward ("T replicates into Z"). Every value admitted to the X slot
// is clamped toward nearby integers.
type Stack struct {
	slots  []value.Number
	labels []string
	storcl value.Number
	count  int

	alg      value.Algebra
	rel, abs float64
}

// NewStack builds a stack of the given depth (at least four) over the
// given algebra, with both clamp tolerances set to tol.
func NewStack(alg value.Algebra, depth int, rel, abs float64) *Stack {
	if depth < 4 {
		depth = 4
	}
	s := &Stack{
		slots:  make([]value.Number, depth),
		labels: make([]string, depth),
		storcl: alg.Zero(),
		alg:    alg,
		rel:    rel,
		abs:    abs,
	}
	for i := range s.slots {
		s.slots[i] = alg.Zero()
		s.labels[i] = strconv.Itoa(i)
	}
	copy(s.labels, []string{"X", "Y", "Z", "T"})
	return s
}

// Depth reports the fixed slot count.
func (s *Stack) Depth() int { return len(s.slots) }

// Label reports the semantic name of slot i.
func (s *Stack) Label(i int) string { return s.labels[i] }

// X reads the top slot without mutating the stack.
func (s *Stack) X() value.Number { return s.slots[0] }

// SetX writes the top slot in place, without shifting; the value is
// clamped on its way in.
func (s *Stack) SetX(v value.Number) value.Number {
	s.slots[0] = v.Clamp(s.rel, s.abs)
	return s.slots[0]
}

// Push shifts every slot upward, discarding the old topmost slot, and
// writes the clamped value into X. It returns the clamped value.
func (s *Stack) Push(v value.Number) value.Number {
	for i := len(s.slots) - 1; i > 0; i-- {
		s.slots[i] = s.slots[i-1]
	}
	return s.SetX(v)
}

// Pop reads X and shifts every slot downward. The final slot keeps its
// value, so the T register replicates into Z exactly as on the HP-35.
func (s *Stack) Pop() value.Number {
	v := s.slots[0]
	for i := 0; i < len(s.slots)-1; i++ {
		s.slots[i] = s.slots[i+1]
	}
	return v
}

// Rolldown rotates the stack downward by one slot with wraparound.
func (s *Stack) Rolldown() {
	x := s.slots[0]
	for i := 0; i < len(s.slots)-1; i++ {
		s.slots[i] = s.slots[i+1]
	}
	s.slots[len(s.slots)-1] = x
}

// Exch swaps the X and Y slots.
func (s *Stack) Exch() {
	s.slots[0], s.slots[1] = s.slots[1], s.slots[0]
}

// Sto copies X into the memory register and returns X unchanged.
func (s *Stack) Sto() value.Number {
	s.storcl = s.slots[0]
	return s.slots[0]
}

// Rcl pushes the memory register's value, consuming one push cycle.
func (s *Stack) Rcl() value.Number {
	return s.Push(s.storcl)
}

// Storcl reads the memory register.
func (s *Stack) Storcl() value.Number { return s.storcl }

// Clear resets every slot and the memory register to the additive
// identity of the active algebra.
func (s *Stack) Clear() {
	zero := s.alg.Zero()
	for i := range s.slots {
		s.slots[i] = zero
	}
	s.storcl = zero
}

// Count reports the interaction counter.
func (s *Stack) Count() int { return s.count }

// IncrementCount bumps the interaction counter; it never decreases.
func (s *Stack) IncrementCount() int {
	s.count++
	return s.count
}

func (s *Stack) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "M: %v\n\n", s.storcl)
	for i := len(s.slots) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%s: %v\n", s.labels[i], s.slots[i])
	}
	return sb.String()
}

// stackSnapshot is the transportable stack state: ordered [re, im]
// pairs from T-most slot down plus the memory register, depth, and
// interaction count.
type stackSnapshot struct {
	Stack  [][2]float64 `json:"stack"`
	Storcl [2]float64   `json:"storcl"`
	Depth  int          `json:"depth"`
	Count  int          `json:"count"`
}

// Snapshot renders the stack as JSON. It is only defined for algebras
// with an exact two-float projection; for the binary-float complex
// backend the round trip through Restore is bit-identical.
func (s *Stack) Snapshot() ([]byte, error) {
	snap := stackSnapshot{
		Stack: make([][2]float64, len(s.slots)),
		Depth: len(s.slots),
		Count: s.count,
	}
	for i, v := range s.slots {
		re, im, ok := value.Pair(v)
		if !ok {
			return nil, fmt.Errorf("snapshot of %s value: %w", s.alg.Name(), value.ErrUndefined)
		}
		snap.Stack[i] = [2]float64{re, im}
	}
	re, im, ok := value.Pair(s.storcl)
	if !ok {
		return nil, fmt.Errorf("snapshot of %s value: %w", s.alg.Name(), value.ErrUndefined)
	}
	snap.Storcl = [2]float64{re, im}
	return json.Marshal(snap)
}

// Restore reconstitutes slots, memory register, and counter from a
// Snapshot. The snapshot's depth must match the stack's; slot writes
// bypass the clamp so restored contents are exactly what was saved.
func (s *Stack) Restore(data []byte) error {
	var snap stackSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing stack snapshot: %w", err)
	}
	if snap.Depth != len(s.slots) || len(snap.Stack) != len(s.slots) {
		return fmt.Errorf("stack snapshot depth %d, want %d", snap.Depth, len(s.slots))
	}
	slots := make([]value.Number, len(s.slots))
	for i, pair := range snap.Stack {
		v, err := s.fromPair(pair)
		if err != nil {
			return err
		}
		slots[i] = v
	}
	storcl, err := s.fromPair(snap.Storcl)
	if err != nil {
		return err
	}
	copy(s.slots, slots)
	s.storcl = storcl
	s.count = snap.Count
	return nil
}

func (s *Stack) fromPair(pair [2]float64) (value.Number, error) {
	re := s.alg.FromFloat(pair[0])
	if pair[1] == 0 {
		return re, nil
	}
	i := s.alg.I()
	if i == nil {
		return nil, fmt.Errorf("restoring imaginary part into %s algebra: %w",
			s.alg.Name(), value.ErrUndefined)
	}
	return re.Add(s.alg.FromFloat(pair[1]).Mul(i)), nil
}

/*
combiner.go Parallel and series strings of sources. Both are the same fold with the
roles of current and voltage swapped: one quantity adds across the members and the
other is limited by the weakest member.
*/

package combiner

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ohowland/pvnet/internal/pkg/source"
)

var (
	// ErrUnknownKind is returned for a Kind other than Parallel or Series.
	ErrUnknownKind = errors.New("unknown combiner kind")
	// ErrInvalidCeiling is returned when the ceiling is not positive or a member
	// reading exceeds it.
	ErrInvalidCeiling = errors.New("invalid ceiling")
)

// Kind is the wiring of a combiner.
type Kind int

const (
	// Parallel members share a voltage and their currents add.
	Parallel Kind = iota
	// Series members share a current and their voltages add.
	Series
)

func (k Kind) String() string {
	switch k {
	case Parallel:
		return "parallel"
	case Series:
		return "series"
	default:
		return "unknown"
	}
}

// Combiner is a composite source. It references its members but does not own them;
// the same member may appear in many combiners.
type Combiner struct {
	pid     uuid.UUID
	kind    Kind
	ceiling float64
	members []source.Source
}

// New returns a combiner of the given kind. ceiling seeds the minimum fold and is
// what an empty combiner reports for its limited quantity. It must be positive and
// no lower than the limited reading of any member.
func New(kind Kind, ceiling float64, members ...source.Source) (Combiner, error) {
	limit, err := limitedQuantity(kind)
	if err != nil {
		return Combiner{}, err
	}

	if ceiling <= 0 {
		return Combiner{}, fmt.Errorf("%v: %w", ceiling, ErrInvalidCeiling)
	}
	for i, m := range members {
		if v := limit(m); v > ceiling {
			return Combiner{}, fmt.Errorf("member %d reads %v above %v: %w", i, v, ceiling, ErrInvalidCeiling)
		}
	}

	pid, err := uuid.NewUUID()
	if err != nil {
		return Combiner{}, err
	}

	m := make([]source.Source, len(members))
	copy(m, members)

	return Combiner{
		pid:     pid,
		kind:    kind,
		ceiling: ceiling,
		members: m,
	}, nil
}

// NewParallel returns a parallel combiner seeded with source.Ceiling.
func NewParallel(members ...source.Source) (Combiner, error) {
	return New(Parallel, source.Ceiling, members...)
}

// NewSeries returns a series combiner seeded with source.Ceiling.
func NewSeries(members ...source.Source) (Combiner, error) {
	return New(Series, source.Ceiling, members...)
}

// limitedQuantity returns the reading that takes the minimum for kind.
func limitedQuantity(kind Kind) (source.Quantity, error) {
	switch kind {
	case Parallel:
		return source.Voltage, nil
	case Series:
		return source.Current, nil
	default:
		return nil, fmt.Errorf("%d: %w", int(kind), ErrUnknownKind)
	}
}

// Current is the sum of member currents in parallel, the minimum in series.
func (c Combiner) Current() float64 {
	switch c.kind {
	case Parallel:
		return c.summed(source.Current)
	case Series:
		return c.limited(source.Current)
	default:
		panic(fmt.Sprintf("combiner: %v", c.kind))
	}
}

// Voltage is the minimum of member voltages in parallel, the sum in series.
func (c Combiner) Voltage() float64 {
	switch c.kind {
	case Parallel:
		return c.limited(source.Voltage)
	case Series:
		return c.summed(source.Voltage)
	default:
		panic(fmt.Sprintf("combiner: %v", c.kind))
	}
}

func (c Combiner) summed(q source.Quantity) float64 {
	return source.Sum(c.members, q)
}

func (c Combiner) limited(q source.Quantity) float64 {
	return source.Min(c.members, q, c.ceiling)
}

// PID is an accessor for the combiner's unique identifier.
func (c Combiner) PID() uuid.UUID {
	return c.pid
}

// Kind reports how the members are wired.
func (c Combiner) Kind() Kind {
	return c.kind
}

// Ceiling returns the seed of the minimum fold.
func (c Combiner) Ceiling() float64 {
	return c.ceiling
}

// Len returns the number of members.
func (c Combiner) Len() int {
	return len(c.members)
}

// Members returns a copy of the member list in wiring order.
func (c Combiner) Members() []source.Source {
	m := make([]source.Source, len(c.members))
	copy(m, c.members)
	return m
}

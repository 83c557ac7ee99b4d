package circuit

import "fmt"

// Connection describes one place where a Line is consumed: the gate doing
// the consuming, and the positional input index on that gate.
type Connection struct {
	Gate      *Gate
	InputIdx  int
}

// Line is a named wire in the circuit graph. Every non-input line has
// exactly one Source gate; Destinations records every (gate, input index)
// pair that reads this line, in the order connections were made, including
// duplicates when a gate consumes the same line on more than one pin.
type Line struct {
	ID   int
	Name string

	Source       *Gate // nil for primary inputs
	Destinations []Connection

	// destinationGates deduplicates Destinations by gate. When its size
	// differs from len(Destinations), some gate consumes this line on
	// more than one input pin (see HasDuplicateInputTo).
	destinationGates map[*Gate]struct{}

	IsOutput    bool
	IsGenerated bool
}

func newLine(id int, name string, generated bool) *Line {
	return &Line{
		ID:               id,
		Name:             name,
		destinationGates: make(map[*Gate]struct{}),
		IsGenerated:      generated,
	}
}

// connectAsInput records that gate reads this line on input pin idx.
func (l *Line) connectAsInput(gate *Gate, idx int) {
	l.Destinations = append(l.Destinations, Connection{Gate: gate, InputIdx: idx})
	l.destinationGates[gate] = struct{}{}
}

// DestinationGates returns the distinct set of gates that consume this
// line, deduplicated across multiple input pins of the same gate.
func (l *Line) DestinationGates() []*Gate {
	gates := make([]*Gate, 0, len(l.destinationGates))
	for g := range l.destinationGates {
		gates = append(gates, g)
	}
	return gates
}

// HasDuplicateInputTo reports whether some destination gate consumes this
// line on more than one input pin.
func (l *Line) HasDuplicateInputTo() bool {
	return len(l.Destinations) != len(l.destinationGates)
}

func (l *Line) String() string {
	return fmt.Sprintf("Line(%s)", l.Name)
}

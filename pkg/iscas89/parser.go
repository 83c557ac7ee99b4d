// Package iscas89 parses the ISCAS-89 netlist subset into a
// circuit.Graph.
package iscas89

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fyerfyer/sat-atpg/pkg/circuit"
)

// ParseError reports a 1-based line number alongside the offending text.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

var (
	commentRe = regexp.MustCompile(`^\s*#.*$`)
	emptyRe   = regexp.MustCompile(`^\s*$`)
	inputRe   = regexp.MustCompile(`(?i)^\s*input\s*\(\s*(\S+)\s*\)\s*$`)
	outputRe  = regexp.MustCompile(`(?i)^\s*output\s*\(\s*(\S+)\s*\)\s*$`)
	gateRe    = regexp.MustCompile(`^\s*(\S+)\s*=\s*(\w+)\s*\(\s*((?:\S+\s*,?\s*)+)\)\s*$`)
)

var gateTypeByKeyword = map[string]circuit.GateType{
	"and":  circuit.AND,
	"nand": circuit.NAND,
	"not":  circuit.NOT,
	"or":   circuit.OR,
	"nor":  circuit.NOR,
	"xor":  circuit.XOR,
	"xnor": circuit.XNOR,
	"buff": circuit.BUFF,
	"buf":  circuit.BUFF,
}

// Parse reads a full ISCAS-89 netlist from r and returns the circuit
// graph it describes. DFF assignments are rewritten as a combinational
// cut: the flip-flop's Q output becomes a primary input and its D input
// becomes a primary output.
func Parse(r io.Reader) (*circuit.Graph, error) {
	g := circuit.NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if emptyRe.MatchString(line) || commentRe.MatchString(line) {
			continue
		}

		if m := inputRe.FindStringSubmatch(line); m != nil {
			g.AddInput(m[1])
			continue
		}
		if m := outputRe.FindStringSubmatch(line); m != nil {
			g.AddOutput(m[1])
			continue
		}
		if m := gateRe.FindStringSubmatch(line); m != nil {
			if err := parseGateLine(g, m); err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Msg: err.Error()}
			}
			continue
		}

		return nil, &ParseError{Line: lineNo, Text: line, Msg: "invalid line"}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading netlist: %w", err)
	}

	return g, nil
}

func parseGateLine(g *circuit.Graph, m []string) error {
	output := m[1]
	typeKeyword := strings.ToLower(m[2])

	inputs := splitInputs(m[3])

	if typeKeyword == "dff" {
		if len(inputs) != 1 {
			return fmt.Errorf("dff must have exactly one input, got %d", len(inputs))
		}
		g.AddInput(output)
		g.AddOutput(inputs[0])
		return nil
	}

	typ, ok := gateTypeByKeyword[typeKeyword]
	if !ok {
		return fmt.Errorf("unknown gate type %q", m[2])
	}

	_, err := g.AddGate(typ, inputs, output)
	return err
}

func splitInputs(raw string) []string {
	parts := strings.Split(raw, ",")
	inputs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			inputs = append(inputs, p)
		}
	}
	return inputs
}

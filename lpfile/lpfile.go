// Package lpfile parses the textual LP format of spec §6 and normalizes
// it into the raw augmented matrix the simplex engine's Phase I
// initializer expects. It is an external collaborator to the core:
// the core never parses text, and this package never pivots a tableau.
package lpfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qsolve/simplex/elt"
)

// ErrImproperInput is the distinguished error kind of spec §7.1: a
// malformed LP file. It is always wrapped with a human-readable message
// naming what went wrong.
var ErrImproperInput = errors.New("lpfile: improper input")

// Direction is the optimization sense named on line 1 of the file.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

type relation int

const (
	relLE relation = iota
	relGE
	relEQ
)

// Constraint is one parsed, not-yet-normalized row: coefficients plus
// the relation and RHS, in the order they appeared in the file.
type Constraint struct {
	Coefficients []elt.Float64
	Relation     relation
	RHS          elt.Float64
}

// Problem is the parsed, not-yet-normalized LP: an objective direction,
// its coefficients and constant term, and the list of constraints.
type Problem struct {
	Direction    Direction
	Objective    []elt.Float64
	Constant     elt.Float64
	Constraints  []Constraint
	NumVariables int
}

// Parse reads the LP text format of spec §6 from r.
func Parse(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)

	dirLine, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("%w: reading direction line: %v", ErrImproperInput, err)
	}
	dir, err := parseDirection(dirLine)
	if err != nil {
		return nil, err
	}

	objLine, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("%w: reading objective line: %v", ErrImproperInput, err)
	}
	objTokens := splitCSV(objLine)
	if len(objTokens) < 1 {
		return nil, fmt.Errorf("%w: objective line has no tokens", ErrImproperInput)
	}
	objCoefs := make([]elt.Float64, len(objTokens)-1)
	for i, tok := range objTokens[:len(objTokens)-1] {
		v, err := elt.ParseFloat64(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: objective coefficient %d: %v", ErrImproperInput, i+1, err)
		}
		objCoefs[i] = v
	}
	constant, err := elt.ParseFloat64(objTokens[len(objTokens)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: objective constant: %v", ErrImproperInput, err)
	}

	stLine, err := nextLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("%w: reading \"subject to\" line: %v", ErrImproperInput, err)
	}
	if !strings.EqualFold(strings.TrimSpace(stLine), "subject to") {
		return nil, fmt.Errorf("%w: expected \"subject to\", got %q", ErrImproperInput, stLine)
	}

	numVars := len(objCoefs)
	var constraints []Constraint
	for {
		line, err := nextLine(scanner)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading constraint line: %v", ErrImproperInput, err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := parseConstraint(line, numVars)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImproperInput, err)
	}

	return &Problem{
		Direction:    dir,
		Objective:    objCoefs,
		Constant:     constant,
		Constraints:  constraints,
		NumVariables: numVars,
	}, nil
}

// ParseFile opens path and parses it, per spec §6's load_file. I/O
// failures surface as the underlying *os.PathError, wrapped with
// minimal context — spec §6's "system-error with the underlying
// message."
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lpfile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func nextLine(s *bufio.Scanner) (string, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.Text(), nil
}

func parseDirection(line string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, "\r"))) {
	case "max":
		return Maximize, nil
	case "min":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%w: expected \"min\" or \"max\", got %q", ErrImproperInput, line)
	}
}

func splitCSV(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func parseConstraint(line string, numVars int) (Constraint, error) {
	tokens := splitCSV(line)

	relIdx, rel, err := findRelation(tokens)
	if err != nil {
		return Constraint{}, err
	}

	values := make([]elt.Float64, 0, len(tokens)-1)
	for i, tok := range tokens {
		if i == relIdx {
			continue
		}
		v, err := elt.ParseFloat64(tok)
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: constraint token %q: %v", ErrImproperInput, tok, err)
		}
		values = append(values, v)
	}
	if len(values) != numVars+1 {
		return Constraint{}, fmt.Errorf("%w: constraint has %d coefficients, want %d plus RHS", ErrImproperInput, len(values)-1, numVars)
	}

	return Constraint{
		Coefficients: values[:numVars],
		Relation:     rel,
		RHS:          values[numVars],
	}, nil
}

func findRelation(tokens []string) (int, relation, error) {
	idx, found := -1, false
	var rel relation
	for i, tok := range tokens {
		switch tok {
		case "<=":
			rel, idx, found = relLE, i, true
		case ">=":
			rel, idx, found = relGE, i, true
		case "=":
			rel, idx, found = relEQ, i, true
		default:
			continue
		}
		if found {
			break
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("%w: constraint has no relation token (<=, >=, =)", ErrImproperInput)
	}
	for i, tok := range tokens {
		if i != idx && (tok == "<=" || tok == ">=" || tok == "=") {
			return 0, 0, fmt.Errorf("%w: constraint has more than one relation token", ErrImproperInput)
		}
	}
	return idx, rel, nil
}

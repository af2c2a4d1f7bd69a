// Package netlist reads and writes the textual netlist format: a line
// whose first non-blank character is 'i' lists input-node indices, 'o'
// lists output-node indices, and 'n' or 'p' introduces transistors of
// that type as groups of three indices (gate, source, drain). Any other
// leading character is a format error. The active line kind persists
// until the next letter, so a list may continue over several lines, and
// a digit may directly follow its letter ("i0 1 2" and "i 0 1 2" parse
// the same).
package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vsyn/FETX/pkg/fetx"
	"github.com/vsyn/FETX/pkg/fetxerr"
)

type lineKind int

const (
	kindUnknown lineKind = iota
	kindInputs
	kindOutputs
	kindTransistor
)

// parser carries the character-scan state: the active line kind, the
// transistor type and connection count when mid-triple, and the number
// currently being accumulated.
type parser struct {
	nl fetx.Netlist

	kind    lineKind
	fetType fetx.Type
	conns   [3]int
	count   int

	value    int
	inNumber bool
}

func (p *parser) flush() error {
	if !p.inNumber {
		return nil
	}
	p.inNumber = false
	value := p.value
	p.value = 0

	switch p.kind {
	case kindTransistor:
		p.conns[p.count] = value
		p.count++
		if p.count == 3 {
			p.nl.Transistors = append(p.nl.Transistors, fetx.Descriptor{
				Type:   p.fetType,
				Gate:   p.conns[0],
				Source: p.conns[1],
				Drain:  p.conns[2],
			})
			p.count = 0
		}
	case kindInputs:
		p.nl.Inputs = append(p.nl.Inputs, value)
	case kindOutputs:
		p.nl.Outputs = append(p.nl.Outputs, value)
	default:
		return fmt.Errorf("netlist: value %d before any 'i', 'o', 'n' or 'p' line", value)
	}
	return nil
}

func (p *parser) letter(c byte) error {
	if p.count != 0 {
		return fmt.Errorf("netlist: %q interrupts a transistor triple", c)
	}
	switch c {
	case 'n':
		p.fetType = fetx.N
		p.kind = kindTransistor
	case 'p':
		p.fetType = fetx.P
		p.kind = kindTransistor
	case 'i':
		p.kind = kindInputs
	case 'o':
		p.kind = kindOutputs
	default:
		return fmt.Errorf("netlist: unexpected character %q", c)
	}
	return nil
}

// Parse reads a netlist from r. Format violations are reported with
// kind FFormat, read failures with kind IO.
func Parse(r io.Reader) (fetx.Netlist, error) {
	br := bufio.NewReader(r)
	var p parser

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fetx.Netlist{}, fetxerr.New(fetxerr.IO, err)
		}

		switch {
		case c >= '0' && c <= '9':
			p.inNumber = true
			p.value = p.value*10 + int(c-'0')
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if err := p.flush(); err != nil {
				return fetx.Netlist{}, fetxerr.New(fetxerr.FFormat, err)
			}
		default:
			if err := p.flush(); err != nil {
				return fetx.Netlist{}, fetxerr.New(fetxerr.FFormat, err)
			}
			if err := p.letter(c); err != nil {
				return fetx.Netlist{}, fetxerr.New(fetxerr.FFormat, err)
			}
		}
	}
	if err := p.flush(); err != nil {
		return fetx.Netlist{}, fetxerr.New(fetxerr.FFormat, err)
	}
	if p.count != 0 {
		return fetx.Netlist{}, fetxerr.New(fetxerr.FFormat,
			fmt.Errorf("netlist: file ends inside a transistor triple (%d of 3 values)", p.count))
	}

	return p.nl, nil
}

// Read parses the netlist file at path. Failure to open is kind FOpen;
// a failed close is OR-ed onto whatever the read produced as FClose.
func Read(path string) (fetx.Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return fetx.Netlist{}, fetxerr.New(fetxerr.FOpen, err)
	}

	nl, perr := Parse(f)
	if cerr := f.Close(); cerr != nil {
		return nl, fetxerr.New(fetxerr.KindOf(perr)|fetxerr.FClose, cerr)
	}
	return nl, perr
}

// Write serializes nl in the normalized form: the inputs line, the
// outputs line, then one transistor per line ("n 2 3 0"). Parsing the
// result and writing it again reproduces it byte for byte.
func Write(w io.Writer, nl fetx.Netlist) error {
	if _, err := io.WriteString(w, "i"); err != nil {
		return fetxerr.New(fetxerr.IO, err)
	}
	for _, n := range nl.Inputs {
		if _, err := fmt.Fprintf(w, " %d", n); err != nil {
			return fetxerr.New(fetxerr.IO, err)
		}
	}
	if _, err := io.WriteString(w, "\no"); err != nil {
		return fetxerr.New(fetxerr.IO, err)
	}
	for _, n := range nl.Outputs {
		if _, err := fmt.Fprintf(w, " %d", n); err != nil {
			return fetxerr.New(fetxerr.IO, err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fetxerr.New(fetxerr.IO, err)
	}

	for _, d := range nl.Transistors {
		tag := "n"
		if d.Type == fetx.P {
			tag = "p"
		}
		if _, err := fmt.Fprintf(w, "%s %d %d %d\n", tag, d.Gate, d.Source, d.Drain); err != nil {
			return fetxerr.New(fetxerr.IO, err)
		}
	}
	return nil
}

// WriteFile serializes nl to the file at path.
func WriteFile(path string, nl fetx.Netlist) error {
	f, err := os.Create(path)
	if err != nil {
		return fetxerr.New(fetxerr.FOpen, err)
	}

	werr := Write(f, nl)
	if cerr := f.Close(); cerr != nil {
		return fetxerr.New(fetxerr.KindOf(werr)|fetxerr.FClose, cerr)
	}
	return werr
}

package box

import (
	"slices"

	"github.com/matzehuels/commentbox/pkg/align"
)

// slots holds the parallel text and alignment sequences of a box. Every
// mutation goes through its methods so both sequences always have the same
// length once alignment is known.
type slots struct {
	text  []string
	align []align.Alignment // nil until the first setAlign
}

func (s *slots) len() int { return len(s.text) }

// setText replaces the text. If alignments are already known they are padded
// with the last one (or fill) or truncated to match before rebalancing.
func (s *slots) setText(lines []string, fill align.Alignment) {
	s.text = slices.Clone(lines)
	if s.align != nil {
		s.align = fitAlign(s.align, len(s.text), fill)
	}
	s.balance()
}

// setAlign replaces the alignments, sized to the current text, and rebalances.
func (s *slots) setAlign(values []align.Alignment, fill align.Alignment) {
	s.align = fitAlign(values, len(s.text), fill)
	s.balance()
}

// balance keeps the slot count odd so side glyphs alternate symmetrically.
// An even count either loses a blank second slot or gains one. It does
// nothing until both sequences exist.
func (s *slots) balance() {
	if s.text == nil || s.align == nil {
		return
	}
	if len(s.text) == 0 || !align.IsEven(len(s.text)) {
		return
	}
	if s.text[1] == "" {
		s.text = slices.Delete(s.text, 1, 2)
		s.align = slices.Delete(s.align, 1, 2)
		return
	}
	s.text = slices.Insert(s.text, 1, "")
	s.align = slices.Insert(s.align, 1, align.Left)
}

// fitAlign returns a copy of values with exactly n entries, repeating the last
// value (or fill when values is empty) to pad.
func fitAlign(values []align.Alignment, n int, fill align.Alignment) []align.Alignment {
	out := make([]align.Alignment, n)
	last := fill
	for i := range out {
		if i < len(values) {
			last = values[i]
		}
		out[i] = last
	}
	return out
}

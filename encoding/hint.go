package encoding

import (
	"fmt"

	enc "golang.org/x/text/encoding"
)

// Confidence weights of the various sources of encoding hints. A BOM
// outweighs everything else combined.
const (
	DefaultConfidence     float32 = 0.01
	ContentTypeConfidence float32 = 0.09
	MetaConfidence        float32 = 0.20
	BOMConfidence         float32 = 0.31
)

type candidate struct {
	enc        enc.Encoding
	confidence float32
}

// Hint accumulates weighted votes for encodings. Votes for the same
// encoding, under any label, are summed; the encoding with the highest
// sum is the top hint.
type Hint struct {
	candidates map[string]*candidate
	top        string
	changed    bool
	errors     int
}

func NewHint() *Hint {
	return &Hint{candidates: make(map[string]*candidate)}
}

// AddLabel adds a vote for the encoding named by label. An unknown
// label counts as an error and returns an error wrapping
// ErrUnknownLabel. The boolean reports whether the top hint changed.
func (h *Hint) AddLabel(label string, confidence float32) (bool, error) {
	e, err := Lookup(label)
	if err != nil {
		h.errors++
		return false, err
	}
	return h.Add(e, confidence), nil
}

// Add adds a vote for e and reports whether the top hint changed.
func (h *Hint) Add(e enc.Encoding, confidence float32) bool {
	name := Name(e)
	if name == "" {
		name = fmt.Sprint(e)
	}
	c, ok := h.candidates[name]
	if !ok {
		c = &candidate{enc: e}
		h.candidates[name] = c
	}
	c.confidence += confidence

	if h.top == name {
		return false
	}
	if cur, ok := h.candidates[h.top]; ok && cur.confidence >= c.confidence {
		return false
	}
	h.top = name
	h.changed = true
	return true
}

// Top returns the current top encoding, or nil before the first vote.
func (h *Hint) Top() enc.Encoding {
	if c, ok := h.candidates[h.top]; ok {
		return c.enc
	}
	return nil
}

// TopName returns the canonical name of the top encoding.
func (h *Hint) TopName() string {
	return h.top
}

// Confidence returns the summed confidence of the top encoding.
func (h *Hint) Confidence() float32 {
	if c, ok := h.candidates[h.top]; ok {
		return c.confidence
	}
	return 0
}

// Changed reports whether the top hint changed since the last call to
// ClearChanged.
func (h *Hint) Changed() bool {
	return h.changed
}

func (h *Hint) ClearChanged() {
	h.changed = false
}

// Errors returns the number of rejected hints and decoding errors
// recorded so far.
func (h *Hint) Errors() int {
	return h.errors
}

func (h *Hint) AddErrors(n int) {
	h.errors += n
}

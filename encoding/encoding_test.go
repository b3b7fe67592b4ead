package encoding_test

import (
	"testing"

	"github.com/lestrrat-go/marked/encoding"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestLoad(t *testing.T) {
	testcases := []struct {
		label string
		name  string
	}{
		{label: "utf-8", name: "utf-8"},
		{label: "UTF8", name: "utf-8"},
		{label: " Latin1 ", name: "windows-1252"},
		{label: "iso-8859-1", name: "windows-1252"},
		{label: "windows1252", name: "windows-1252"},
		{label: "shift_jis", name: "shift_jis"},
		{label: "cp932", name: "shift_jis"},
		{label: "euc-kr", name: "euc-kr"},
		{label: "utf-16le", name: "utf-16le"},
		{label: "utf-16be", name: "utf-16be"},
		{label: "koi8r", name: "koi8-r"},
		{label: "cp437", name: "ibm437"},
	}
	for _, tc := range testcases {
		t.Run(tc.label, func(t *testing.T) {
			e := encoding.Load(tc.label)
			require.NotNil(t, e, "label %q is known", tc.label)
			require.Equal(t, tc.name, encoding.Name(e))
		})
	}

	require.Nil(t, encoding.Load("no-such-charset"))
	require.Nil(t, encoding.Load(""))
	_, err := encoding.Lookup("no-such-charset")
	require.ErrorIs(t, err, encoding.ErrUnknownLabel)
}

func TestISO88591(t *testing.T) {
	// iso-8859-1 is decoded as windows-1252, which agrees with latin-1
	// outside of the C1 range
	dec := encoding.Load("iso-8859-1").NewDecoder()
	for i := 0xA0; i <= 0xFF; i++ {
		s, err := dec.String(string([]byte{byte(i)}))
		require.NoError(t, err)
		require.Equal(t, string(rune(i)), s, "byte %#x", i)
	}
	s, err := dec.String("\x80")
	require.NoError(t, err)
	require.Equal(t, "€", s)
}

func TestSniffBOM(t *testing.T) {
	testcases := []struct {
		name  string
		input []byte
		want  string
		n     int
	}{
		{name: "UTF-8", input: []byte{0xEF, 0xBB, 0xBF, '<'}, want: "utf-8", n: 3},
		{name: "UTF-16BE", input: []byte{0xFE, 0xFF, 0, '<'}, want: "utf-16be", n: 2},
		{name: "UTF-16LE", input: []byte{0xFF, 0xFE, '<', 0}, want: "utf-16le", n: 2},
		{name: "none", input: []byte("<html>"), n: 0},
		{name: "truncated", input: []byte{0xEF, 0xBB}, n: 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			e, n := encoding.SniffBOM(tc.input)
			require.Equal(t, tc.n, n)
			if tc.want == "" {
				require.Nil(t, e)
				return
			}
			require.Equal(t, tc.want, encoding.Name(e))
		})
	}
}

func TestCompatible(t *testing.T) {
	require.True(t, encoding.IsASCIICompatible(encoding.UTF8))
	require.True(t, encoding.IsASCIICompatible(charmap.Windows1252))
	require.True(t, encoding.IsASCIICompatible(encoding.Load("shift_jis")))
	require.False(t, encoding.IsASCIICompatible(encoding.UTF16LE))
	require.False(t, encoding.IsASCIICompatible(nil))

	require.True(t, encoding.Compatible(encoding.UTF8, charmap.Windows1252))
	require.True(t, encoding.Compatible(encoding.UTF16LE, encoding.UTF16LE))
	require.False(t, encoding.Compatible(encoding.UTF8, encoding.UTF16LE), "markup read as UTF-8 cannot declare UTF-16")
	require.False(t, encoding.Compatible(encoding.UTF16BE, encoding.UTF8))
	require.False(t, encoding.Compatible(nil, encoding.UTF8))
}

func TestHint(t *testing.T) {
	h := encoding.NewHint()
	require.Nil(t, h.Top())
	require.Zero(t, h.Confidence())

	changed, err := h.AddLabel("LATIN1", 0.3)
	require.NoError(t, err)
	require.True(t, changed, "first vote sets the top")
	require.True(t, h.Changed())
	h.ClearChanged()

	changed, err = h.AddLabel("iso-8859-1", 0.4)
	require.NoError(t, err)
	require.False(t, changed, "same encoding under another label")

	changed, err = h.AddLabel("utf-8", 0.5)
	require.NoError(t, err)
	require.False(t, changed, "0.5 does not beat 0.7")
	require.False(t, h.Changed())

	require.Equal(t, "windows-1252", h.TopName())
	require.Equal(t, "windows-1252", encoding.Name(h.Top()))
	require.InDelta(t, 0.7, h.Confidence(), 0.0001)

	changed, err = h.AddLabel("utf-8", 0.3)
	require.NoError(t, err)
	require.True(t, changed, "0.8 beats 0.7")
	require.Equal(t, "utf-8", h.TopName())

	_, err = h.AddLabel("bogus", 1)
	require.ErrorIs(t, err, encoding.ErrUnknownLabel)
	require.Equal(t, 1, h.Errors())
	h.AddErrors(2)
	require.Equal(t, 3, h.Errors())
}

func TestMachine(t *testing.T) {
	t.Run("BOM", func(t *testing.T) {
		var m encoding.Machine
		require.Equal(t, encoding.Undetermined, m.State())
		require.NoError(t, m.To(encoding.Sniffed))
		require.False(t, m.CanRestart(), "a BOM cannot be overridden")
		require.ErrorIs(t, m.To(encoding.Declared), encoding.ErrInvalidTransition)
		require.NoError(t, m.To(encoding.Committed))
	})
	t.Run("Single restart", func(t *testing.T) {
		var m encoding.Machine
		require.NoError(t, m.To(encoding.Declared))
		require.True(t, m.CanRestart())
		require.NoError(t, m.To(encoding.Restarting))
		require.Equal(t, 1, m.Restarts())
		require.ErrorIs(t, m.To(encoding.Restarting), encoding.ErrInvalidTransition)
		require.NoError(t, m.To(encoding.Committed))
		require.Equal(t, "committed", m.State().String())
		for _, s := range []encoding.State{encoding.Undetermined, encoding.Sniffed, encoding.Declared, encoding.Restarting} {
			require.ErrorIs(t, m.To(s), encoding.ErrInvalidTransition, "nothing moves after commit")
		}
	})
}

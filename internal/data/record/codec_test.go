package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTrimsFields(t *testing.T) {
	c := Codec{Delimiter: ",", MinFields: 3}

	fields, ok := c.Decode(" a , b ,c ")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestDecodeRejectsShortLines(t *testing.T) {
	c := Codec{Delimiter: ",", MinFields: 3}

	_, ok := c.Decode("a,b")
	assert.False(t, ok)

	_, ok = c.Decode("")
	assert.False(t, ok)

	_, ok = c.Decode("   ")
	assert.False(t, ok)
}

func TestDecodeKeepsOptionalTrailingFields(t *testing.T) {
	c := Codec{Delimiter: ",", MinFields: 3}

	fields, ok := c.Decode("a,b,c,d,e")
	require.True(t, ok)
	assert.Len(t, fields, 5)
	assert.Equal(t, "d", Field(fields, 3, "fallback"))
	assert.Equal(t, "fallback", Field(fields, 7, "fallback"))
}

func TestRoundTrip(t *testing.T) {
	c := Codec{Delimiter: ";", MinFields: 10}

	line := "alice;The Matrix;Sci-Fi;English;PG-13;Jan 02, 2026;7:00 PM;A1,A2;Luxury;600"
	fields, ok := c.Decode(line)
	require.True(t, ok)
	assert.Equal(t, line, c.Encode(fields))

	record := []string{"bob", "Heat", "Crime", "English", "R", "Feb 10, 2026", "9:30 PM", "B4", "Standard", "185"}
	decoded, ok := c.Decode(c.Encode(record))
	require.True(t, ok)
	assert.Equal(t, record, decoded)
}

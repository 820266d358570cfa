package jsonfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFallsBackOnMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"truncated", `["React", "Next`},
		{"wrong shape", `{"a": 1}`},
		{"not json", "React, Next.js"},
	}

	fallback := []string{"default"}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, fallback, Decode(tc.raw, fallback))
		})
	}
}

func TestDecodeValidInput(t *testing.T) {
	got := Decode(`["React","Next.js"]`, []string{})
	assert.Equal(t, []string{"React", "Next.js"}, got)

	type social struct {
		GitHub string `json:"github"`
	}
	s := Decode(`{"github":"https://github.com/x"}`, social{})
	assert.Equal(t, "https://github.com/x", s.GitHub)
}

func TestEncodeRoundTrip(t *testing.T) {
	raw := Encode([]string{"Go", "Postgres"})
	assert.Equal(t, `["Go","Postgres"]`, raw)
	assert.Equal(t, []string{"Go", "Postgres"}, Decode(raw, []string{}))
}

func TestSplitCSVTrimsAndDropsBlanks(t *testing.T) {
	got := SplitCSV("React, Next.js , TypeScript,, ")
	assert.Equal(t, []string{"React", "Next.js", "TypeScript"}, got)
}

func TestSplitLinesPreservesOrder(t *testing.T) {
	got := SplitLines("Geomatics Engineer\n\n  Software Engineer  \nGIS Analyst\n")
	assert.Equal(t, []string{"Geomatics Engineer", "Software Engineer", "GIS Analyst"}, got)
}

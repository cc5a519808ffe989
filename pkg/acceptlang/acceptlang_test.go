package acceptlang_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uasniff/pkg/acceptlang"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   []string
	}{
		{
			name:   "quality ordering",
			header: "fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7, *;q=0.5",
			want:   []string{"fr-ch", "fr", "en", "de", "*"},
		},
		{
			name:   "unsorted input",
			header: "en;q=0.5,fr;q=0.9,de;q=0.8",
			want:   []string{"fr", "de", "en"},
		},
		{
			name:   "equal quality keeps order",
			header: "de, en, fr",
			want:   []string{"de", "en", "fr"},
		},
		{
			name:   "lowercased",
			header: "EN-US,En;q=0.3",
			want:   []string{"en-us", "en"},
		},
		{
			name:   "last duplicate wins",
			header: "en;q=0.2, fr;q=0.5, en;q=0.9",
			want:   []string{"en", "fr"},
		},
		{
			name:   "unreadable quality sorts last",
			header: "de;q=abc, en;q=0.1",
			want:   []string{"en", "de"},
		},
		{
			name:   "extra parameters ignored",
			header: "de;q=0.3, en;q=0.5;level=1, fr;level=1;q=0.4",
			want:   []string{"en", "fr", "de"},
		},
		{
			name:   "empty segments skipped",
			header: "en,, ,fr;q=0.5",
			want:   []string{"en", "fr"},
		},
		{
			name:   "empty header",
			header: "",
			want:   []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, acceptlang.Parse(tc.header))
		})
	}
}

func TestParseWithQuality(t *testing.T) {
	t.Parallel()

	got := acceptlang.ParseWithQuality("en-US,en;q=0.8,*")
	assert.Equal(t, []acceptlang.Language{
		{Tag: "en-us", Quality: 1},
		{Tag: "*", Quality: 1},
		{Tag: "en", Quality: 0.8},
	}, got)

	got = acceptlang.ParseWithQuality("en;q=0.5;level=1, fr;charset=utf-8")
	assert.Equal(t, []acceptlang.Language{
		{Tag: "fr", Quality: 1},
		{Tag: "en", Quality: 0.5},
	}, got)

	assert.Nil(t, acceptlang.ParseWithQuality(""))
}

func TestParseTruncatesLongHeader(t *testing.T) {
	t.Parallel()

	header := "en," + strings.Repeat("x", acceptlang.MaxHeaderLength)
	got := acceptlang.Parse(header)
	assert.Equal(t, "en", got[0])
	assert.Len(t, got, 2)
	assert.Len(t, got[1], acceptlang.MaxHeaderLength-3)
}

func TestPreferred(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "fr", "de"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty header", header: "", want: "en"},
		{name: "exact match", header: "fr", want: "fr"},
		{name: "region falls back to base", header: "fr-CA", want: "fr"},
		{name: "quality respected", header: "en;q=0.5,fr;q=0.9,de;q=0.8", want: "fr"},
		{name: "unsupported", header: "ja,ko", want: "en"},
		{name: "exact beats base", header: "de-AT,fr;q=0.5", want: "fr"},
		{name: "zero quality ignored", header: "de;q=0,ja", want: "en"},
		{name: "wildcard", header: "*", want: "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, acceptlang.Preferred(tc.header, supported, "en"))
		})
	}

	assert.Equal(t, "en", acceptlang.Preferred("fr", nil, "en"))
}

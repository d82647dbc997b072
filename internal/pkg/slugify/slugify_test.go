package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Flat 15% Off!", "flat-15-off"},
		{"Hello World", "hello-world"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"Already-Slugged-Title", "already-slugged-title"},
		{"MULTI   spaces & symbols!!!", "multi-spaces-symbols"},
		{"2024 Year In Review", "2024-year-in-review"},
		{"Büro Nr. ٣ eröffnet", "bro-nr-erffnet"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.title), "title %q", tc.title)
	}
}

func TestWithSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "flat-15-off-1", WithSuffix("flat-15-off", 1))
	assert.Equal(t, "flat-15-off-2", WithSuffix("flat-15-off", 2))
}

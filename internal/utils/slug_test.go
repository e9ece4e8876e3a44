package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Burgenland", want: "burgenland"},
		{name: "two words", in: "Lower Austria", want: "lower_austria"},
		{name: "upper austria", in: "Upper Austria", want: "upper_austria"},
		{name: "empty", in: "", want: ""},
		{name: "space runs collapse", in: "Upper   Austria", want: "upper_austria"},
		{name: "punctuation stripped", in: "Styria (Steiermark)!", want: "styria_steiermark"},
		{name: "non ascii letters stripped", in: "Kärnten", want: "krnten"},
		{name: "digits and underscores kept", in: "Zone_9 West", want: "zone_9_west"},
		{name: "leading and trailing spaces", in: " Tyrol ", want: "_tyrol_"},
		{name: "tabs are not spaces", in: "a\tb", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{
		"Burgenland", "Lower Austria", "Upper  Austria", "Wien/Vienna", "Ünterßtadt 12", "", "   ", "a - b",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

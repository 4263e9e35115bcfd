package theme

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("unwanted error validating default colors: %v", err)
	}
}

func TestRead(t *testing.T) {
	readTests := []struct {
		yaml   string
		wantOk bool
		want   Colors
	}{
		{ // empty file
			wantOk: true,
			want:   Default(),
		},
		{
			yaml:   "blackTile: '#000'\nwhiteTile: '#FFFFFF'",
			wantOk: true,
			want: Colors{
				BlackTile:  "#000",
				WhiteTile:  "#FFFFFF",
				Text:       "#000000",
				Background: "#ffffff",
			},
		},
		{
			yaml:   "text: '#123456'\nbackground: '#abcdef'",
			wantOk: true,
			want: Colors{
				BlackTile:  "#769656",
				WhiteTile:  "#eeeed2",
				Text:       "#123456",
				Background: "#abcdef",
			},
		},
		{ // unknown key
			yaml: "blackTiles: '#000'",
		},
		{ // not yaml
			yaml: "[}",
		},
		{ // not a hex color
			yaml: "whiteTile: white",
		},
	}
	for i, test := range readTests {
		r := strings.NewReader(test.yaml)
		got, err := Read(r)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != *got:
			t.Errorf("Test %v: not equal:\nwanted: %v\ngot:    %v", i, test.want, *got)
		}
	}
}

func TestIsHexColor(t *testing.T) {
	isHexColorTests := []struct {
		s    string
		want bool
	}{
		{},
		{s: "#"},
		{s: "fff"},
		{s: "#ff"},
		{s: "#ffff"},
		{s: "#ggg"},
		{s: "#fff", want: true},
		{s: "#C0ffee", want: true},
		{s: "#c0ffee0"},
		{s: "769656#"},
	}
	for i, test := range isHexColorTests {
		got := isHexColor(test.s)
		if test.want != got {
			t.Errorf("Test %v: wanted isHexColor(%q) to be %v", i, test.s, test.want)
		}
	}
}

package main

import (
	"crypto/tls"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jacobpatterson1549/chessboard/server/log/logtest"
	"github.com/jacobpatterson1549/chessboard/theme"
)

func TestServerConfig(t *testing.T) {
	files := map[string]string{
		"cert.pem":   "CERT",
		"key.pem":    "KEY",
		"theme.yaml": "blackTile: '#111111'",
		"bad.yaml":   "blackTile: black",
	}
	readFileFunc := func(name string) ([]byte, error) {
		data, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("no file named %v", name)
		}
		return []byte(data), nil
	}
	serverConfigTests := []struct {
		mainFlags
		wantOk     bool
		wantCert   string
		wantKey    string
		wantColors theme.Colors
	}{
		{
			wantOk:     true,
			wantColors: theme.Default(),
		},
		{
			mainFlags: mainFlags{
				tlsCertFile: "cert.pem",
				tlsKeyFile:  "key.pem",
				themeFile:   "theme.yaml",
			},
			wantOk:   true,
			wantCert: "CERT",
			wantKey:  "KEY",
			wantColors: theme.Colors{
				BlackTile:  "#111111",
				WhiteTile:  "#eeeed2",
				Text:       "#000000",
				Background: "#ffffff",
			},
		},
		{ // missing cert file
			mainFlags: mainFlags{
				tlsCertFile: "missing.pem",
			},
		},
		{ // missing key file
			mainFlags: mainFlags{
				tlsKeyFile: "missing.pem",
			},
		},
		{ // missing theme file
			mainFlags: mainFlags{
				themeFile: "missing.yaml",
			},
		},
		{ // bad theme file
			mainFlags: mainFlags{
				themeFile: "bad.yaml",
			},
		},
	}
	e := embedParameters{
		Version: "v7",
	}
	for i, test := range serverConfigTests {
		test.mainFlags.httpsPort = 8000
		test.mainFlags.challengeToken = "token"
		got, err := test.mainFlags.serverConfig(e, readFileFunc)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case got.HTTPSPort != 8000, got.Version != "v7", got.Challenge.Token != "token":
			t.Errorf("Test %v: wanted flags and embedded version to be copied to config, got %v", i, got)
		case test.wantCert != got.TLSCertPEM, test.wantKey != got.TLSKeyPEM:
			t.Errorf("Test %v: wanted tls certificate %q and key %q, got %q and %q", i, test.wantCert, test.wantKey, got.TLSCertPEM, got.TLSKeyPEM)
		case test.wantColors != got.Colors:
			t.Errorf("Test %v: colors not equal:\nwanted: %v\ngot:    %v", i, test.wantColors, got.Colors)
		case got.StopDur <= 0:
			t.Errorf("Test %v: wanted positive stop duration", i)
		}
	}
}

func TestReadOptionalFile(t *testing.T) {
	readFileFunc := func(name string) ([]byte, error) {
		if name != "f" {
			return nil, fmt.Errorf("file not found")
		}
		return []byte("contents"), nil
	}
	readOptionalFileTests := []struct {
		name   string
		wantOk bool
		want   string
	}{
		{
			wantOk: true,
		},
		{
			name:   "f",
			wantOk: true,
			want:   "contents",
		},
		{
			name: "g",
		},
	}
	for i, test := range readOptionalFileTests {
		got, err := readOptionalFile(test.name, readFileFunc)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != got:
			t.Errorf("Test %v: wanted %q, got %q", i, test.want, got)
		}
	}
}

func TestEmbeddedServer(t *testing.T) {
	e, err := newEmbedParameters(embeddedVersion, embeddedStaticFS, embeddedTemplateFS)
	if err != nil {
		t.Fatalf("unwanted error reading embedded files: %v", err)
	}
	m := newMainFlags(nil, func(string) (string, bool) { return "", false })
	readFileFunc := func(name string) ([]byte, error) {
		return nil, fmt.Errorf("unwanted file read: %v", name)
	}
	cfg, err := m.serverConfig(*e, readFileFunc)
	if err != nil {
		t.Fatalf("unwanted error creating server config: %v", err)
	}
	p := serverParameters(logtest.DiscardLogger, *e)
	s, err := cfg.NewServer(p)
	if err != nil {
		t.Fatalf("unwanted error creating server: %v", err)
	}
	codes := map[string]int{
		"/":                200,
		"/chessboard.css":  200,
		"/manifest.json":   200,
		"/favicon.svg":     200,
		"/robots.txt":      200,
		"/board.json":      200,
		"/chessboard.html": 404,
		"/unknown/path":    404,
	}
	for path, wantCode := range codes {
		r := httptest.NewRequest("GET", path, nil)
		r.TLS = new(tls.ConnectionState)
		w := httptest.NewRecorder()
		s.HTTPSServer.Handler.ServeHTTP(w, r)
		if gotCode := w.Code; wantCode != gotCode {
			t.Errorf("GET %v: status codes not equal: wanted %v, got %v", path, wantCode, gotCode)
		}
		if path != "/" {
			continue
		}
		body := w.Body.String()
		if want, got := 64, strings.Count(body, `class="tile `); want != got {
			t.Errorf("wanted %v tiles on the root page, got %v", want, got)
		}
		first := strings.Index(body, `<div class="tile white-tile">a 8</div>`)
		last := strings.Index(body, `<div class="tile white-tile">h 1</div>`)
		switch {
		case !strings.Contains(body, `<div id="chessboard">`):
			t.Errorf("wanted chessboard container on the root page: %v", body)
		case first < 0, last < 0, first > last:
			t.Errorf("wanted a 8 to be the first tile and h 1 to be the last tile: %v", body)
		}
	}
}

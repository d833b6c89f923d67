package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

func compress(t *testing.T, encoding string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch encoding {
	case "gzip", "identity, gzip", " gzip ", "GZIP":
		w = gzip.NewWriter(&buf)
	case "br":
		w = brotli.NewWriter(&buf)
	case "zstd":
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatalf("zstd writer: %v", err)
		}
		w = zw
	default:
		return data
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress %s: %v", encoding, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close %s writer: %v", encoding, err)
	}
	return buf.Bytes()
}

func TestCompressionTransport_Decodes(t *testing.T) {
	payload := []byte(`{"page":1,"results":[]}`)

	tests := []struct {
		name            string
		encoding        string
		wantEncodingHdr string
	}{
		{"gzip", "gzip", ""},
		{"brotli", "br", ""},
		{"zstd", "zstd", ""},
		{"identity", "", ""},
		{"comma list uses outermost", "identity, gzip", ""},
		{"whitespace", " gzip ", ""},
		{"upper case", "GZIP", ""},
		{"unknown encoding passes through", "compress-x", "compress-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Accept-Encoding"); got != acceptEncoding {
					t.Errorf("Expected Accept-Encoding %q, got %q", acceptEncoding, got)
				}
				if tt.encoding != "" {
					w.Header().Set("Content-Encoding", tt.encoding)
				}
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(compress(t, tt.encoding, payload))
			}))
			defer server.Close()

			resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Get(server.URL)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if !bytes.Equal(body, payload) {
				t.Errorf("Expected body %q, got %q", payload, body)
			}
			if got := resp.Header.Get("Content-Encoding"); got != tt.wantEncodingHdr {
				t.Errorf("Expected Content-Encoding %q after decoding, got %q", tt.wantEncodingHdr, got)
			}
		})
	}
}

func TestCompressionTransport_KeepsCallerAcceptEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != "identity" {
			t.Errorf("Expected caller Accept-Encoding to be kept, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Accept-Encoding", "identity")
	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
}

func TestCompressionTransport_NoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", resp.StatusCode)
	}
}

func TestParseContentEncoding(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"   ":            "",
		"br":             "br",
		" zstd ":         "zstd",
		"identity, gzip": "gzip",
		"gzip, br":       "br",
		"GzIp":           "gzip",
	}
	for header, want := range tests {
		if got := parseContentEncoding(header); got != want {
			t.Errorf("parseContentEncoding(%q) = %q, want %q", header, got, want)
		}
	}
}

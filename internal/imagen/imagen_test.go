package imagen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"Red Dragon":  "red_dragon.png",
		"sword":       "sword.png",
		"A B C":       "a_b_c.png",
		strings.Repeat("x", 80): strings.Repeat("x", 50) + ".png",
	}
	for in, want := range cases {
		if got := Filename(in); got != want {
			t.Errorf("Filename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGeneratorRequiresToken(t *testing.T) {
	t.Setenv("HF_API_TOKEN", "")
	if _, err := NewGenerator("", ""); err == nil {
		t.Error("Expected error without token")
	}
}

func TestGenerateWrapsPrompt(t *testing.T) {
	var gotBody map[string]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	g, err := NewGenerator("test-token", "some/model")
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	g.httpClient = srv.Client()

	// Point the request at the test server by swapping the transport.
	g.httpClient.Transport = rewriteHost(srv.URL)

	data, err := g.Generate(context.Background(), "red dragon")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if string(data) != "png-bytes" {
		t.Errorf("Unexpected image bytes: %q", data)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Unexpected auth header: %q", gotAuth)
	}
	want := "GRPZA, red dragon, transparent background, game asset, pixel art"
	if gotBody["inputs"] != want {
		t.Errorf("Prompt not wrapped: %q", gotBody["inputs"])
	}
}

func TestGenerateErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model is loading"))
	}))
	defer srv.Close()

	g, err := NewGenerator("test-token", "some/model")
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	g.httpClient = srv.Client()
	g.httpClient.Transport = rewriteHost(srv.URL)

	_, err = g.Generate(context.Background(), "sword")
	if err == nil {
		t.Fatal("Expected error on 503")
	}
	if !strings.Contains(err.Error(), "model is loading") {
		t.Errorf("Error should include body excerpt, got: %v", err)
	}
}

func TestSaveWritesAsset(t *testing.T) {
	g := &Generator{AssetsDir: t.TempDir()}

	path, err := g.Save("red dragon", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if filepath.Base(path) != "red_dragon.png" {
		t.Errorf("Unexpected filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Cannot read saved asset: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Unexpected file contents: %q", data)
	}
}

// rewriteHost redirects every request to the test server.
type rewriteHost string

func (h rewriteHost) RoundTrip(req *http.Request) (*http.Response, error) {
	target := strings.TrimPrefix(string(h), "http://")
	req.URL.Scheme = "http"
	req.URL.Host = target
	return http.DefaultTransport.RoundTrip(req)
}

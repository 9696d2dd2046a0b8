package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"
)

// Response is a fully read HTTP response.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// HTTPGet issues a GET request and reads the whole body.
func HTTPGet(t testing.TB, url string) Response {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return Response{Status: resp.StatusCode, ContentType: resp.Header.Get("Content-Type"), Body: body}
}

// HTTPGetJSON issues a GET request, requires a 200 and decodes the body into out.
func HTTPGetJSON(t testing.TB, url string, out any) {
	t.Helper()
	resp := HTTPGet(t, url)
	if resp.Status != http.StatusOK {
		t.Fatalf("unexpected status %d for %s: %s", resp.Status, url, string(resp.Body))
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/nene-dev/thumbtalk/pkg/message"
	"github.com/nene-dev/thumbtalk/pkg/thumbnail"
)

func testAssets(t *testing.T) fstest.MapFS {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{180, 90, 30, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test asset: %v", err)
	}
	data := buf.Bytes()

	return fstest.MapFS{
		"images/sana_stare.png":                                  &fstest.MapFile{Data: data},
		"images/sans/bg.jpg":                                     &fstest.MapFile{Data: data},
		"images/bluearchive/bg/abydos-desert.jpg":                &fstest.MapFile{Data: data},
		"images/bluearchive/char_small/hikari/up_hikari_001.png": &fstest.MapFile{Data: data},
	}
}

func setupServer(t *testing.T) (http.Handler, message.Store) {
	t.Helper()
	renderer, err := thumbnail.NewRenderer(thumbnail.Options{Assets: testAssets(t)})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	store := message.NewMemStore()
	return New(store, renderer, time.Minute, nil).Router(), store
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	return resp
}

func TestCreateMessage(t *testing.T) {
	h, _ := setupServer(t)

	resp := postJSON(t, h, "/api/message", map[string]any{
		"message":   "  안녕  ",
		"imageType": "hikari",
		"subType":   "999",
		"zoomMode":  true,
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body)
	}

	var body struct {
		ID        string `json:"id"`
		Message   string `json:"message"`
		ImageType string `json:"imageType"`
		SubType   string `json:"subType"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.ID) != message.IDLength {
		t.Fatalf("expected %d-char id, got %q", message.IDLength, body.ID)
	}
	if body.Message != "안녕" {
		t.Fatalf("expected trimmed message, got %q", body.Message)
	}
	if body.SubType != "001" {
		t.Fatalf("expected normalized subType 001, got %q", body.SubType)
	}
}

func TestCreateMessageEmptyRejected(t *testing.T) {
	h, store := setupServer(t)

	for _, msg := range []string{"", "   ", "\n\t"} {
		resp := postJSON(t, h, "/api/message", map[string]any{"message": msg})
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("message %q: expected 400, got %d", msg, resp.Code)
		}
	}

	if n := store.(*message.MemStore).Len(); n != 0 {
		t.Fatalf("expected no documents written, got %d", n)
	}
}

func TestCreateMessageIdempotent(t *testing.T) {
	h, store := setupServer(t)

	body := map[string]any{"message": "twice", "imageType": "sans"}
	first := postJSON(t, h, "/api/message", body)
	second := postJSON(t, h, "/api/message", body)

	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Fatalf("expected identical responses, got %s vs %s", first.Body, second.Body)
	}
	if n := store.(*message.MemStore).Len(); n != 1 {
		t.Fatalf("expected one document, got %d", n)
	}
}

func TestGetMessageRoundTrip(t *testing.T) {
	h, _ := setupServer(t)

	created := postJSON(t, h, "/api/message", map[string]any{"message": "lookup", "imageType": "nozomi", "subType": "003"})
	var body struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(created.Body.Bytes(), &body)

	resp := get(h, "/api/message/"+body.ID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var rec message.Record
	if err := json.Unmarshal(resp.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.Message != "lookup" || rec.ImageType != "nozomi" || rec.SubType != "003" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestGetMessageNotFound(t *testing.T) {
	h, _ := setupServer(t)

	resp := get(h, "/api/message/ffffffff")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestRenderDefault(t *testing.T) {
	h, _ := setupServer(t)

	resp := get(h, "/api/og?type=sana_stare")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if cc := resp.Header().Get("Cache-Control"); cc != cacheControlDefault {
		t.Fatalf("unexpected Cache-Control %q", cc)
	}
	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected CORS header on the default render")
	}
	assertPNGSize(t, resp.Body.Bytes())
}

func TestRenderMessagePath(t *testing.T) {
	h, _ := setupServer(t)

	resp := get(h, "/api/og/%ED%95%98%EC%9D%B4?type=hikari&subType=025&zoom=true")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body)
	}
	if cc := resp.Header().Get("Cache-Control"); cc != cacheControlMessage {
		t.Fatalf("unexpected Cache-Control %q", cc)
	}
	assertPNGSize(t, resp.Body.Bytes())
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	h, _ := setupServer(t)

	resp := get(h, "/api/og/hello?type=unknown_char")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected fallback render, got %d", resp.Code)
	}
}

func TestRenderByID(t *testing.T) {
	h, _ := setupServer(t)

	created := postJSON(t, h, "/api/message", map[string]any{"message": "by id", "imageType": "sans"})
	var body struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(created.Body.Bytes(), &body)

	resp := get(h, "/api/og/id/"+body.ID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	assertPNGSize(t, resp.Body.Bytes())

	missing := get(h, "/api/og/id/00000000")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", missing.Code)
	}
}

func TestRenderCacheServesIdenticalBytes(t *testing.T) {
	h, _ := setupServer(t)

	first := get(h, "/api/og/cached?type=sans")
	second := get(h, "/api/og/cached?type=sans")

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Fatal("expected identical bytes for identical tuples")
	}
}

func TestRenderFailureIsPlainText(t *testing.T) {
	renderer, err := thumbnail.NewRenderer(thumbnail.Options{Assets: fstest.MapFS{}})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	h := New(message.NewMemStore(), renderer, time.Minute, nil).Router()

	resp := get(h, "/api/og/hello?type=sana_stare")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Failed to generate the image") {
		t.Fatalf("expected failure body, got %q", resp.Body)
	}
	if strings.HasPrefix(resp.Header().Get("Content-Type"), "image/") {
		t.Fatal("failure must not masquerade as an image")
	}
}

func assertPNGSize(t *testing.T, data []byte) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != thumbnail.CanvasWidth || b.Dy() != thumbnail.CanvasHeight {
		t.Fatalf("expected %dx%d, got %dx%d", thumbnail.CanvasWidth, thumbnail.CanvasHeight, b.Dx(), b.Dy())
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-sigstudio/pkg/imaging"
	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/store"
	"github.com/goliatone/go-sigstudio/pkg/studio"
	"github.com/goliatone/go-sigstudio/pkg/testsupport"
)

func newTestServer(t *testing.T, fns ...OptionFn) http.Handler {
	t.Helper()
	srv, err := New(append([]OptionFn{WithStore(store.NewMemoryStore())}, fns...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(data)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload.Error
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected healthz response %d %q", rec.Code, rec.Body.String())
	}
}

func TestTemplatesCatalogue(t *testing.T) {
	h := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload studio.Catalogue
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Templates) != len(model.TemplateKinds()) {
		t.Fatalf("expected %d templates, got %d", len(model.TemplateKinds()), len(payload.Templates))
	}
	if len(payload.Sizes) != 3 {
		t.Fatalf("expected 3 sizes, got %d", len(payload.Sizes))
	}
}

func TestRender(t *testing.T) {
	h := newTestServer(t)
	body := jsonBody(t, signatureRequest{Contact: testsupport.SampleContact(), Template: "classic", Size: "large"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload renderResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(payload.HTML, "Jane Doe") {
		t.Fatalf("expected name in html, got %s", payload.HTML)
	}
	if !strings.HasPrefix(payload.Text, "Jane Doe\n") {
		t.Fatalf("expected text export to start with the name, got %q", payload.Text)
	}
	// all required fields and seven of ten optional ones
	if payload.Completion != 88 {
		t.Fatalf("expected 88%% completion, got %d", payload.Completion)
	}
}

func TestRender_RejectsUnknownTemplate(t *testing.T) {
	h := newTestServer(t)
	body := jsonBody(t, signatureRequest{Template: "retro"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); !strings.Contains(msg, "retro") {
		t.Fatalf("expected template name in error, got %q", msg)
	}
}

func TestRender_RejectsMalformedJSON(t *testing.T) {
	h := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON error, got %q", ct)
	}
}

func TestVCardAttachment_EncodesNonASCIIFilename(t *testing.T) {
	h := newTestServer(t)
	body := jsonBody(t, signatureRequest{Contact: model.ContactData{FirstName: "Zoë", LastName: "Ångström"}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/vcard", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "filename*=utf-8''") {
		t.Fatalf("expected RFC 2231 encoded filename, got %q", cd)
	}
	disposition, params, err := mime.ParseMediaType(cd)
	if err != nil {
		t.Fatalf("parse disposition %q: %v", cd, err)
	}
	if disposition != "attachment" || params["filename"] != "Zoë_Ångström_signature.vcf" {
		t.Fatalf("unexpected disposition %q %v", disposition, params)
	}
}

func TestVCardAttachment(t *testing.T) {
	h := newTestServer(t)
	body := jsonBody(t, signatureRequest{Contact: testsupport.SampleContact()})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/vcard", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/vcard") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Jane_Doe_signature.vcf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "BEGIN:VCARD\r\n") {
		t.Fatalf("unexpected card %q", rec.Body.String())
	}
}

func TestImageUpload(t *testing.T) {
	h := newTestServer(t)
	body, contentType := multipartUpload(t, "image", "photo.png", pngBytes(t, 800, 400))
	req := httptest.NewRequest(http.MethodPost, "/api/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result imaging.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(result.DataURI, imaging.DataURIPrefix) {
		t.Fatalf("unexpected data uri %.40q", result.DataURI)
	}
	if result.Width != 400 || result.Height != 200 {
		t.Fatalf("expected 400x200, got %dx%d", result.Width, result.Height)
	}
}

func TestImageUpload_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		limit  int64
		data   []byte
		status int
	}{
		{name: "not an image", data: []byte("hello, this is plain text"), status: http.StatusUnsupportedMediaType},
		{name: "too large", limit: 64, data: bytes.Repeat([]byte("a"), 512), status: http.StatusRequestEntityTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var fns []OptionFn
			if tc.limit > 0 {
				fns = append(fns, WithImages(imaging.New(imaging.WithMaxBytes(tc.limit))))
			}
			h := newTestServer(t, fns...)
			body, contentType := multipartUpload(t, "image", "upload.bin", tc.data)
			req := httptest.NewRequest(http.MethodPost, "/api/image", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			if decodeError(t, rec) == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestImageUpload_MissingField(t *testing.T) {
	h := newTestServer(t)
	body, contentType := multipartUpload(t, "photo", "photo.png", pngBytes(t, 4, 4))
	req := httptest.NewRequest(http.MethodPost, "/api/image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == DefaultCookieName {
			return c
		}
	}
	t.Fatal("expected session cookie")
	return nil
}

func TestStateLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(t, rec)
	var initial stateResponse
	if err := json.NewDecoder(rec.Body).Decode(&initial); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if initial.Saved || initial.Template != model.DefaultTemplate {
		t.Fatalf("unexpected initial state %+v", initial)
	}

	put := httptest.NewRequest(http.MethodPut, "/api/state", jsonBody(t, map[string]any{
		"contact":  testsupport.SampleContact(),
		"template": "executive",
		"size":     "small",
		"theme":    "dark",
	}))
	put.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, put)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from PUT, got %d: %s", rec.Code, rec.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	get.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, get)
	var saved stateResponse
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !saved.Saved || saved.Template != model.TemplateExecutive || saved.Size != model.SizeSmall {
		t.Fatalf("unexpected saved state %+v", saved)
	}
	if saved.Contact.Email != "jane@acme.test" || saved.Theme != "dark" {
		t.Fatalf("unexpected saved contact %+v", saved)
	}

	other := httptest.NewRecorder()
	h.ServeHTTP(other, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	var fresh stateResponse
	if err := json.NewDecoder(other.Body).Decode(&fresh); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fresh.Saved {
		t.Fatal("expected sessions to be isolated")
	}

	del := httptest.NewRequest(http.MethodDelete, "/api/state", nil)
	del.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, del)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	get = httptest.NewRequest(http.MethodGet, "/api/state", nil)
	get.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, get)
	var cleared stateResponse
	if err := json.NewDecoder(rec.Body).Decode(&cleared); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cleared.Saved {
		t.Fatal("expected state to be cleared")
	}
}

func TestStateIgnoresMalformedCookie(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "../../etc"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if cookie := sessionCookie(t, rec); cookie.Value == "../../etc" {
		t.Fatal("expected a fresh session id")
	}
}

func TestPreview(t *testing.T) {
	h := newTestServer(t)

	put := httptest.NewRequest(http.MethodPut, "/api/state", jsonBody(t, map[string]any{
		"contact": testsupport.SampleContact(),
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, put)
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/preview?template=minimal&size=large", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}

	doc := testsupport.MustParseHTML(t, rec.Body.Bytes())
	if got := doc.Find("#signature").Text(); !strings.Contains(got, "Jane Doe") {
		t.Fatalf("expected rendered signature in preview, got %q", got)
	}
	if meta := doc.Find(".sig-meta").Text(); !strings.Contains(meta, "minimal") || !strings.Contains(meta, "large") {
		t.Fatalf("unexpected preview meta %q", meta)
	}
}

func TestPreview_RejectsUnknownSize(t *testing.T) {
	h := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview?size=huge", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[int]error{
		http.StatusTeapot:                StatusError{Code: http.StatusTeapot},
		http.StatusRequestEntityTooLarge: imaging.ErrTooLarge,
		http.StatusUnsupportedMediaType:  imaging.ErrNotImage,
		http.StatusInternalServerError:   StatusError{},
	}
	for want, err := range cases {
		if got := statusFor(err); got != want {
			t.Fatalf("statusFor(%v) = %d, want %d", err, got, want)
		}
	}
}

package explorer

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tarnlang/tarnir/internal/fixtures"
	"github.com/tarnlang/tarnir/loader"
)

func testService(t *testing.T) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := loader.LoadBundle([]byte(fixtures.Bundle), loader.Options{Logger: logger})
	if err != nil {
		t.Fatalf("LoadBundle() error = %v", err)
	}
	return New(p, logger)
}

func get(t *testing.T, s *Service, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeResult[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var body struct {
		Result T      `json:"result"`
		Error  *Error `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error != nil {
		t.Fatalf("unexpected error response: %v", body.Error)
	}
	return body.Result
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *Error {
	t.Helper()
	var body struct {
		Error *Error `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if body.Error == nil {
		t.Fatal("expected an error envelope")
	}
	return body.Error
}

func TestStatus(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/status")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	res := decodeResult[StatusResponse](t, w)
	if !res.OK {
		t.Error("ok = false")
	}
	if res.Libraries != 2 {
		t.Errorf("libraries = %d, want 2", res.Libraries)
	}
	if res.Names != 25 {
		t.Errorf("names = %d, want 25", res.Names)
	}
}

func TestStatus_MethodNotAllowed(t *testing.T) {
	s := testService(t)
	req := httptest.NewRequest("POST", "/api/status", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	if errResp := decodeError(t, w); errResp.Code != CodeMethodNotAllowed {
		t.Errorf("code = %s, want %s", errResp.Code, CodeMethodNotAllowed)
	}
}

func TestLibraries(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/libraries")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	res := decodeResult[[]LibrarySummary](t, w)
	want := []LibrarySummary{
		{URI: "pkg:geo/geo.tarn", Classes: 1, Extensions: 1, Typedefs: 1, Fields: 1, Procedures: 2},
		{URI: "tarn:core", Name: "core", Classes: 4},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("libraries mismatch (-want +got):\n%s", diff)
	}
}

func TestNames_Prefix(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/names?prefix=tarn:core::List")

	res := decodeResult[NamesResponse](t, w)
	want := NamesResponse{
		Names: []string{"tarn:core::List", "tarn:core::List::add"},
		Total: 2,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNames_Limit(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/names?limit=3")

	res := decodeResult[NamesResponse](t, w)
	if res.Total != 25 {
		t.Errorf("total = %d, want 25", res.Total)
	}
	want := []string{
		"pkg:geo/geo.tarn",
		"pkg:geo/geo.tarn::@typedefs",
		"pkg:geo/geo.tarn::@typedefs::Transform",
	}
	if diff := cmp.Diff(want, res.Names); diff != "" {
		t.Errorf("first names mismatch (-want +got):\n%s", diff)
	}
}

func TestNames_BadLimit(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/names?limit=-1")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if errResp := decodeError(t, w); errResp.Code != CodeInvalidArgument {
		t.Errorf("code = %s, want %s", errResp.Code, CodeInvalidArgument)
	}
}

func TestNames_UnknownKeysIgnored(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/names?bogus=1&prefix=tarn:core::int")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	res := decodeResult[NamesResponse](t, w)
	if res.Total != 1 {
		t.Errorf("total = %d, want 1", res.Total)
	}
}

func TestResolve(t *testing.T) {
	s := testService(t)

	tests := []struct {
		name string
		url  string
		want ResolveResponse
	}{
		{
			"qualified class",
			"/api/resolve?seg=tarn:core&seg=String&qualify=true",
			ResolveResponse{Display: "library tarn:core::String", Path: "tarn:core::String", Linked: true, Kind: "Class"},
		},
		{
			"bare setter",
			"/api/resolve?seg=pkg:geo/geo.tarn&seg=Point&seg=magnitude=",
			ResolveResponse{Display: "Point.magnitude=", Path: "pkg:geo/geo.tarn::Point::magnitude=", Linked: true, Kind: "Procedure"},
		},
		{
			"private member",
			"/api/resolve?seg=pkg:geo/geo.tarn&seg=Point&seg=pkg:geo/geo.tarn&seg=_hash&qualify=true",
			ResolveResponse{
				Display: "library pkg:geo/geo.tarn::Point._hash",
				Path:    "pkg:geo/geo.tarn::Point::pkg:geo/geo.tarn::_hash",
				Linked:  true,
				Kind:    "Field",
			},
		},
		{
			"typedef follows type flag",
			"/api/resolve?seg=pkg:geo/geo.tarn&seg=@typedefs&seg=Transform&qualifyTypes=true",
			ResolveResponse{
				Display: "library pkg:geo/geo.tarn::Transform",
				Path:    "pkg:geo/geo.tarn::@typedefs::Transform",
				Linked:  true,
				Kind:    "Typedef",
			},
		},
		{
			"typedef ignores declaration flag",
			"/api/resolve?seg=pkg:geo/geo.tarn&seg=@typedefs&seg=Transform&qualify=true",
			ResolveResponse{
				Display: "Transform",
				Path:    "pkg:geo/geo.tarn::@typedefs::Transform",
				Linked:  true,
				Kind:    "Typedef",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.url)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			res := decodeResult[ResolveResponse](t, w)
			if diff := cmp.Diff(tt.want, res); diff != "" {
				t.Errorf("resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/resolve?seg=tarn:core&seg=Ghost")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if errResp := decodeError(t, w); errResp.Code != CodeNotFound {
		t.Errorf("code = %s, want %s", errResp.Code, CodeNotFound)
	}
}

func TestResolve_MissingSegments(t *testing.T) {
	s := testService(t)
	w := get(t, s, "/api/resolve")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if errResp := decodeError(t, w); errResp.Code != CodeInvalidArgument {
		t.Errorf("code = %s, want %s", errResp.Code, CodeInvalidArgument)
	}
}

func TestResolve_MalformedPathRecovers(t *testing.T) {
	s := testService(t)

	// This path interns but cannot render: a private name under a bucket
	// under @typedefs at the root. The renderer panics; the middleware must
	// turn that into a 500 instead of killing the server.
	s.program.Root().Child("@typedefs").Child("@fileBucket").Child("_x")

	w := get(t, s, "/api/resolve?seg=@typedefs&seg=@fileBucket&seg=_x")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if errResp := decodeError(t, w); errResp.Code != CodeInternal {
		t.Errorf("code = %s, want %s", errResp.Code, CodeInternal)
	}
}

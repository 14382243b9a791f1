package runner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nholzer/samplecheck/internal/checker"
	"github.com/nholzer/samplecheck/internal/config"
	"github.com/nholzer/samplecheck/internal/output"
)

func testProber(t *testing.T, timeout time.Duration) *checker.Prober {
	t.Helper()
	p, err := checker.NewProber(&config.Options{Timeout: timeout})
	if err != nil {
		t.Fatalf("NewProber: %v", err)
	}
	return p
}

func testWriter(t *testing.T) (output.Writer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "output.txt")
	w, err := output.NewTextWriter(path, true)
	if err != nil {
		t.Fatalf("NewTextWriter: %v", err)
	}
	return w, path
}

func readLines(t *testing.T, w output.Writer, path string) []string {
	t.Helper()
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := strings.TrimRight(string(data), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestCheckAllOneLinePerURLInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(200)
		case "/missing":
			w.WriteHeader(404)
		default:
			w.WriteHeader(500)
		}
	}))
	defer srv.Close()

	urls := []string{srv.URL + "/ok", srv.URL + "/missing", srv.URL + "/broken"}
	w, path := testWriter(t)

	if err := checkAll(context.Background(), testProber(t, 5*time.Second), w, urls); err != nil {
		t.Fatalf("checkAll: %v", err)
	}

	lines := readLines(t, w, path)
	if len(lines) != len(urls) {
		t.Fatalf("expected %d lines, got %d: %v", len(urls), len(lines), lines)
	}
	for i, u := range urls {
		if !strings.HasPrefix(lines[i], u+": ") {
			t.Errorf("line %d should start with %q, got %q", i, u, lines[i])
		}
	}
	if !strings.HasSuffix(lines[0], ": 200") {
		t.Errorf("expected 200 for /ok, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ": 404") {
		t.Errorf("expected 404 for /missing, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ": 500") {
		t.Errorf("expected 500 for /broken, got %q", lines[2])
	}
}

func TestCheckAllContinuesPastFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	urls := []string{deadURL + "/first", srv.URL + "/second"}
	w, path := testWriter(t)

	if err := checkAll(context.Background(), testProber(t, time.Second), w, urls); err != nil {
		t.Fatalf("checkAll must not fail on a check error: %v", err)
	}

	lines := readLines(t, w, path)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], ": Error ") {
		t.Errorf("expected error line for dead server, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ": 200") {
		t.Errorf("expected 200 after the failed check, got %q", lines[1])
	}
}

func TestCheckAllCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w, path := testWriter(t)
	err := checkAll(ctx, testProber(t, time.Second), w, []string{srv.URL})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if lines := readLines(t, w, path); len(lines) != 0 {
		t.Errorf("no result lines expected after cancellation, got %v", lines)
	}
}

func TestResolveURLsDefaultsToAllSets(t *testing.T) {
	urls, err := resolveURLs(&config.Options{})
	if err != nil {
		t.Fatalf("resolveURLs: %v", err)
	}
	if len(urls) != 9 {
		t.Errorf("expected all 9 catalog URLs, got %d", len(urls))
	}
}

func TestResolveURLsSingleSet(t *testing.T) {
	urls, err := resolveURLs(&config.Options{Sets: []string{"guitar"}})
	if err != nil {
		t.Fatalf("resolveURLs: %v", err)
	}
	if len(urls) != 3 {
		t.Errorf("expected 3 guitar URLs, got %d", len(urls))
	}
	for _, u := range urls {
		if strings.Contains(u, "cello") {
			t.Errorf("instruments URL leaked into guitar selection: %q", u)
		}
	}
}

func TestResolveURLsUnknownSet(t *testing.T) {
	if _, err := resolveURLs(&config.Options{Sets: []string{"nope"}}); err == nil {
		t.Fatal("expected error for unknown set")
	}
}

func TestRunUnknownSetFailsBeforeChecking(t *testing.T) {
	opts := &config.Options{
		Sets:    []string{"nope"},
		Timeout: time.Second,
		Quiet:   true,
	}
	if err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected error for unknown set")
	}
}

func TestCheckAllIdempotentFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	urls := []string{srv.URL + "/a", srv.URL + "/b"}

	var runs []string
	for i := 0; i < 2; i++ {
		w, path := testWriter(t)
		if err := checkAll(context.Background(), testProber(t, time.Second), w, urls); err != nil {
			t.Fatalf("checkAll run %d: %v", i, err)
		}
		runs = append(runs, fmt.Sprint(readLines(t, w, path)))
	}
	if runs[0] != runs[1] {
		t.Errorf("two runs over the same URLs differ:\n%s\n%s", runs[0], runs[1])
	}
}

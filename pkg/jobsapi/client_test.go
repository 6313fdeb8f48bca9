package jobsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestExecuteDecodesListAndSendsToken(t *testing.T) {
	var gotAuth, gotQuery, gotPath, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[{"id":"a1","title":"Backend Engineer","company_logo_url":"https://x/logo.png",
			"employment_type":"Full Time","job_description":"Build APIs","location":"Delhi",
			"package_per_annum":"21 LPA","rating":4}],"total":1}`))
	})

	var out ListResponse
	params := []Param{
		{Key: "employment_type", Value: "FULLTIME,PARTTIME"},
		{Key: "minimum_package", Value: ""},
		{Key: "search", Value: "go dev"},
	}
	if err := client.Execute(context.Background(), "/jobs", params, "tok", &out); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok")
	}
	if gotPath != "/jobs" {
		t.Errorf("path = %q, want /jobs", gotPath)
	}
	if want := "employment_type=FULLTIME%2CPARTTIME&minimum_package=&search=go+dev"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotRequestID == "" {
		t.Error("expected a request id header")
	}
	if len(out.Jobs) != 1 || out.Jobs[0].PackagePerAnnum != "21 LPA" || out.Jobs[0].Rating != 4 {
		t.Errorf("unexpected payload: %+v", out)
	}
}

func TestExecuteOmitsAuthorizationWithoutToken(t *testing.T) {
	var hasAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	})

	var out ListResponse
	if err := client.Execute(context.Background(), "/jobs", nil, "", &out); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if hasAuth {
		t.Error("Authorization header sent without a token")
	}
}

func TestExecuteClassifiesFailures(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantKind   Kind
		wantStatus int
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error_msg":"invalid jwt"}`, KindUnauthorized, 401},
		{"forbidden", http.StatusForbidden, ``, KindUnauthorized, 403},
		{"not found", http.StatusNotFound, `missing`, KindHTTP, 404},
		{"server error", http.StatusInternalServerError, `boom`, KindHTTP, 500},
		{"bad json", http.StatusOK, `{"jobs":`, KindTransport, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			var out ListResponse
			err := client.Execute(context.Background(), "/jobs", nil, "tok", &out)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if apiErr.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", apiErr.Kind, tc.wantKind)
			}
			if apiErr.Status != tc.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.Status, tc.wantStatus)
			}
			if KindOf(err) != tc.wantKind {
				t.Errorf("KindOf = %s, want %s", KindOf(err), tc.wantKind)
			}
		})
	}
}

func TestExecuteTimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.Execute(ctx, "/jobs", nil, "tok", &ListResponse{})
	if KindOf(err) != KindTransport {
		t.Fatalf("KindOf(%v) = %s, want transport_error", err, KindOf(err))
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped deadline error, got %v", err)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindTransport {
		t.Errorf("KindOf(plain) = %s, want transport_error", got)
	}
}

func TestEncodeParamsKeepsOrder(t *testing.T) {
	got := EncodeParams([]Param{{"search", " x "}, {"a", "1"}})
	if want := "search=+x+&a=1"; got != want {
		t.Errorf("EncodeParams = %q, want %q", got, want)
	}
}

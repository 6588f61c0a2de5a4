package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientDoWithRetry(t *testing.T) {
	tests := []struct {
		name             string
		statuses         []int
		maxRetries       int
		expectedStatus   int
		expectedAttempts int
		expectErr        bool
	}{
		{
			name:             "retries on 503 then succeeds",
			statuses:         []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusOK},
			maxRetries:       3,
			expectedStatus:   http.StatusOK,
			expectedAttempts: 3,
		},
		{
			name:             "exhausts retries on 429",
			statuses:         []int{http.StatusTooManyRequests},
			maxRetries:       2,
			expectedAttempts: 2,
			expectErr:        true,
		},
		{
			name:             "does not retry 404",
			statuses:         []int{http.StatusNotFound},
			maxRetries:       3,
			expectedStatus:   http.StatusNotFound,
			expectedAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				status := tt.statuses[len(tt.statuses)-1]
				if attempts <= len(tt.statuses) {
					status = tt.statuses[attempts-1]
				}
				w.WriteHeader(status)
			}))
			defer ts.Close()

			client := &Client{
				httpClient: http.DefaultClient,
				baseURL:    ts.URL,
				retry:      retryPolicy{maxRetries: tt.maxRetries, baseBackoff: time.Millisecond},
			}

			req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
			if err != nil {
				t.Fatalf("create request: %v", err)
			}

			resp, err := client.do(req)
			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error: %v, got: %v", tt.expectErr, err)
			}
			if resp != nil {
				defer resp.Body.Close()
				if resp.StatusCode != tt.expectedStatus {
					t.Fatalf("status: got %d, want %d", resp.StatusCode, tt.expectedStatus)
				}
			}
			if attempts != tt.expectedAttempts {
				t.Fatalf("attempts: got %d, want %d", attempts, tt.expectedAttempts)
			}
		})
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	p := retryPolicy{maxRetries: 3, baseBackoff: 100 * time.Millisecond}
	tests := []struct {
		attempt    int
		retryAfter time.Duration
		want       time.Duration
	}{
		{0, 0, 100 * time.Millisecond},
		{2, 0, 400 * time.Millisecond},
		{1, 3 * time.Second, 3 * time.Second},
	}
	for _, tt := range tests {
		if got := p.delay(tt.attempt, tt.retryAfter); got != tt.want {
			t.Errorf("delay(%d, %v) = %v, want %v", tt.attempt, tt.retryAfter, got, tt.want)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("2"); got != 2*time.Second {
		t.Errorf("expected 2s, got %v", got)
	}
	if got := parseRetryAfter("soon"); got != 0 {
		t.Errorf("expected 0 for garbage, got %v", got)
	}
}

func TestClientDoCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &Client{httpClient: http.DefaultClient, retry: retryPolicy{maxRetries: 3, baseBackoff: time.Millisecond}}
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
	if _, err := client.do(req); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

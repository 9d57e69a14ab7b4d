package lastfm

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

// TestNewClient tests client construction and defaults.
func TestNewClient(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient(Config{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient(Config{APIKey: "test-api-key"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.baseURL != DefaultBaseURL {
			t.Errorf("expected base URL %s, got %s", DefaultBaseURL, client.baseURL)
		}
		if client.httpClient != http.DefaultClient {
			t.Error("expected http.DefaultClient as default transport")
		}
		if client.User() == nil {
			t.Error("expected user service to be initialized")
		}
	})

	t.Run("custom transport and base URL", func(t *testing.T) {
		httpClient := &http.Client{Timeout: 5 * time.Second}
		client, err := NewClient(Config{
			APIKey:     "test-api-key",
			HTTPClient: httpClient,
			BaseURL:    "http://localhost:8080",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.httpClient != httpClient {
			t.Error("expected injected HTTP client to be used")
		}
		if client.baseURL != "http://localhost:8080" {
			t.Errorf("expected custom base URL, got %s", client.baseURL)
		}
	})
}

// TestError tests the structured API error type.
func TestError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := &Error{Code: 6, Message: "User not found"}
		want := "lastfm: error 6: User not found"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("errors.Is matches on code", func(t *testing.T) {
		err := &Error{Code: ErrCodeRateLimitExceeded, Message: "Rate limit exceeded"}
		if !errors.Is(err, &Error{Code: ErrCodeRateLimitExceeded}) {
			t.Error("expected errors.Is to match on code")
		}
		if errors.Is(err, &Error{Code: ErrCodeInvalidAPIKey}) {
			t.Error("expected errors.Is to reject a different code")
		}
	})

	t.Run("temporary codes", func(t *testing.T) {
		tests := []struct {
			code int
			want bool
		}{
			{ErrCodeServiceOffline, true},
			{ErrCodeTempUnavailable, true},
			{ErrCodeInvalidAPIKey, false},
			{ErrCodeInvalidParameters, false},
		}
		for _, tt := range tests {
			err := &Error{Code: tt.code}
			if err.Temporary() != tt.want {
				t.Errorf("code %d: expected Temporary() = %v", tt.code, tt.want)
			}
		}
	})
}

// TestTrackDate_Time tests UTS timestamp conversion.
func TestTrackDate_Time(t *testing.T) {
	tests := []struct {
		name string
		date *TrackDate
		want time.Time
	}{
		{name: "nil date", date: nil, want: time.Time{}},
		{name: "empty uts", date: &TrackDate{Text: "01 Jan 2020, 00:00"}, want: time.Time{}},
		{name: "garbage uts", date: &TrackDate{UTS: "soon"}, want: time.Time{}},
		{name: "valid uts", date: &TrackDate{UTS: "1577836800"}, want: time.Unix(1577836800, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Time(); !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestTrack_LargestImage tests the artwork selection policy.
func TestTrack_LargestImage(t *testing.T) {
	tests := []struct {
		name   string
		images []Image
		want   string
	}{
		{name: "no images", images: nil, want: ""},
		{
			name: "last entry wins",
			images: []Image{
				{Size: "small", URL: "small.png"},
				{Size: "extralarge", URL: "extralarge.png"},
			},
			want: "extralarge.png",
		},
		{
			name: "empty URLs skipped from the end",
			images: []Image{
				{Size: "small", URL: "small.png"},
				{Size: "extralarge", URL: ""},
			},
			want: "small.png",
		},
		{
			name:   "all empty",
			images: []Image{{Size: "small"}, {Size: "large"}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := Track{Images: tt.images}
			if got := track.LargestImage(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
	"github.com/Maca31/IFPhub/internal/dto"
)

// The configured URL is the API base; signups must land on /subscribers.
func TestSubscribe_PostsToSubscribersEndpoint(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer relay.Close()

	svc := NewNewsletterService(&config.NewsletterConfig{
		APIURL:  relay.URL + "/", // trailing slash must not double up
		APIKey:  "test-key",
		GroupID: "g1",
	}, zap.NewNop())

	if err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "ana@example.com"}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if gotPath != "/subscribers" {
		t.Errorf("request went to %q, want /subscribers", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	if gotBody["email"] != "ana@example.com" || gotBody["resubscribe"] != true {
		t.Errorf("unexpected payload: %v", gotBody)
	}
}

func TestSubscribe_RelayRejection(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer relay.Close()

	svc := NewNewsletterService(&config.NewsletterConfig{APIURL: relay.URL, APIKey: "test-key"}, zap.NewNop())

	if err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "ana@example.com"}); err == nil {
		t.Fatal("expected an error for a rejected signup")
	}
}

func TestSubscribe_Disabled(t *testing.T) {
	svc := NewNewsletterService(&config.NewsletterConfig{APIURL: "https://connect.mailerlite.com/api"}, zap.NewNop())

	err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "ana@example.com"})
	if !errors.Is(err, ErrNewsletterDisabled) {
		t.Fatalf("expected ErrNewsletterDisabled, got %v", err)
	}
}

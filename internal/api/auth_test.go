// ABOUTME: Tests for the authentication client
// ABOUTME: Uses httptest to mock auth endpoint responses

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_Success_TokenField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("expected path /auth/login, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body["username"] != "kminchelle" || body["password"] != "0lelplR" {
			t.Errorf("unexpected credentials in body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":        1,
			"username":  "kminchelle",
			"email":     "kminchelle@qq.com",
			"firstName": "Jeanne",
			"lastName":  "Halvorson",
			"token":     "abc",
		})
	}))
	defer server.Close()

	c := NewAuthClient(server.URL)
	res, err := c.Login(context.Background(), "kminchelle", "0lelplR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Error != "" {
		t.Errorf("expected no error message, got %q", res.Error)
	}
	if res.Token != "abc" {
		t.Errorf("expected token abc, got %q", res.Token)
	}
	if res.User == nil || res.User.Username != "kminchelle" {
		t.Errorf("expected user kminchelle, got %+v", res.User)
	}
	if res.User.FirstName != "Jeanne" || res.User.LastName != "Halvorson" {
		t.Errorf("unexpected name fields: %+v", res.User)
	}
}

func TestLogin_Success_AccessTokenField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          1,
			"username":    "kminchelle",
			"accessToken": "xyz",
		})
	}))
	defer server.Close()

	c := NewAuthClient(server.URL)
	res, err := c.Login(context.Background(), "kminchelle", "0lelplR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Token != "xyz" {
		t.Errorf("expected accessToken normalized to xyz, got %q", res.Token)
	}
}

func TestLogin_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	c := NewAuthClient(server.URL)
	res, err := c.Login(context.Background(), "kminchelle", "wrong")
	if err != nil {
		t.Fatalf("application-level rejection must not be a Go error, got %v", err)
	}
	if res.Error != "Invalid credentials" {
		t.Errorf("expected server message, got %q", res.Error)
	}
	if res.User != nil || res.Token != "" {
		t.Errorf("expected no user or token on rejection, got %+v", res)
	}
}

func TestLogin_Rejected_FallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	c := NewAuthClient(server.URL)
	res, err := c.Login(context.Background(), "u", "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Error != "Login failed" {
		t.Errorf("expected fallback message, got %q", res.Error)
	}
}

func TestLogin_ConnectionError(t *testing.T) {
	c := NewAuthClient("http://localhost:99999")
	_, err := c.Login(context.Background(), "u", "p")
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}

func TestLogin_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewAuthClient(server.URL)
	_, err := c.Login(context.Background(), "u", "p")
	if err == nil {
		t.Error("expected parse error, got nil")
	}
}

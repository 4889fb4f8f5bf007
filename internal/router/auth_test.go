package router_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHTTP_RegisterAndLogin(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/register", map[string]any{
		"username": "oksana",
		"email":    "oksana@example.com",
		"password": "s3cret",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var reg struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	if err := json.Unmarshal(body, &reg); err != nil {
		t.Fatalf("unmarshal register: %v", err)
	}
	if reg.Message != "User registered" || reg.ID == 0 {
		t.Fatalf("unexpected register response: %+v", reg)
	}

	st, body = doReq(t, ts.URL, "POST", "/api/login", map[string]any{
		"username": "oksana",
		"password": "s3cret",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var login struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	if err := json.Unmarshal(body, &login); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}
	if login.Message != "Login successful" {
		t.Fatalf("unexpected login message: %q", login.Message)
	}
	if login.User["username"] != "oksana" || login.User["email"] != "oksana@example.com" {
		t.Fatalf("unexpected user projection: %v", login.User)
	}
	// la proyección jamás incluye la password (ni el hash)
	for _, k := range []string{"password", "password_hash"} {
		if _, ok := login.User[k]; ok {
			t.Fatalf("user projection leaks %q: %v", k, login.User)
		}
	}
}

func TestHTTP_RegisterDuplicateUsername(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/register", map[string]any{
		"username": "taras", "password": "pw1",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 first register, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/api/register", map[string]any{
		"username": "taras", "password": "pw2",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 duplicate register, got %d body=%s", st, string(body))
	}
	assertError(t, body, "Username already exists")
}

func TestHTTP_RegisterMissingFields(t *testing.T) {
	ts := newServer(t)

	for _, payload := range []map[string]any{
		{"username": "solo"},
		{"password": "solo"},
		{},
	} {
		st, body := doReq(t, ts.URL, "POST", "/api/register", payload)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 register %v, got %d body=%s", payload, st, string(body))
		}
		assertError(t, body, "Missing username or password")
	}
}

func TestHTTP_LoginFailuresAreIndistinguishable(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/register", map[string]any{
		"username": "iryna", "password": "correct",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	// password errónea
	stWrong, bodyWrong := doReq(t, ts.URL, "POST", "/api/login", map[string]any{
		"username": "iryna", "password": "incorrect",
	})
	// username inexistente
	stUnknown, bodyUnknown := doReq(t, ts.URL, "POST", "/api/login", map[string]any{
		"username": "nobody", "password": "whatever",
	})

	if stWrong != http.StatusUnauthorized || stUnknown != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", stWrong, stUnknown)
	}
	// misma respuesta en ambos casos: sin enumeración de usernames
	if string(bodyWrong) != string(bodyUnknown) {
		t.Fatalf("401 bodies differ: %s vs %s", string(bodyWrong), string(bodyUnknown))
	}
	assertError(t, bodyWrong, "Invalid credentials")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestEnsurePlayerID(t *testing.T) {
	app := fiber.New()
	app.Use(EnsurePlayerID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("playerID").(string))
	})

	cases := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"header", "alice", "", http.StatusOK},
		{"query", "", "?playerId=bob", http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"reserved", "computer", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.header != "" {
				req.Header.Set("X-Player-ID", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestPlayerIDOutlivesRequest(t *testing.T) {
	app := fiber.New()
	var seen []string
	app.Use(EnsurePlayerID())
	app.Get("/", func(c *fiber.Ctx) error {
		seen = append(seen, PlayerID(c))
		return c.SendStatus(http.StatusOK)
	})

	for _, id := range []string{"alice", "zzzzz", "bob"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Player-ID", id)
		if _, err := app.Test(req); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/?playerId=yyyyy", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	want := []string{"alice", "zzzzz", "bob", "yyyyy"}
	if len(seen) != len(want) {
		t.Fatalf("seen = %q, want %q", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen = %q, want %q", seen, want)
		}
	}
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:gameId", EnsurePlayerID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ws/g1", nil)
	req.Header.Set("X-Player-ID", "alice")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Fatalf("status = %d, want 426", resp.StatusCode)
	}
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamebattles-system/handlers"
	"gamebattles-system/middleware"
	"gamebattles-system/models"
	"gamebattles-system/repository"
	"gamebattles-system/services"
)

type testApp struct {
	app  *fiber.App
	auth *services.AuthService
}

func newTestApp() *testApp {
	users := repository.NewMemoryUserStore()
	matches := repository.NewMemoryMatchStore()

	auth := services.NewAuthService(users, "test-secret")
	matchSvc := services.NewMatchService(users, matches)
	leaderboard := services.NewLeaderboardService(users)
	chat := services.NewChatService()

	app := fiber.New()
	session := middleware.SessionMiddleware(auth)
	handlers.SetupAuthRoutes(app, auth, session)
	handlers.SetupMatchRoutes(app, matchSvc, session)
	handlers.SetupLeaderboardRoutes(app, leaderboard)
	handlers.SetupChatRoutes(app, chat, session)
	handlers.SetupGameRoutes(app)

	return &testApp{app: app, auth: auth}
}

// do sends a JSON request, optionally authenticated with a session token.
func (ta *testApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser signs up a user through the API and returns its id and token.
func (ta *testApp) registerUser(t *testing.T, username string) (string, string) {
	t.Helper()
	resp := ta.do(t, http.MethodPost, "/api/auth/register", "", services.RegisterRequest{
		Username: username,
		Email:    username + "@gamebattles.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		User  models.UserDTO `json:"user"`
		Token string         `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.User.ID, body.Token
}

func createBody() models.MatchCreateDTO {
	return models.MatchCreateDTO{
		GameTitle: "Modern Warfare 2",
		GameMode:  "Search and Destroy",
		BestOf:    3,
		Team1Name: "OpTic",
		Maps:      []string{"Afghan", "Terminal", "Rust"},
	}
}

func TestAuthEndpoints(t *testing.T) {
	ta := newTestApp()

	t.Run("register sets session cookie", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/auth/register", "", services.RegisterRequest{
			Username: "host", Email: "host@gamebattles.com", Password: "password123",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var hasCookie bool
		for _, c := range resp.Cookies() {
			if c.Name == "token" && c.Value != "" {
				hasCookie = true
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, hasCookie, "expected a token cookie")
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/auth/register", "", services.RegisterRequest{
			Username: "other", Email: "host@gamebattles.com", Password: "password123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad login rejected", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/auth/login", "", services.LoginRequest{
			Email: "host@gamebattles.com", Password: "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me requires a session", func(t *testing.T) {
		resp := ta.do(t, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me returns the sanitized user", func(t *testing.T) {
		_, token := ta.registerUser(t, "profileuser")
		resp := ta.do(t, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			User map[string]any `json:"user"`
		}
		decode(t, resp, &body)
		assert.Equal(t, "profileuser", body.User["username"])
		assert.NotContains(t, body.User, "password")
	})
}

func TestMatchEndpoints(t *testing.T) {
	ta := newTestApp()
	_, hostToken := ta.registerUser(t, "host")
	_, joinerToken := ta.registerUser(t, "challenger")
	_, outsiderToken := ta.registerUser(t, "spectator")

	t.Run("create requires a session", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/matches/", "", createBody())
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("create validates maps against bestOf", func(t *testing.T) {
		body := createBody()
		body.Maps = []string{"Afghan"}
		resp := ta.do(t, http.MethodPost, "/api/matches/", hostToken, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	var matchID string
	t.Run("create and fetch", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/matches/", hostToken, createBody())
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Match models.Match `json:"match"`
		}
		decode(t, resp, &body)
		assert.Equal(t, models.StatusOpen, body.Match.Status)
		matchID = body.Match.ID

		resp = ta.do(t, http.MethodGet, "/api/matches/"+matchID, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown match is 404", func(t *testing.T) {
		resp := ta.do(t, http.MethodGet, "/api/matches/does-not-exist", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("self-join is rejected", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%s/join", matchID), hostToken, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("join moves the match in progress", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%s/join", matchID), joinerToken,
			map[string]string{"teamName": "FaZe"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Match models.Match `json:"match"`
		}
		decode(t, resp, &body)
		assert.Equal(t, models.StatusInProgress, body.Match.Status)
		require.NotNil(t, body.Match.Team2)
		assert.Equal(t, "FaZe", body.Match.Team2.Name)
	})

	t.Run("third party cannot join", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%s/join", matchID), outsiderToken, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	report := map[string]any{
		"mapResults": []models.MapResultDTO{
			{MapName: "Afghan", Team1Score: 6, Team2Score: 4},
			{MapName: "Terminal", Team1Score: 3, Team2Score: 6},
			{MapName: "Rust", Team1Score: 6, Team2Score: 2},
		},
	}

	t.Run("outsider cannot report", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%s/report", matchID), outsiderToken, report)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("participant reports and team1 wins", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%s/report", matchID), hostToken, report)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Match models.Match `json:"match"`
		}
		decode(t, resp, &body)
		assert.Equal(t, models.StatusCompleted, body.Match.Status)
		assert.Equal(t, models.SideTeam1, body.Match.Winner)
	})

	t.Run("report on a completed match fails", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, fmt.Sprintf("/api/matches/%s/report", matchID), hostToken, report)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("open list excludes the completed match", func(t *testing.T) {
		resp := ta.do(t, http.MethodGet, "/api/matches/open", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Matches []models.Match `json:"matches"`
		}
		decode(t, resp, &body)
		assert.Empty(t, body.Matches)
	})

	t.Run("my matches reflect membership", func(t *testing.T) {
		resp := ta.do(t, http.MethodGet, "/api/matches/my-matches", joinerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Matches []models.Match `json:"matches"`
		}
		decode(t, resp, &body)
		assert.Len(t, body.Matches, 1)

		resp = ta.do(t, http.MethodGet, "/api/matches/my-matches", outsiderToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &body)
		assert.Empty(t, body.Matches)
	})
}

func TestLeaderboardEndpoint(t *testing.T) {
	ta := newTestApp()
	_, hostToken := ta.registerUser(t, "winner")
	_, joinerToken := ta.registerUser(t, "loser")

	// Play one decided bo1 so the standings have signal.
	resp := ta.do(t, http.MethodPost, "/api/matches/", hostToken, models.MatchCreateDTO{
		GameTitle: "Black Ops", GameMode: "Domination", BestOf: 1,
		Team1Name: "Winners", Maps: []string{"Nuketown"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created struct {
		Match models.Match `json:"match"`
	}
	decode(t, resp, &created)

	resp = ta.do(t, http.MethodPost, "/api/matches/"+created.Match.ID+"/join", joinerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = ta.do(t, http.MethodPost, "/api/matches/"+created.Match.ID+"/report", hostToken, map[string]any{
		"mapResults": []models.MapResultDTO{{MapName: "Nuketown", Team1Score: 200, Team2Score: 150}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ta.do(t, http.MethodGet, "/api/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var board struct {
		Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
	}
	decode(t, resp, &board)
	require.Len(t, board.Leaderboard, 2)
	assert.Equal(t, "winner", board.Leaderboard[0].Username)
	assert.Equal(t, 1, board.Leaderboard[0].Wins)
	assert.InDelta(t, 100.0, board.Leaderboard[0].WinRate, 0.001)
	assert.Equal(t, "loser", board.Leaderboard[1].Username)
	assert.Equal(t, 1, board.Leaderboard[1].Losses)
}

func TestChatEndpoint(t *testing.T) {
	ta := newTestApp()
	_, token := ta.registerUser(t, "chatter")

	t.Run("requires a session", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/chat/message", "", map[string]string{"message": "hello"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("replies with a canned answer", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/chat/message", token, map[string]string{"message": "how do I create a match?"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Response  string `json:"response"`
			Timestamp string `json:"timestamp"`
		}
		decode(t, resp, &body)
		assert.Contains(t, body.Response, "Create Match")
		assert.NotEmpty(t, body.Timestamp)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		resp := ta.do(t, http.MethodPost, "/api/chat/message", token, map[string]string{"message": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGamesEndpoint(t *testing.T) {
	ta := newTestApp()
	resp := ta.do(t, http.MethodGet, "/api/games", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Titles   []string            `json:"titles"`
		Modes    []string            `json:"modes"`
		MapPools map[string][]string `json:"mapPools"`
	}
	decode(t, resp, &body)
	assert.Len(t, body.Titles, 4)
	assert.Len(t, body.Modes, 4)
	assert.Contains(t, body.MapPools["Modern Warfare 2"], "Rust")
}

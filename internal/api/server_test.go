package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/auth"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/card"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/repository"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/testutil"
)

type stubGenerator struct {
	batch []aisync.Candidate
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context) ([]aisync.Candidate, error) {
	return g.batch, g.err
}

func newTestServer(t *testing.T, gen aisync.Generator) (*Server, *repository.Repository) {
	t.Helper()
	ms := testutil.NewMemStore()
	repo := repository.New(ms, nil)

	var importer *aisync.Importer
	if gen != nil {
		importer = aisync.NewImporter(repo, gen, nil)
	}
	return New(repo, importer, auth.New(ms), nil, ":0"), repo
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := doJSON(t, srv, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryCRUD(t *testing.T) {
	srv, repo := newTestServer(t, nil)

	rec := doJSON(t, srv, "POST", "/categories", map[string]string{"name": "Heaps"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var c card.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Heaps", c.Name)
	assert.Equal(t, c.ID, repo.ActiveCategory())

	rec = doJSON(t, srv, "PUT", "/categories/"+c.ID, map[string]string{"name": "Priority Queues"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, "GET", "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cats []card.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	assert.Len(t, cats, 5) // 4 seeds + 1 created

	rec = doJSON(t, srv, "DELETE", "/categories/"+c.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, "DELETE", "/categories/"+c.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryValidation(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := doJSON(t, srv, "POST", "/categories", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, "POST", "/categories", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCardEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	body := map[string]string{
		"categoryId": "1", // seed Arrays
		"question":   "What is a sliding window?",
		"answer":     "A moving index range.",
	}
	rec := doJSON(t, srv, "POST", "/cards", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var f card.Flashcard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))

	rec = doJSON(t, srv, "GET", "/categories/1/cards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cards []card.Flashcard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Len(t, cards, 3) // 2 seeds + 1 created

	// Flip twice: revealed, then hidden again.
	rec = doJSON(t, srv, "POST", "/cards/"+f.ID+"/flip", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"revealed": true}`, rec.Body.String())
	rec = doJSON(t, srv, "POST", "/cards/"+f.ID+"/flip", nil)
	assert.JSONEq(t, `{"revealed": false}`, rec.Body.String())

	rec = doJSON(t, srv, "PUT", "/cards/"+f.ID, map[string]string{
		"categoryId": "1",
		"question":   "Updated?",
		"answer":     "Yes.",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, "DELETE", "/cards/"+f.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEmptyCategoryListShape(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := doJSON(t, srv, "GET", "/categories/3/cards", nil) // seed Graphs, no cards
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestActiveCategoryEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := doJSON(t, srv, "PUT", "/active", map[string]string{"categoryId": "2"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, "GET", "/active", nil)
	assert.JSONEq(t, `{"categoryId": "2"}`, rec.Body.String())

	rec = doJSON(t, srv, "PUT", "/active", map[string]string{"categoryId": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncEndpoint(t *testing.T) {
	gen := &stubGenerator{batch: []aisync.Candidate{
		{Category: "Arrays", Question: "Fresh Q", ShortAnswer: "Fresh A"},
	}}
	srv, repo := newTestServer(t, gen)

	rec := doJSON(t, srv, "POST", "/sync", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report aisync.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Imported)
	assert.Len(t, repo.ListByCategory("1"), 3)
}

func TestSyncFailure(t *testing.T) {
	srv, repo := newTestServer(t, &stubGenerator{err: errors.New("timeout")})
	before := len(repo.Flashcards())

	rec := doJSON(t, srv, "POST", "/sync", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Len(t, repo.Flashcards(), before)
}

func TestSyncUnconfigured(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	rec := doJSON(t, srv, "POST", "/sync", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := doJSON(t, srv, "POST", "/auth/signup", map[string]string{
		"email":    "user@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, "POST", "/auth/signin", map[string]string{
		"email":    "user@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		User  auth.User `json:"user"`
		Token string    `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user", resp.User.Name)
	assert.NotEmpty(t, resp.Token)

	rec = doJSON(t, srv, "POST", "/auth/signin", map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := doJSON(t, srv, "POST", "/auth/signup", map[string]string{
		"email":    "user@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, "POST", "/auth/signin", map[string]string{
		"email":    "user@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	withToken := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		out := httptest.NewRecorder()
		srv.Router().ServeHTTP(out, req)
		return out
	}

	me := withToken("GET", "/auth/me", resp.Token)
	require.Equal(t, http.StatusOK, me.Code)
	var u auth.User
	require.NoError(t, json.Unmarshal(me.Body.Bytes(), &u))
	assert.Equal(t, "user@example.com", u.Email)

	assert.Equal(t, http.StatusUnauthorized, withToken("GET", "/auth/me", "bogus").Code)

	assert.Equal(t, http.StatusNoContent, withToken("POST", "/auth/signout", resp.Token).Code)
	assert.Equal(t, http.StatusUnauthorized, withToken("GET", "/auth/me", resp.Token).Code)
}

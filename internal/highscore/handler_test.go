package highscore

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/highscore", h.GetHighscore)
	r.POST("/highscore", h.PostHighscore)
	return r
}

func TestPostHighscoreReturnsStoredEntry(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	body, _ := json.Marshal(gin.H{"name": "alice", "score": 42})
	req := httptest.NewRequest(http.MethodPost, "/highscore", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var stored Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, "alice", stored.Name)
	assert.Equal(t, 42, stored.Score)
}

func TestPostHighscoreRejectsMissingScore(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	body, _ := json.Marshal(gin.H{"name": "alice"})
	req := httptest.NewRequest(http.MethodPost, "/highscore", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHighscoreReturnsSortedEntries(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	for _, e := range []Entry{{"alice", 30}, {"bob", 10}, {"carol", 20}} {
		_, err := svc.Submit(context.Background(), e.Name, e.Score)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/highscore", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var entries []Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, []Entry{{"alice", 30}, {"carol", 20}, {"bob", 10}}, entries)
}

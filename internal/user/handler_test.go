package user

import (
	"bytes"
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
	r.POST("/users", h.SignUp)
	r.POST("/sessions", h.Login)
	r.POST("/logout", RequireAuthMiddleware(svc), h.Logout)
	r.POST("/userscore", RequireAuthMiddleware(svc), h.UpdateScore)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 注册bob → 200带非空令牌；错误密码登录 → 404；正确密码登录 → 200且令牌已轮换。
func TestSignUpLoginScenario(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", gin.H{"name": "bob", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var signUpResp struct {
		UserID      string `json:"userId"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signUpResp))
	assert.NotEmpty(t, signUpResp.UserID)
	assert.NotEmpty(t, signUpResp.AccessToken)

	w = doJSON(r, http.MethodPost, "/sessions", gin.H{"name": "bob", "password": "wrong"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/sessions", gin.H{"name": "bob", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		UserID      string `json:"userId"`
		AccessToken string `json:"accessToken"`
		Score       int    `json:"score"`
		UserName    string `json:"userName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.Equal(t, signUpResp.UserID, loginResp.UserID)
	assert.Equal(t, "bob", loginResp.UserName)
	assert.NotEmpty(t, loginResp.AccessToken)
	assert.NotEqual(t, signUpResp.AccessToken, loginResp.AccessToken)
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", gin.H{"name": "bob", "password": "1234"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRequiresToken(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", gin.H{"name": "bob", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		UserID      string `json:"userId"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 没有令牌 → 401
	w = doJSON(r, http.MethodPost, "/logout", gin.H{"userId": resp.UserID}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 合法令牌 → 200，accessToken为null
	w = doJSON(r, http.MethodPost, "/logout", gin.H{"userId": resp.UserID}, resp.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var logoutResp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logoutResp))
	assert.Equal(t, resp.UserID, logoutResp["userId"])
	assert.Nil(t, logoutResp["accessToken"])

	// 登出后令牌立即失效
	w = doJSON(r, http.MethodPost, "/logout", gin.H{"userId": resp.UserID}, resp.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateScoreProtected(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", gin.H{"name": "bob", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var bob struct {
		UserID      string `json:"userId"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bob))

	w = doJSON(r, http.MethodPost, "/userscore", gin.H{"userId": bob.UserID, "scoreNumber": 7}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/userscore", gin.H{"userId": bob.UserID, "scoreNumber": 7}, bob.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var scoreResp struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scoreResp))
	assert.Equal(t, 7, scoreResp.Score)

	// 负的增量同样生效
	w = doJSON(r, http.MethodPost, "/userscore", gin.H{"userId": bob.UserID, "scoreNumber": -7}, bob.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scoreResp))
	assert.Equal(t, 0, scoreResp.Score)
}

func TestUpdateScoreRejectsOtherAccount(t *testing.T) {
	svc, _, _ := newTestService()
	r := newTestRouter(svc)

	w := doJSON(r, http.MethodPost, "/users", gin.H{"name": "bob", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var bob struct {
		UserID      string `json:"userId"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bob))

	w = doJSON(r, http.MethodPost, "/users", gin.H{"name": "alice", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var alice struct {
		UserID      string `json:"userId"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alice))

	// bob的令牌不能更新alice的得分
	w = doJSON(r, http.MethodPost, "/userscore", gin.H{"userId": alice.UserID, "scoreNumber": 100}, bob.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"seed-validator/internal/handler"
	"seed-validator/internal/service"
	"seed-validator/pkg/bip39"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	schemeSpot   = "scheme spot photo card baby mountain device kick cradle pact join borrow"
	abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

type validateBody struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error"`
}

type envelope struct {
	Code int               `json:"code"`
	Msg  string            `json:"msg"`
	Data map[string]string `json:"data"`
}

// unavailableService 模拟缺少密码学实现的部署
type unavailableService struct{}

func (unavailableService) Validate(string) bip39.Result {
	return bip39.Result{Err: bip39.ErrEnvironmentUnavailable}
}

func (unavailableService) DeriveSeed(string, string) ([]byte, error) {
	return nil, bip39.ErrEnvironmentUnavailable
}

func (unavailableService) Generate(int) (string, error) {
	return "", bip39.ErrEnvironmentUnavailable
}

func newTestRouter(svc service.SeedService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHTTPRouter(handler.NewSeedHandler(svc, 1024))
}

func postForm(r http.Handler, path, phrase string) *httptest.ResponseRecorder {
	form := url.Values{"seed_phrase": {phrase}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeValidate(t *testing.T, w *httptest.ResponseRecorder) validateBody {
	t.Helper()
	var body validateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(service.NewSeedService(bip39.DefaultPolicy()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"UP"`)
}

func TestIndexPage(t *testing.T) {
	r := newTestRouter(service.NewSeedService(bip39.DefaultPolicy()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "seed_phrase=")
}

func TestValidateForm(t *testing.T) {
	r := newTestRouter(service.NewSeedService(bip39.DefaultPolicy()))

	w := postForm(r, "/", schemeSpot)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"error":null}`, w.Body.String())

	cases := []struct {
		phrase string
		msg    string
	}{
		{strings.Fields(schemeSpot)[0], "Seed phrase must be 12, 15, 18, 21, or 24 words"},
		{abandonAbout, "Duplicate words found in seed phrase: 'abandon' appears more than once"},
		{strings.Replace(schemeSpot, "mountain", "mountian", 1), "Invalid word found: 'mountian' is not in BIP39 wordlist"},
		{strings.Replace(schemeSpot, "borrow", "zoo", 1), ""},
		{"", "Seed phrase must be 12, 15, 18, 21, or 24 words"},
	}
	for _, c := range cases {
		w := postForm(r, "/", c.phrase)
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeValidate(t, w)
		if c.msg == "" {
			// 替换最后一个单词: 有效或校验位错误
			if !body.Valid {
				require.NotNil(t, body.Error)
				assert.Equal(t, "Invalid checksum or phrase structure", *body.Error)
			}
			continue
		}
		assert.False(t, body.Valid)
		require.NotNil(t, body.Error)
		assert.Equal(t, c.msg, *body.Error)
	}
}

func TestValidateAPI_JSON(t *testing.T) {
	r := newTestRouter(service.NewSeedService(bip39.StandardPolicy()))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate",
		strings.NewReader(`{"seed_phrase":"`+abandonAbout+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"error":null}`, w.Body.String())
}

func TestValidate_TooLong(t *testing.T) {
	r := newTestRouter(service.NewSeedService(bip39.DefaultPolicy()))
	w := postForm(r, "/", strings.Repeat("abandon ", 200))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeValidate(t, w)
	assert.False(t, body.Valid)
	require.NotNil(t, body.Error)
}

func TestValidate_EnvironmentUnavailable(t *testing.T) {
	r := newTestRouter(unavailableService{})
	w := postForm(r, "/", schemeSpot)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeValidate(t, w)
	assert.False(t, body.Valid)
	require.NotNil(t, body.Error)
	assert.Equal(t, bip39.ErrEnvironmentUnavailable.Error(), *body.Error)
}

func TestDeriveSeedAPI(t *testing.T) {
	r := newTestRouter(service.NewSeedService(bip39.StandardPolicy()))

	post := func(body string) envelope {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		return env
	}

	env := post(`{"seed_phrase":"` + abandonAbout + `"}`)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t,
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		env.Data["seed"])

	env = post(`{"seed_phrase":"` + strings.Repeat("abandon ", 11) + `able"}`)
	assert.Equal(t, 20101, env.Code)
	assert.Equal(t, "Invalid checksum or phrase structure", env.Msg)

	env = post(`{"passphrase":"x"}`)
	assert.Equal(t, 10002, env.Code)
	assert.Contains(t, env.Msg, "SeedPhrase is required")
}

func TestDeriveSeedAPI_EnvironmentUnavailable(t *testing.T) {
	r := newTestRouter(unavailableService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", strings.NewReader(`{"seed_phrase":"`+schemeSpot+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 20102, env.Code)
}

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func postExplain(t *testing.T, body string) (*httptest.ResponseRecorder, ExplainResponse) {
	t.Helper()
	server := NewServer(":0")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/explain", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var resp ExplainResponse
	if rec.Header().Get("Content-Type") == "application/json" {
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NilError(t, err)
	}
	return rec, resp
}

func TestExplainOK(t *testing.T) {
	rec, resp := postExplain(t, `{"declaration": "char *(*f)(int, char **);"}`)
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, resp.Description,
		"f: pointer to function (int, pointer to pointer to char) returning pointer to char")
	assert.Equal(t, resp.Error, "")
	assert.Equal(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestExplainSyntaxError(t *testing.T) {
	rec, resp := postExplain(t, `{"declaration": "void f(int, void);"}`)
	assert.Equal(t, rec.Code, http.StatusBadRequest)
	assert.Equal(t, resp.Description, "")
	assert.Assert(t, strings.Contains(resp.Error, "void must be the only parameter"))
}

func TestExplainBadBody(t *testing.T) {
	rec, _ := postExplain(t, `{not json`)
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestExplainWrongMethod(t *testing.T) {
	server := NewServer(":0")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/explain", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, rec.Code, http.StatusMethodNotAllowed)
}

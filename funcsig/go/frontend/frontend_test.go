package frontend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/interviewkickstart/funcsig/funcsig/go/config"
	"github.com/interviewkickstart/funcsig/funcsig/go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, cfg *config.Config) http.Handler {
	f, err := New(cfg)
	require.NoError(t, err)
	return f.Handler()
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest("POST", "/_/parse", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestParseHandler_ValidSignature(t *testing.T) {
	h := newServer(t, config.Default())
	w := post(t, h, `{"signature": "list[int32] fun(z:list[list[char]])"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ParseResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "fun", resp.Signature.Name)
	assert.Equal(t, types.List, resp.Signature.Type.Name)
	require.Len(t, resp.Signature.Args, 1)
	assert.Equal(t, "z", resp.Signature.Args[0].Name)
	assert.Equal(t, types.Char, resp.Signature.Args[0].Type.ElementType.ElementType.Name)
}

func TestParseHandler_InvalidSignature_ReportsKind(t *testing.T) {
	h := newServer(t, config.Default())
	tests := []struct {
		body string
		kind string
		msg  string
	}{
		{`{"signature": "int32 fun(x)"}`, "malformed_signature", "Invalid format of function arguments"},
		{`{"signature": "int32 Fun(x:int32)"}`, "invalid_name", "Invalid function name: Fun"},
		{`{"signature": "int fun(x:int32)"}`, "invalid_type", "int is an invalid type declaration. Did you mean int32?"},
		{`{}`, "malformed_signature", "Malformed function signature"},
	}
	for _, tc := range tests {
		w := post(t, h, tc.body)
		require.Equal(t, http.StatusBadRequest, w.Code, tc.body)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, tc.kind, resp.Kind, tc.body)
		assert.Equal(t, tc.msg, resp.Error, tc.body)
	}
}

func TestParseHandler_UppercaseOverride(t *testing.T) {
	h := newServer(t, config.Default())
	w := post(t, h, `{"signature": "int32 X(y:int32)", "allow_uppercase_names": true}`)
	assert.Equal(t, http.StatusOK, w.Code)

	cfg := config.Default()
	cfg.AllowUppercaseNames = true
	h = newServer(t, cfg)
	w = post(t, h, `{"signature": "int32 X(y:int32)"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = post(t, h, `{"signature": "int32 X(y:int32)", "allow_uppercase_names": false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseHandler_BadJSON(t *testing.T) {
	h := newServer(t, config.Default())
	w := post(t, h, `{"signature":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Failed to decode JSON.\n", w.Body.String())
}

func TestTypesHandler(t *testing.T) {
	h := newServer(t, config.Default())
	r := httptest.NewRequest("GET", "/_/types", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resp TypesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, types.PrimitiveTypeNames(), resp.Primitive)
	assert.Equal(t, types.CompositeTypeNames(), resp.Composite)
	assert.Equal(t, []string{types.SinglyLinkedListNode}, resp.Custom)
}

func TestHandler_HealthzAndUnknownRoutes(t *testing.T) {
	h := newServer(t, config.Default())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/_/parse", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

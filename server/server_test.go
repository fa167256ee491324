package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRPC(t *testing.T, body string) JSONRPCResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handleJSONRPC(rec, req)

	var resp JSONRPCResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func rpcErrorCode(t *testing.T, resp JSONRPCResponse) int {
	t.Helper()

	errObj, ok := resp.Error.(map[string]interface{})
	require.True(t, ok, "response should carry an error object")
	return int(errObj["code"].(float64))
}

func TestHandleJSONRPC_RejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/rpc", nil)
	rec := httptest.NewRecorder()

	handleJSONRPC(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleJSONRPC_ParseError(t *testing.T) {
	resp := postRPC(t, "{not json")

	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, ErrCodeParseError, rpcErrorCode(t, resp))
}

func TestHandleJSONRPC_RequiresVersion(t *testing.T) {
	resp := postRPC(t, `{"jsonrpc":"1.0","method":"devices","id":1}`)

	assert.Equal(t, ErrCodeInvalidRequest, rpcErrorCode(t, resp))
}

func TestHandleJSONRPC_RequiresID(t *testing.T) {
	resp := postRPC(t, `{"jsonrpc":"2.0","method":"devices"}`)

	assert.Equal(t, ErrCodeInvalidRequest, rpcErrorCode(t, resp))
}

func TestHandleJSONRPC_RequiresMethod(t *testing.T) {
	resp := postRPC(t, `{"jsonrpc":"2.0","id":1}`)

	assert.Equal(t, ErrCodeInvalidRequest, rpcErrorCode(t, resp))
}

func TestHandleJSONRPC_MethodNotFound(t *testing.T) {
	resp := postRPC(t, `{"jsonrpc":"2.0","method":"no_such_method","id":7}`)

	assert.Equal(t, ErrCodeMethodNotFound, rpcErrorCode(t, resp))
	assert.Equal(t, 7, int(resp.ID.(float64)))
}

func TestHandleJSONRPC_InvalidParamsSurfaceAsServerError(t *testing.T) {
	resp := postRPC(t, `{"jsonrpc":"2.0","method":"io_tap","id":2}`)

	// io_tap without params is a handler-level failure, not a protocol one
	assert.Equal(t, ErrCodeServerError, rpcErrorCode(t, resp))
}

func TestSendBanner(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sendBanner(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var data map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&data))
	assert.Equal(t, "ok", data["status"])
}

func TestCORSMiddleware(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// preflight request is answered directly
	req := httptest.NewRequest(http.MethodOptions, "/rpc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	// normal request passes through with headers added
	req = httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(nil))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthMiddleware(t *testing.T) {
	handler := authMiddleware("secret-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// missing token
	req := httptest.NewRequest(http.MethodPost, "/rpc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong token
	req = httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// correct token
	req = httptest.NewRequest(http.MethodPost, "/rpc", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMethodRegistry_CoversExpectedMethods(t *testing.T) {
	registry := GetMethodRegistry()

	expected := []string{
		"devices", "device_set_active", "device_active", "device_reboot",
		"screenshot",
		"io_tap", "io_longpress", "io_swipe", "io_text", "io_button", "io_keyevent",
		"ui_dump", "ui_find", "ui_tap_element", "ui_wait",
		"apps_launch", "apps_terminate",
		"doctor",
	}

	for _, method := range expected {
		assert.Contains(t, registry, method)
	}
}

func TestExecute_UnknownMethod(t *testing.T) {
	_, err := Execute("bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method not found")
}

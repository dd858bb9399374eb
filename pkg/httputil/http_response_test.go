package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/streakmate/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusBadRequest, "invalid localDate", errors.New("bad format"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{Code: 400, Message: "invalid localDate", Details: "bad format"}, resp)
}

func TestWriteJSONResponseNilBody(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"read"}`))
	var dst struct {
		Title string `json:"title"`
	}
	require.NoError(t, httputil.DecodeJSON(r, &dst))
	assert.Equal(t, "read", dst.Title)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`corrupted`))
	assert.Error(t, httputil.DecodeJSON(r, &dst))
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostfound/internal/detect"
	"lostfound/internal/handler"
)

func TestDetect(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/api/detections", `{"query":"wallet"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.DetectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "wallet", resp.Query)
	assert.NotEmpty(t, resp.Labels)
	assert.LessOrEqual(t, len(resp.Labels), 2)
	assert.Equal(t, detect.Matches(resp.Labels, "wallet"), resp.Found)
}

func TestDetect_RequiresQuery(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/api/detections", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec.Body.Bytes()).Code)
}

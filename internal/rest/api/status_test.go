package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cryptotools/cmd/cryptotools/build"
	"github.com/sergeii/cryptotools/internal/testutils"
)

func TestAPI_Status_OK(t *testing.T) {
	var statusInfo map[string]string

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	build.Commit = "foobar"
	build.Version = "v1.0.0"
	build.Time = "2022-04-24T11:22:33T"

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/status", nil,
		testutils.MustBindJSON(&statusInfo),
	)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, statusInfo, map[string]string{
		"BuildCommit":  "foobar",
		"BuildTime":    "2022-04-24T11:22:33T",
		"BuildVersion": "v1.0.0",
	})
}

func TestAPI_RequestID(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(ts, http.MethodGet, "/status", nil)
	requestID := resp.Header.Get("X-Request-ID")
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)

	// a valid incoming id is echoed back
	incoming := uuid.NewString()
	resp = testutils.DoTestRequest(
		ts, http.MethodGet, "/status", nil,
		func(req *http.Request, _ *http.Response) {
			if req != nil {
				req.Header.Set("X-Request-ID", incoming)
			}
		},
	)
	assert.Equal(t, incoming, resp.Header.Get("X-Request-ID"))

	// garbage is replaced
	resp = testutils.DoTestRequest(
		ts, http.MethodGet, "/status", nil,
		func(req *http.Request, _ *http.Response) {
			if req != nil {
				req.Header.Set("X-Request-ID", "<script>")
			}
		},
	)
	assert.NotEqual(t, "<script>", resp.Header.Get("X-Request-ID"))
	_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)
}

package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

const sampleDatasetJSON = `{
	"products": [{"skuId": "SKU-A", "oemPartNumber": "OEM-100"}],
	"compatibility": [{"deviceId": "Module_1", "oemPartNumber": "OEM-100"}],
	"switchBays": [{"switchModel": "C9300-48P", "supportedModuleId": "Module_1"}]
}`

func TestDatasetHTTPLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDatasetJSON))
	}))
	defer srv.Close()

	db, err := NewDatasetHTTPAdapter(srv.URL, 5).LoadSnapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, db.Products, 1)
	require.Len(t, db.Compatibility, 1)
	require.Len(t, db.SwitchBays, 1)
}

func TestDatasetHTTPServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewDatasetHTTPAdapter(srv.URL, 5).LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeUnavailable, errbuilder.CodeOf(err))
}

func TestDatasetHTTPUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewDatasetHTTPAdapter(srv.URL, 1).LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeUnavailable, errbuilder.CodeOf(err))
}

func TestDatasetHTTPMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := NewDatasetHTTPAdapter(srv.URL, 5).LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestDatasetHTTPEmptyEndpoint(t *testing.T) {
	_, err := NewDatasetHTTPAdapter("", 5).LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

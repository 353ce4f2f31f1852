package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/jennyflying-25/cisco-checker-app/internal/ports"
	"github.com/jennyflying-25/cisco-checker-app/internal/shared"
	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

const defaultDatasetTimeout = 30 * time.Second
const maxDatasetBody = 32 << 20

// DatasetHTTPAdapter fetches the dataset document from an HTTP endpoint.
// The endpoint must serve JSON matching the dataset shape contract.
type DatasetHTTPAdapter struct {
	Endpoint string
	Timeout  time.Duration
	Client   *http.Client
}

func NewDatasetHTTPAdapter(endpoint string, timeoutSec int) DatasetHTTPAdapter {
	timeout := defaultDatasetTimeout
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	return DatasetHTTPAdapter{Endpoint: endpoint, Timeout: timeout}
}

func (a DatasetHTTPAdapter) LoadSnapshot(ctx context.Context) (types.Database, error) {
	if strings.TrimSpace(a.Endpoint) == "" {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dataset endpoint is empty")
	}

	requestCtx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, a.Endpoint, nil)
	if err != nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid dataset endpoint").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client().Do(req)
	if err != nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("dataset endpoint unreachable").
			WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetBody))
	if err != nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read dataset response").
			WithCause(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("dataset endpoint returned an error").
			WithCause(shared.HTTPStatusError(resp.StatusCode, a.Endpoint))
	}

	var doc datasetDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid dataset document").
			WithCause(err)
	}
	return normalizeDocument(ctx, doc, a.Endpoint)
}

func (a DatasetHTTPAdapter) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return &http.Client{Timeout: a.Timeout}
}

var _ ports.DatasetPort = DatasetHTTPAdapter{}

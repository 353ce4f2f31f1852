package adapters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/jennyflying-25/cisco-checker-app/internal/ports"
	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

// DatasetFileAdapter loads a dataset document from the local filesystem.
// JSON is the primary format; files with a .yaml or .yml extension are
// decoded as YAML with the same shape contract.
type DatasetFileAdapter struct {
	Path string
}

func NewDatasetFileAdapter(path string) DatasetFileAdapter {
	return DatasetFileAdapter{Path: path}
}

func (a DatasetFileAdapter) LoadSnapshot(ctx context.Context) (types.Database, error) {
	if strings.TrimSpace(a.Path) == "" {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dataset path is empty")
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("dataset file not found").
			WithCause(err)
	}

	var doc datasetDocument
	switch strings.ToLower(filepath.Ext(a.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid dataset document").
			WithCause(err)
	}
	return normalizeDocument(ctx, doc, a.Path)
}

var _ ports.DatasetPort = DatasetFileAdapter{}

package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

func writeDataset(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDatasetFileLoadJSON(t *testing.T) {
	path := writeDataset(t, "dataset.json", `{
		"products": [
			{"skuId": "SKU-A", "oemPartNumber": "OEM-100", "description": "1G SFP", "productUrl": "https://example.com/sku-a"}
		],
		"compatibility": [
			{"deviceId": "Module_1", "oemPartNumber": "OEM-100"}
		],
		"switchBays": [
			{"switchModel": "C9300-48P", "supportedModuleId": "Module_1"}
		]
	}`)

	db, err := NewDatasetFileAdapter(path).LoadSnapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, db.Products, 1)
	require.Equal(t, types.Product{
		SKUID:         "SKU-A",
		OEMPartNumber: "OEM-100",
		Description:   "1G SFP",
		ProductURL:    "https://example.com/sku-a",
	}, db.Products[0])
	require.Len(t, db.Compatibility, 1)
	require.Len(t, db.SwitchBays, 1)
	require.Zero(t, db.Skipped.Total())
}

func TestDatasetFileLoadYAML(t *testing.T) {
	path := writeDataset(t, "dataset.yaml", `
products:
  - skuId: SKU-A
    oemPartNumber: OEM-100
compatibility:
  - deviceId: Module_1
    oemPartNumber: OEM-100
switchBays:
  - switchModel: C9300-48P
    supportedModuleId: Module_1
`)

	db, err := NewDatasetFileAdapter(path).LoadSnapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, db.Products, 1)
	require.Equal(t, "SKU-A", db.Products[0].SKUID)
}

func TestDatasetFileSkipsMalformedRows(t *testing.T) {
	path := writeDataset(t, "dataset.json", `{
		"products": [
			{"skuId": "SKU-A", "oemPartNumber": "OEM-100"},
			{"skuId": 42, "oemPartNumber": "OEM-200"},
			{"oemPartNumber": "OEM-300"}
		],
		"compatibility": [
			{"deviceId": "Module_1", "oemPartNumber": "OEM-100"},
			{"deviceId": null, "oemPartNumber": "OEM-100"},
			{"deviceId": "Module_1"}
		],
		"switchBays": [
			{"switchModel": "C9300-48P", "supportedModuleId": "Module_1"},
			{"switchModel": "C9300-48P", "supportedModuleId": ""},
			{"switchModel": ["C9300-48P"], "supportedModuleId": "Module_1"}
		]
	}`)

	db, err := NewDatasetFileAdapter(path).LoadSnapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, db.Products, 1)
	require.Len(t, db.Compatibility, 1)
	require.Len(t, db.SwitchBays, 1)
	require.Equal(t, types.SkippedCounts{Products: 2, Compatibility: 2, SwitchBays: 2}, db.Skipped)
}

func TestDatasetFileMissing(t *testing.T) {
	adapter := NewDatasetFileAdapter(filepath.Join(t.TempDir(), "absent.json"))
	_, err := adapter.LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestDatasetFileInvalidDocument(t *testing.T) {
	path := writeDataset(t, "dataset.json", `{not json`)
	_, err := NewDatasetFileAdapter(path).LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestDatasetFileMissingRelations(t *testing.T) {
	path := writeDataset(t, "dataset.json", `{"something": []}`)
	_, err := NewDatasetFileAdapter(path).LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestDatasetFileEmptyPath(t *testing.T) {
	_, err := NewDatasetFileAdapter("").LoadSnapshot(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

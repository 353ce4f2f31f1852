package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

// datasetDocument is the wire shape of a dataset: one document with three
// top-level arrays of loosely-typed rows.  Rows are decoded as maps first so
// that one bad row never aborts the whole load; normalizeDocument turns them
// into typed records and drops the ones that fail the shape contract.
type datasetDocument struct {
	Products      []map[string]any `json:"products" yaml:"products"`
	Compatibility []map[string]any `json:"compatibility" yaml:"compatibility"`
	SwitchBays    []map[string]any `json:"switchBays" yaml:"switchBays"`
}

func normalizeDocument(ctx context.Context, doc datasetDocument, source string) (types.Database, error) {
	if doc.Products == nil && doc.Compatibility == nil && doc.SwitchBays == nil {
		return types.Database{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dataset document has none of the expected relations")
	}

	db := types.Database{}
	for _, row := range doc.Products {
		sku, okSKU := stringField(row, "skuId")
		part, okPart := stringField(row, "oemPartNumber")
		if !okSKU || !okPart {
			db.Skipped.Products++
			continue
		}
		db.Products = append(db.Products, types.Product{
			SKUID:         sku,
			OEMPartNumber: part,
			Description:   optionalField(row, "description"),
			Connector:     optionalField(row, "connector"),
			Reach:         optionalField(row, "reach"),
			ProductURL:    optionalField(row, "productUrl"),
		})
	}
	for _, row := range doc.Compatibility {
		device, okDevice := stringField(row, "deviceId")
		part, okPart := stringField(row, "oemPartNumber")
		if !okDevice || !okPart {
			db.Skipped.Compatibility++
			continue
		}
		db.Compatibility = append(db.Compatibility, types.CompatibilityEntry{
			DeviceID:      device,
			OEMPartNumber: part,
		})
	}
	for _, row := range doc.SwitchBays {
		model, okModel := stringField(row, "switchModel")
		slot, okSlot := stringField(row, "supportedModuleId")
		if !okModel || !okSlot {
			db.Skipped.SwitchBays++
			continue
		}
		db.SwitchBays = append(db.SwitchBays, types.SwitchBayEntry{
			SwitchModel:       model,
			SupportedModuleID: slot,
		})
	}

	if db.Skipped.Total() > 0 {
		log.Ctx(ctx).Warn().
			Str("source", source).
			Int("products", db.Skipped.Products).
			Int("compatibility", db.Skipped.Compatibility).
			Int("switch_bays", db.Skipped.SwitchBays).
			Msg("dropped malformed dataset rows")
	}
	log.Ctx(ctx).Debug().
		Str("source", source).
		Int("products", len(db.Products)).
		Int("compatibility", len(db.Compatibility)).
		Int("switch_bays", len(db.SwitchBays)).
		Msg("dataset loaded")
	return db, nil
}

// stringField extracts a required key: present, a string, and non-empty.
func stringField(row map[string]any, key string) (string, bool) {
	value, ok := row[key]
	if !ok {
		return "", false
	}
	text, ok := value.(string)
	if !ok {
		return "", false
	}
	return text, text != ""
}

// optionalField extracts a display key, tolerating absence and wrong types.
func optionalField(row map[string]any, key string) string {
	text, _ := row[key].(string)
	return text
}

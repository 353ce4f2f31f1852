package types

// Product is a single catalog entry for a first-party transceiver SKU.
//
// OEMPartNumber is the join key linking a catalog entry to compatibility
// edges.  It is not unique across the catalog: one vendor part may be sold
// under several first-party SKUs, and every match must be returned.  The
// remaining fields are display attributes the resolution engine never
// inspects.
type Product struct {
	// SKUID is the first-party catalog identifier, e.g. "GLC-TE-AO".
	SKUID string `json:"skuId" yaml:"skuId"`

	// OEMPartNumber is the vendor part identifier used as the join key,
	// e.g. "GLC-TE".
	OEMPartNumber string `json:"oemPartNumber" yaml:"oemPartNumber"`

	// Description is free-form display text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Connector is the physical connector type, e.g. "LC" or "RJ-45".
	Connector string `json:"connector,omitempty" yaml:"connector,omitempty"`

	// Reach is the rated distance, e.g. "100m".
	Reach string `json:"reach,omitempty" yaml:"reach,omitempty"`

	// ProductURL points at the catalog product page.
	ProductURL string `json:"productUrl,omitempty" yaml:"productUrl,omitempty"`
}

// CompatibilityEntry states that the device, port, or module identified by
// DeviceID accepts the vendor part OEMPartNumber.  The relation is
// many-to-many in both directions.
type CompatibilityEntry struct {
	DeviceID      string `json:"deviceId" yaml:"deviceId"`
	OEMPartNumber string `json:"oemPartNumber" yaml:"oemPartNumber"`
}

// SwitchBayEntry states that switch model SwitchModel exposes the slot
// identified by SupportedModuleID.  A model may expose several slots: fixed
// port groups (carrying the "Fixed_" identifier prefix) and pluggable module
// bays (bare module ids).
type SwitchBayEntry struct {
	SwitchModel       string `json:"switchModel" yaml:"switchModel"`
	SupportedModuleID string `json:"supportedModuleId" yaml:"supportedModuleId"`
}

// Database is one immutable snapshot of the three relations.  It is built
// once by a dataset adapter and shared read-only by every query; nothing
// mutates it after load, so concurrent queries need no locking.  Replacing
// the dataset means building a new Database and swapping the pointer
// wholesale, never editing relations in place.
type Database struct {
	Products      []Product            `json:"products" yaml:"products"`
	Compatibility []CompatibilityEntry `json:"compatibility" yaml:"compatibility"`
	SwitchBays    []SwitchBayEntry     `json:"switchBays" yaml:"switchBays"`

	// Skipped counts the rows per relation that failed the shape contract
	// during load and were dropped.
	Skipped SkippedCounts `json:"skipped" yaml:"skipped"`
}

// SkippedCounts records how many malformed rows each relation lost at load
// time.  Malformed rows are a local-recovery case: they never abort a load
// or a query, but dataset maintainers want to see them.
type SkippedCounts struct {
	Products      int `json:"products" yaml:"products"`
	Compatibility int `json:"compatibility" yaml:"compatibility"`
	SwitchBays    int `json:"switchBays" yaml:"switchBays"`
}

// Total returns the number of malformed rows across all three relations.
func (s SkippedCounts) Total() int {
	return s.Products + s.Compatibility + s.SwitchBays
}

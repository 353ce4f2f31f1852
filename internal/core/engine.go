package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

// Engine resolves a switch model to the catalog products compatible with
// each of its slots.  It is a pure function of (snapshot, query): no I/O,
// no state between calls, and the snapshot is never written.
type Engine struct{}

func NewEngine() Engine {
	return Engine{}
}

// Resolve runs the three-stage join against one immutable snapshot.
//
// An empty or whitespace-only query, a nil snapshot, and an unknown switch
// model all resolve to an empty group slice with a nil error; those are
// ordinary no-result outcomes.  A non-nil error means the resolution itself
// faulted and the caller should surface a search failure rather than an
// empty result.
func (e Engine) Resolve(ctx context.Context, db *types.Database, rawQuery string) (groups []types.ResultGroup, err error) {
	defer func() {
		if r := recover(); r != nil {
			groups = nil
			err = errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("resolution failed: %v", r))
		}
	}()

	query := CanonicalKey(rawQuery)
	if query == "" || db == nil {
		return nil, nil
	}

	slots := slotsForModel(db.SwitchBays, query)
	if len(slots) == 0 {
		log.Ctx(ctx).Debug().Str("model", query).Msg("no slots for switch model")
		return nil, nil
	}

	for _, slot := range slots {
		parts := partsForSlot(db.Compatibility, CanonicalKey(slot.ID))
		if len(parts) == 0 {
			continue
		}
		matched := productsForParts(db.Products, parts)
		if len(matched) == 0 {
			continue
		}
		groups = append(groups, types.ResultGroup{Slot: slot, Products: matched})
	}

	log.Ctx(ctx).Debug().
		Str("model", query).
		Int("slots", len(slots)).
		Int("groups", len(groups)).
		Msg("resolution completed")
	return groups, nil
}

// slotsForModel collects the slots a switch model exposes, in first-seen
// relation order.  Occurrences are kept as-is: a slot id listed twice yields
// two slots, and therefore two identical groups downstream.
func slotsForModel(bays []types.SwitchBayEntry, query string) []types.Slot {
	var slots []types.Slot
	for _, bay := range bays {
		model := CanonicalKey(bay.SwitchModel)
		if model == "" || model != query {
			continue
		}
		if CanonicalKey(bay.SupportedModuleID) == "" {
			continue
		}
		slots = append(slots, types.ParseSlot(bay.SupportedModuleID))
	}
	return slots
}

// partsForSlot collects the set of OEM part numbers accepted by one slot.
// The set collapses the many-to-many duplication between compatibility
// edges and parts; membership is keyed on the canonical part form.
func partsForSlot(entries []types.CompatibilityEntry, slotKey string) map[string]struct{} {
	parts := map[string]struct{}{}
	for _, entry := range entries {
		if CanonicalKey(entry.DeviceID) != slotKey {
			continue
		}
		part := CanonicalKey(entry.OEMPartNumber)
		if part == "" {
			continue
		}
		parts[part] = struct{}{}
	}
	return parts
}

// productsForParts scans the catalog in relation order and keeps every
// product whose OEM part number is in the candidate set.  Set membership
// means no product can repeat within one group.
func productsForParts(products []types.Product, parts map[string]struct{}) []types.Product {
	var matched []types.Product
	for _, product := range products {
		key := CanonicalKey(product.OEMPartNumber)
		if key == "" {
			continue
		}
		if _, ok := parts[key]; !ok {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

package types

import "strings"

// SlotKind classifies a switch slot identifier.
type SlotKind string

const (
	// SlotKindFixed marks a fixed port group, tagged in the dataset with a
	// "Fixed_" identifier prefix.
	SlotKindFixed SlotKind = "fixed"

	// SlotKindModule marks a pluggable module bay, identified by a bare
	// module id such as "C9300-NM-8X".
	SlotKindModule SlotKind = "module"
)

// fixedSlotPrefix is the dataset convention marking fixed-port slots.
const fixedSlotPrefix = "Fixed_"

// Slot is the tagged form of a moduleOrPortId.  The dataset carries slot
// kind only as a string-prefix convention; ParseSlot decides the kind once
// at normalization time so that renderers never re-parse the prefix.
type Slot struct {
	// ID is the raw identifier as it appears in the dataset, used as the
	// join key against compatibility edges.
	ID string `json:"id" yaml:"id"`

	// Kind distinguishes fixed port groups from pluggable bays.
	Kind SlotKind `json:"kind" yaml:"kind"`

	// Label is the display form: the id with the fixed prefix stripped for
	// fixed slots, the id unchanged for module bays.
	Label string `json:"label" yaml:"label"`
}

// ParseSlot builds the tagged slot for a raw moduleOrPortId.  The prefix
// check is case-insensitive, matching the key canonicalization used
// everywhere else.
func ParseSlot(id string) Slot {
	trimmed := strings.TrimSpace(id)
	if len(trimmed) >= len(fixedSlotPrefix) && strings.EqualFold(trimmed[:len(fixedSlotPrefix)], fixedSlotPrefix) {
		return Slot{
			ID:    trimmed,
			Kind:  SlotKindFixed,
			Label: trimmed[len(fixedSlotPrefix):],
		}
	}
	return Slot{
		ID:    trimmed,
		Kind:  SlotKindModule,
		Label: trimmed,
	}
}

// Package inventory persists tracker snapshots: the items a profile holds and
// the mode it plays. The engine never reads the store; callers load a snapshot
// and hand its Inventory to the orchestrator.
package inventory

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/dungeon-tracker/internal/repositories/inventory Repository

// Snapshot is the stored state of one profile
type Snapshot struct {
	Profile   string                    `json:"profile"`
	Items     map[entities.ItemType]int `json:"items"`
	Mode      entities.Mode             `json:"mode"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// Inventory returns the snapshot as an item provider
func (s *Snapshot) Inventory() *entities.Inventory {
	inv := &entities.Inventory{
		Items:   make(map[entities.ItemType]int, len(s.Items)),
		Options: s.Mode.Clone(),
	}
	for item, count := range s.Items {
		inv.Items[item] = count
	}
	return inv
}

func (s *Snapshot) clone() *Snapshot {
	out := *s
	out.Items = make(map[entities.ItemType]int, len(s.Items))
	for item, count := range s.Items {
		out.Items[item] = count
	}
	out.Mode = s.Mode.Clone()
	return &out
}

// GetInput contains parameters for retrieving a snapshot
type GetInput struct {
	Profile string
}

// GetOutput contains the result of retrieving a snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// SaveInput contains parameters for replacing a snapshot
type SaveInput struct {
	Profile string
	Items   map[entities.ItemType]int
	Mode    entities.Mode
}

// SaveOutput contains the stored snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// SetItemInput contains parameters for changing one item count.
// A count of zero removes the item.
type SetItemInput struct {
	Profile string
	Item    entities.ItemType
	Count   int
}

// SetItemOutput contains the updated snapshot
type SetItemOutput struct {
	Snapshot *Snapshot
}

// SetModeInput contains parameters for replacing a profile's mode
type SetModeInput struct {
	Profile string
	Mode    entities.Mode
}

// SetModeOutput contains the updated snapshot
type SetModeOutput struct {
	Snapshot *Snapshot
}

// DeleteInput contains parameters for deleting a snapshot
type DeleteInput struct {
	Profile string
}

// DeleteOutput contains the result of deleting a snapshot
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for snapshot storage operations
type Repository interface {
	// Get retrieves a profile's snapshot
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces a profile's snapshot
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// SetItem changes one item count, creating the snapshot if needed
	SetItem(ctx context.Context, input SetItemInput) (*SetItemOutput, error)

	// SetMode replaces the mode, creating the snapshot if needed
	SetMode(ctx context.Context, input SetModeInput) (*SetModeOutput, error)

	// Delete removes a profile's snapshot
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errProfileEmpty  = "profile cannot be empty"
	errNegativeCount = "item count cannot be negative"
)

func validateItems(items map[entities.ItemType]int) error {
	vb := errors.NewValidationBuilder()
	for item, count := range items {
		if !entities.KnownItem(item) {
			vb.InvalidField(string(item), "unknown item")
		}
		errors.ValidateNonNegative(string(item), count, vb)
	}
	return vb.Build()
}

func validateMode(mode entities.Mode) error {
	vb := errors.NewValidationBuilder()
	for _, sb := range mode.SequenceBreaks {
		if !entities.KnownSequenceBreak(sb) {
			vb.InvalidField("SequenceBreaks", "unknown sequence break "+string(sb))
		}
	}
	return vb.Build()
}

func validateSetItem(input SetItemInput) error {
	if input.Profile == "" {
		return errors.InvalidArgument(errProfileEmpty)
	}
	if !entities.KnownItem(input.Item) {
		return errors.InvalidArgumentf("unknown item %q", input.Item)
	}
	if input.Count < 0 {
		return errors.InvalidArgument(errNegativeCount)
	}
	return nil
}

func setItem(items map[entities.ItemType]int, item entities.ItemType, count int) {
	if count == 0 {
		delete(items, item)
		return
	}
	items[item] = count
}

func newSnapshot(profile string) *Snapshot {
	return &Snapshot{
		Profile: profile,
		Items:   map[entities.ItemType]int{},
	}
}

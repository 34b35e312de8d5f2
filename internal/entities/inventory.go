package entities

// Inventory is a snapshot of held items and the active mode.
// It is read-only once handed to the engine.
type Inventory struct {
	Items   map[ItemType]int `json:"items" yaml:"items"`
	Options Mode             `json:"mode" yaml:"mode"`
}

// ItemCount returns how many of item are held
func (i *Inventory) ItemCount(item ItemType) int {
	if i == nil {
		return 0
	}
	return i.Items[item]
}

// Mode returns the active mode
func (i *Inventory) Mode() Mode {
	if i == nil {
		return Mode{}
	}
	return i.Options
}

// Clone returns a deep copy of the inventory
func (i *Inventory) Clone() *Inventory {
	if i == nil {
		return nil
	}
	out := &Inventory{
		Items:   make(map[ItemType]int, len(i.Items)),
		Options: i.Options.Clone(),
	}
	for k, v := range i.Items {
		out.Items[k] = v
	}
	return out
}

// WithItem returns a copy holding count of item. A count of zero removes it.
func (i *Inventory) WithItem(item ItemType, count int) *Inventory {
	out := i.Clone()
	if out == nil {
		out = &Inventory{Items: map[ItemType]int{}}
	}
	if count <= 0 {
		delete(out.Items, item)
		return out
	}
	out.Items[item] = count
	return out
}

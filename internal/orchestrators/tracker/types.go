package tracker

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
)

// EvaluateInput defines the request for evaluating one dungeon
type EvaluateInput struct {
	DungeonID entities.DungeonID
	Items     requirements.ItemProvider
	Overworld dungeons.OverworldAccessibility
	// EvaluationID is generated when empty
	EvaluationID string
}

// EvaluateOutput defines the response for evaluating one dungeon
type EvaluateOutput struct {
	Update *sections.Update
}

// EvaluateAllInput defines the request for evaluating several dungeons
type EvaluateAllInput struct {
	// DungeonIDs defaults to every dungeon in the catalog
	DungeonIDs []entities.DungeonID
	Items      requirements.ItemProvider
	Overworld  dungeons.OverworldAccessibility
}

// EvaluateAllOutput defines the response for evaluating several dungeons
type EvaluateAllOutput struct {
	EvaluationID string `json:"evaluation_id"`
	// Updates follow the order of the requested dungeons
	Updates []*sections.Update `json:"updates"`
}

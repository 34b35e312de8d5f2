package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
)

var levelStyles = map[entities.AccessibilityLevel]color.Style{
	entities.AccessibilityNone:          {color.FgRed},
	entities.AccessibilityInspect:       {color.FgGray},
	entities.AccessibilitySequenceBreak: {color.FgMagenta},
	entities.AccessibilityPartial:       {color.FgYellow},
	entities.AccessibilityNormal:        {color.FgGreen, color.OpBold},
}

// printer renders results, colouring levels only when writing to a terminal
type printer struct {
	out     io.Writer
	colored bool
}

func newPrinter(w io.Writer, noColor bool) *printer {
	return &printer{out: w, colored: !noColor && isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// level pads before colouring so escape codes do not break the columns
func (p *printer) level(l entities.AccessibilityLevel) string {
	name := fmt.Sprintf("%-13s", l)
	if !p.colored {
		return name
	}
	return levelStyles[l].Sprint(name)
}

func (p *printer) update(d *dungeons.Dungeon, mode entities.Mode, u *sections.Update) {
	bosses := make([]string, 0, len(u.Result.Bosses))
	for _, b := range u.Result.Bosses {
		bosses = append(bosses, strings.TrimSpace(p.level(b)))
	}

	line := fmt.Sprintf("%-17s %s %2d/%-2d", d.ID, p.level(u.Result.Accessibility), u.Result.Accessible, d.TotalAvailable(mode))
	if len(bosses) > 0 {
		line += "  bosses: " + strings.Join(bosses, ",")
	}
	if u.Result.Visible {
		line += "  visible"
	}
	if doors := doorFlags(d, u.Doors); doors != "" {
		line += "  doors: " + doors
	}
	fmt.Fprintln(p.out, line)
}

// doorFlags lists door states in catalog order, small key doors first
func doorFlags(d *dungeons.Dungeon, doors map[entities.KeyDoorID]bool) string {
	var parts []string
	for _, ids := range [][]entities.KeyDoorID{d.SmallKeyDoors, d.BigKeyDoors} {
		for _, id := range ids {
			unlocked, ok := doors[id]
			if !ok {
				continue
			}
			state := "locked"
			if unlocked {
				state = "open"
			}
			parts = append(parts, fmt.Sprintf("%s=%s", id, state))
		}
	}
	return strings.Join(parts, ",")
}

func (p *printer) dungeon(d *dungeons.Dungeon, mode entities.Mode) {
	fmt.Fprintf(p.out, "%-17s items=%-2d bosses=%d keys=%d/%d doors=%d+%d available=%d\n",
		d.ID,
		len(d.Items),
		len(d.Bosses),
		d.SmallKeyCount,
		d.SmallKeyTotal(mode),
		len(d.SmallKeyDoors),
		len(d.BigKeyDoors),
		d.TotalAvailable(mode),
	)
}

package plan

import (
	"fmt"
	"strings"
)

// IDGen issues stable, monotonic identifiers for one generation run.
// Counters are per prefix; a fresh or Reset IDGen restarts every sequence
// at zero, which is what makes two runs with equal inputs produce
// byte-identical IDs. An IDGen must not be shared between interleaved runs.
type IDGen struct {
	counters map[string]int
}

// NewIDGen returns an IDGen with all counters at zero.
func NewIDGen() *IDGen {
	return &IDGen{counters: make(map[string]int)}
}

// Reset restarts every counter at zero.
func (g *IDGen) Reset() {
	g.counters = make(map[string]int)
}

func (g *IDGen) next(prefix string) int {
	n := g.counters[prefix]
	g.counters[prefix] = n + 1
	return n
}

// RoomID returns the next room id for a floor: room_{floor}_{index}.
func (g *IDGen) RoomID(floor int) string {
	return fmt.Sprintf("room_%d_%d", floor, g.next(fmt.Sprintf("room_%d", floor)))
}

// WallID returns the next wall id: wall_{floor}_{ext|int}_{index}.
func (g *IDGen) WallID(floor int, exterior bool) string {
	kind := "int"
	if exterior {
		kind = "ext"
	}
	return fmt.Sprintf("wall_%d_%s_%d", floor, kind, g.next(fmt.Sprintf("wall_%d_%s", floor, kind)))
}

// OpeningID returns the next opening id:
// {type}_{floor}_{facade|INT}_{index}, with windows abbreviated to "win".
func (g *IDGen) OpeningID(t OpeningType, floor int, facade Facade) string {
	f := strings.ToUpper(string(facade))
	prefix := fmt.Sprintf("%s_%d_%s", t.idPrefix(), floor, f)
	return fmt.Sprintf("%s_%d", prefix, g.next(prefix))
}

// Package plan defines the data model shared by every generation stage:
// input constraints (RoomSpec, OpeningSpec, Constraints), output structures
// (Room, Wall, Opening, FloorPlan), the closed room classification, per-run
// ID generation, and run metadata.
//
// Input types are parsed once and read-only thereafter; Constraints
// construction fails fast on malformed input (bad envelope, non-positive
// area, empty room list, invalid facade) and never again mid-run. Output
// types carry the stable identifier formats consumed by downstream
// exporters:
//
//	room_{floor}_{index}                e.g. room_0_3
//	wall_{floor}_{ext|int}_{index}      e.g. wall_0_ext_0, wall_0_int_5
//	{type}_{floor}_{facade|INT}_{index} e.g. win_0_S_1, door_0_INT_2
//
// IDs come from an IDGen whose counters are scoped to one generation run;
// the generator resets them at the start of every run so that identical
// constraints and seed reproduce identical identifier sequences.
//
// JSON field names follow the interchange document format (envelope,
// total_area_m2, rooms, walls, openings, ...) used by the platform's
// renderers and exporters.
package plan

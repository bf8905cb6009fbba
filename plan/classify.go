package plan

import "strings"

// RoomClass is the closed room classification used by the regulation
// validator and the opening placer. It is computed once per room at
// materialization time rather than re-derived ad hoc from the name.
type RoomClass int

// Room classes. Single and double bedrooms are distinguished because UK
// regulations set different minimum areas for them.
const (
	ClassOther RoomClass = iota
	ClassBedroomSingle
	ClassBedroomDouble
	ClassLivingRoom
	ClassKitchen
	ClassBathroom
	ClassWC
	ClassCorridor
	ClassDining
	ClassStudy
	ClassUtility
	ClassEntrance
)

var classNames = map[RoomClass]string{
	ClassOther:         "other",
	ClassBedroomSingle: "single_bedroom",
	ClassBedroomDouble: "double_bedroom",
	ClassLivingRoom:    "living_room",
	ClassKitchen:       "kitchen",
	ClassBathroom:      "bathroom",
	ClassWC:            "wc",
	ClassCorridor:      "corridor",
	ClassDining:        "dining",
	ClassStudy:         "study",
	ClassUtility:       "utility",
	ClassEntrance:      "entrance",
}

func (c RoomClass) String() string { return classNames[c] }

// IsBedroom reports whether the class is a bedroom of either size.
func (c RoomClass) IsBedroom() bool {
	return c == ClassBedroomSingle || c == ClassBedroomDouble
}

// Habitable reports whether the class requires natural light under the
// daylighting rules (bedrooms, living rooms, kitchens, dining rooms,
// studies).
func (c RoomClass) Habitable() bool {
	switch c {
	case ClassBedroomSingle, ClassBedroomDouble, ClassLivingRoom,
		ClassKitchen, ClassDining, ClassStudy:
		return true
	}
	return false
}

// ClassifyRoom maps a room name to its RoomClass by substring match.
// "Master" or "double" bedrooms classify as double; every other bedroom
// is single. Unrecognized names classify as ClassOther.
func ClassifyRoom(name string) RoomClass {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "bedroom"), strings.Contains(n, "bed"):
		if strings.Contains(n, "master") || strings.Contains(n, "double") {
			return ClassBedroomDouble
		}
		return ClassBedroomSingle
	case strings.Contains(n, "living"), strings.Contains(n, "lounge"):
		return ClassLivingRoom
	case strings.Contains(n, "kitchen"):
		return ClassKitchen
	case strings.Contains(n, "bathroom"), strings.Contains(n, "bath"):
		return ClassBathroom
	case strings.Contains(n, "wc"), strings.Contains(n, "toilet"):
		return ClassWC
	case strings.Contains(n, "entrance"):
		return ClassEntrance
	case strings.Contains(n, "hallway"), strings.Contains(n, "corridor"):
		return ClassCorridor
	case strings.Contains(n, "dining"):
		return ClassDining
	case strings.Contains(n, "study"), strings.Contains(n, "office"):
		return ClassStudy
	case strings.Contains(n, "storage"), strings.Contains(n, "utility"):
		return ClassUtility
	}
	return ClassOther
}

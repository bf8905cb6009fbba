package plan_test

import (
	"testing"

	"github.com/MOH131185/genarch/plan"
)

// TestClassifyRoom covers the name-to-class mapping, including the
// master/double bedroom distinction and unknown names.
func TestClassifyRoom(t *testing.T) {
	tests := []struct {
		name string
		want plan.RoomClass
	}{
		{"Master Bedroom", plan.ClassBedroomDouble},
		{"Double Bedroom", plan.ClassBedroomDouble},
		{"Bedroom 2", plan.ClassBedroomSingle},
		{"Kids Bed", plan.ClassBedroomSingle},
		{"Living Room", plan.ClassLivingRoom},
		{"Lounge", plan.ClassLivingRoom},
		{"Kitchen", plan.ClassKitchen},
		{"Bathroom", plan.ClassBathroom},
		{"WC", plan.ClassWC},
		{"Guest Toilet", plan.ClassWC},
		{"Hallway", plan.ClassCorridor},
		{"Corridor", plan.ClassCorridor},
		{"Dining Room", plan.ClassDining},
		{"Home Office", plan.ClassStudy},
		{"Study", plan.ClassStudy},
		{"Utility Room", plan.ClassUtility},
		{"Storage", plan.ClassUtility},
		{"Entrance Hall", plan.ClassEntrance},
		{"Entrance Corridor", plan.ClassEntrance},
		{"Garage", plan.ClassOther},
		{"", plan.ClassOther},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plan.ClassifyRoom(tc.name); got != tc.want {
				t.Errorf("ClassifyRoom(%q) = %v; want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestRoomClassPredicates(t *testing.T) {
	if !plan.ClassBedroomSingle.IsBedroom() || !plan.ClassBedroomDouble.IsBedroom() {
		t.Error("bedroom classes should report IsBedroom")
	}
	if plan.ClassKitchen.IsBedroom() {
		t.Error("kitchen should not report IsBedroom")
	}
	for _, c := range []plan.RoomClass{
		plan.ClassBedroomSingle, plan.ClassBedroomDouble, plan.ClassLivingRoom,
		plan.ClassKitchen, plan.ClassDining, plan.ClassStudy,
	} {
		if !c.Habitable() {
			t.Errorf("%v should be habitable", c)
		}
	}
	for _, c := range []plan.RoomClass{plan.ClassBathroom, plan.ClassWC, plan.ClassCorridor, plan.ClassUtility} {
		if c.Habitable() {
			t.Errorf("%v should not be habitable", c)
		}
	}
}

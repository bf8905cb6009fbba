package generate_test

import (
	"fmt"

	"github.com/MOH131185/genarch/generate"
	"github.com/MOH131185/genarch/geom"
	"github.com/MOH131185/genarch/plan"
)

// ExampleRun generates a small two-room plan and prints its shape.
// Equal constraints and seed always reproduce the same plan.
func ExampleRun() {
	c, err := plan.NewConstraints(
		[]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 8}, {X: 0, Y: 8}},
		80,
		[]plan.RoomSpec{
			{Name: "Living Room", Area: 48, Adjacency: []string{"Kitchen"}},
			{Name: "Kitchen", Area: 32},
		},
		"south",
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := generate.Run(c, generate.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}

	fp := res.Plan
	fmt.Printf("rooms: %d\n", len(fp.Rooms))
	fmt.Printf("total area: %.0f\n", fp.TotalArea)
	fmt.Printf("first room id: %s\n", fp.Rooms[0].ID)
	// Output:
	// rooms: 2
	// total area: 80
	// first room id: room_0_0
}

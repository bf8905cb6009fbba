package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MOH131185/genarch/plan"
)

// document is the on-disk shape: the flattened plan plus optional
// metadata and statistics blocks.
type document struct {
	*plan.FloorPlan

	Metadata   *plan.RunMetadata `json:"metadata,omitempty"`
	Statistics *Statistics       `json:"statistics,omitempty"`
}

// Statistics summarizes a plan for quick inspection without parsing the
// full document.
type Statistics struct {
	RoomCount       int     `json:"room_count"`
	TotalArea       float64 `json:"total_area_m2"`
	AverageRoomArea float64 `json:"average_room_area_m2"`
	LargestRoom     float64 `json:"largest_room_m2"`
	SmallestRoom    float64 `json:"smallest_room_m2"`

	WallCount          int     `json:"wall_count"`
	ExteriorWallCount  int     `json:"exterior_wall_count"`
	InteriorWallCount  int     `json:"interior_wall_count"`
	ExteriorWallLength float64 `json:"exterior_wall_length_m"`
	InteriorWallLength float64 `json:"interior_wall_length_m"`
	TotalWallLength    float64 `json:"total_wall_length_m"`

	OpeningCount   int     `json:"opening_count"`
	DoorCount      int     `json:"door_count"`
	WindowCount    int     `json:"window_count"`
	DoorsPerRoom   float64 `json:"doors_per_room"`
	WindowsPerRoom float64 `json:"windows_per_room"`
}

// ComputeStatistics derives the summary block from a plan.
func ComputeStatistics(fp *plan.FloorPlan) *Statistics {
	s := &Statistics{
		RoomCount:    len(fp.Rooms),
		WallCount:    len(fp.Walls),
		OpeningCount: len(fp.Openings),
	}
	for i, r := range fp.Rooms {
		s.TotalArea += r.Area
		if i == 0 || r.Area > s.LargestRoom {
			s.LargestRoom = r.Area
		}
		if i == 0 || r.Area < s.SmallestRoom {
			s.SmallestRoom = r.Area
		}
	}
	for _, w := range fp.Walls {
		if w.Exterior {
			s.ExteriorWallCount++
			s.ExteriorWallLength += w.Length()
		} else {
			s.InteriorWallCount++
			s.InteriorWallLength += w.Length()
		}
	}
	s.TotalWallLength = s.ExteriorWallLength + s.InteriorWallLength
	for _, o := range fp.Openings {
		if o.Type.IsDoor() {
			s.DoorCount++
		}
		if o.Type.IsWindow() {
			s.WindowCount++
		}
	}
	if s.RoomCount > 0 {
		s.AverageRoomArea = s.TotalArea / float64(s.RoomCount)
		s.DoorsPerRoom = float64(s.DoorCount) / float64(s.RoomCount)
		s.WindowsPerRoom = float64(s.WindowCount) / float64(s.RoomCount)
	}
	return s
}

// JSON writes the plan document to w, indented. Metadata is included
// when non-nil; the statistics block is always computed.
func JSON(w io.Writer, fp *plan.FloorPlan, md *plan.RunMetadata) error {
	doc := document{
		FloorPlan:  fp,
		Metadata:   md,
		Statistics: ComputeStatistics(fp),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode plan: %w", err)
	}
	return nil
}

// WriteFile writes the plan document to path, creating parent
// directories as needed.
func WriteFile(path string, fp *plan.FloorPlan, md *plan.RunMetadata) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := JSON(f, fp, md); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

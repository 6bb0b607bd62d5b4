// Package beatmap reads beatmap sets into a version independent model.
//
// A set is described by its metadata file (info.dat), read with ReadSetMeta
// and its String and File variants. Each difficulty is a separate beatmap file
// in either the old or the new layout; ReadBeatmap detects the layout and
// normalizes the records into a single Events list:
//
//	bm, err := beatmap.ReadBeatmapFile("ExpertPlusStandard.dat")
//	if err != nil {
//		return err
//	}
//	for _, e := range bm.Events {
//		if n, ok := e.(*beatmap.Note); ok {
//			fmt.Println(n.Beat, n.Color, n.Direction)
//		}
//	}
//
// Events are grouped by category, never sorted by beat. For new layout
// files the categories are, in order: BPM changes, rotations, color notes,
// bombs, sliders, obstacles, burst sliders, basic events, color boosts and
// the color, rotation and translation light event box groups. Old layout
// files contribute notes and bombs, sliders, obstacles and basic events.
//
// LoadSet reads a whole set directory, decoding difficulty files concurrently.
package beatmap

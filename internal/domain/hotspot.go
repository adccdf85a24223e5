package domain

// NoteMaxRunes is the longest note kept on a hotspot; longer notes are cut.
const NoteMaxRunes = 140

type Hotspot struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Note      *string `json:"note,omitempty"`
	CreatedAt int64   `json:"createdAt"` // epoch ms
}

type NearbyHotspot struct {
	Hotspot
	DistanceKM float64 `json:"distanceKm"`
}

// TruncateNote cuts s to NoteMaxRunes code points.
func TruncateNote(s string) string {
	if len(s) <= NoteMaxRunes {
		return s
	}
	r := []rune(s)
	if len(r) <= NoteMaxRunes {
		return s
	}
	return string(r[:NoteMaxRunes])
}

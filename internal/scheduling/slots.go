package scheduling

// Slot is one bookable window of the secretary's office day.
type Slot struct {
	Label string `json:"label"`
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// Catalog is the fixed set of bookable slots: seven one-hour windows from
// 08:00 to 15:00. Catalog order is display order and the tie-break for any
// ambiguity. This is configuration, not computed.
var Catalog = []Slot{
	{Label: "08:00 - 09:00", Start: "08:00", End: "09:00"},
	{Label: "09:00 - 10:00", Start: "09:00", End: "10:00"},
	{Label: "10:00 - 11:00", Start: "10:00", End: "11:00"},
	{Label: "11:00 - 12:00", Start: "11:00", End: "12:00"},
	{Label: "12:00 - 13:00", Start: "12:00", End: "13:00"},
	{Label: "13:00 - 14:00", Start: "13:00", End: "14:00"},
	{Label: "14:00 - 15:00", Start: "14:00", End: "15:00"},
}

// IsCatalogStart reports whether a minute-normalized time is the start of
// a catalog slot.
func IsCatalogStart(start string) bool {
	for _, s := range Catalog {
		if s.Start == start {
			return true
		}
	}
	return false
}

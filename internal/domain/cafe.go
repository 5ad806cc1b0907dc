package domain

// CafeEntry is one row of the café listing shown on the shop page. The
// values are opaque display payloads and pass through the system unchanged.
type CafeEntry struct {
	Name     string // Shop name
	Rating   int    // Shop rating, 50 = 5 stars
	AvgSpend string // Average spend per person, free-form
	District string // Neighbourhood
	Deal     string // Current group deal, free-form
}

package rating

// Report records the internal quantities of one pairwise update for
// inspection and testing. The engine never reads it back; it is produced
// on request and immutable once returned.
type Report struct {
	IsDraw bool

	// Eps is the unscaled draw margin of the environment; C the combined
	// deviation of the pairing; T the normalized mean difference; V and W
	// the truncation moments applied.
	Eps float64
	C   float64
	T   float64
	V   float64
	W   float64

	// Team rosters by player name, winner first (for a draw the split is
	// the argument order, which carries no meaning).
	Winners []string
	Losers  []string

	// Per-player mean shift and post-update deviation, keyed by name.
	DeltaMu  map[string]float64
	NewSigma map[string]float64
}

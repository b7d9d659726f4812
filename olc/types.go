package olc

// Fix is a single time-ordered geographic sample: latitude and longitude
// in degrees (WGS84-like), and altitude in metres. Implementations are
// read-only and must be safe for concurrent use by multiple goroutines —
// Optimize reads every fix from multiple worker goroutines while building
// the distance matrix and DP graph layers.
//
// This is the only capability the core requires of a caller's record
// type; callers may adapt any flight-recorder representation (IGC B
// records, a database row, …) without copying into a dedicated struct.
type Fix interface {
	Latitude() float64
	Longitude() float64
	Altitude() int16
}

// legs is the fixed number of legs in an OLC Classic task: one start
// point, five turnpoints, one finish point, six connecting legs.
const legs = 6

// Path is an ordered list of 7 indices into the caller's Fix slice,
// monotonically non-decreasing: path[0] <= path[1] <= … <= path[6]. A
// repeated index (a zero-distance, same-point leg) is a degenerate but
// admissible leg, never excluded from the search; it is simply dominated
// whenever a strictly-increasing alternative scores higher, which is the
// common case on any non-degenerate track.
type Path []int

// Result is the output of Optimize: the optimal total distance in
// kilometres (haversine sum along Path) and the 7 indices that achieve
// it.
type Result struct {
	Distance float64
	Path     Path
}

// flatPoint is a point projected onto the local tangent plane, in
// kilometres. Single precision is sufficient: the accumulated error over
// at most 6 legs and 1000s of kilometres stays well below the 0.1 km
// scoring tolerance.
type flatPoint struct {
	x, y float32
}

// graphCell is one (layer, index) entry of the DP graph: the best total
// distance over `layer+1` legs ending at `index`, and the predecessor
// index that achieves it.
type graphCell struct {
	prevIndex int
	distance  float32
}

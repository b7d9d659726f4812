package olc

// isValidPath reports whether path satisfies the 1000 m rule (spec §4.6):
// the finish point's altitude must be no more than ruleMeters below the
// start point's altitude. Altitudes are integral metres; the comparison
// is exact, no tolerance.
func isValidPath(fixes []Fix, path Path, ruleMeters int16) bool {
	start := fixes[path[0]].Altitude()
	finish := fixes[path[legs]].Altitude()

	return start-finish <= ruleMeters
}

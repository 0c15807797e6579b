package fix

// orderForSafeApplication returns the violations ordered from the last
// reported in the log to the first. The log reports violations in
// top-to-bottom file order, and each insertion shifts every line below it
// down by one. Applying fixes bottom-up keeps all remaining reported line
// numbers valid without any index bookkeeping. This holds across files
// too: edits to unrelated files never interact, and violations of the
// same file stay bottom-to-top within that file's subsequence.
func orderForSafeApplication(violations []*Violation) []*Violation {
	ordered := make([]*Violation, len(violations))
	for i, v := range violations {
		ordered[len(violations)-1-i] = v
	}
	return ordered
}

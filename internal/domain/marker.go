package domain

// MarkerBlock is a versioned sentinel pair bounding the injected region of a
// user-owned file. A well-formed target contains at most one instance of a
// given pair; duplicates are treated as a hard error by the codec.
type MarkerBlock struct {
	Name          string
	StartSentinel string
	EndSentinel   string
}

// DefaultMarker is the sentinel pair managed by this tool.
func DefaultMarker() MarkerBlock {
	return MarkerBlock{
		Name:          "loghook capture",
		StartSentinel: "# >>> loghook capture v1 >>>",
		EndSentinel:   "# <<< loghook capture v1 <<<",
	}
}

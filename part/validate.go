package part

// ValidateRequirements reports ErrPartIndexOutOfRange for the first
// requirement whose PartIndex has no corresponding entry in parts.
// Callers resolving Requirement.PartIndex by raw slice indexing (the
// solver and verifier both do) must run this first on any catalog that
// crossed an external boundary (a JSON file, for instance), since a bad
// index would otherwise panic deep inside the search.
func ValidateRequirements(parts []Part, reqs []Requirement) error {
	for _, req := range reqs {
		if req.PartIndex < 0 || req.PartIndex >= len(parts) {
			return ErrPartIndexOutOfRange
		}
	}

	return nil
}

// ValidateColors reports ErrColorOutOfRange for the first part whose
// Color has no corresponding entry in spinnableColors.
func ValidateColors(parts []Part, spinnableColors []bool) error {
	for _, p := range parts {
		if p.Color < 0 || p.Color >= len(spinnableColors) {
			return ErrColorOutOfRange
		}
	}

	return nil
}

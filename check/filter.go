package check

// compareMaps filters both maps per the Only/OnlyRightKeys/Except options
// and requires the filtered views to be exactly equal in key set and
// values. Filtering works on normalized copies; the operands are never
// mutated.
func compareMaps(left, right any, o *options) error {
	lEntries := mapEntries(left)
	rEntries := mapEntries(right)

	lFiltered := filterEntries(lEntries, o, rEntries)
	rFiltered := filterEntries(rEntries, o, rEntries)

	if entriesEqual(lFiltered, rFiltered) {
		return nil
	}

	if o.filterRequested() {
		return failf(ruleFilteredMaps.String(), "filtered maps differ: %s",
			renderPair(lFiltered, rFiltered))
	}

	return failf(ruleFilteredMaps.String(), "maps differ: %s",
		renderPair(lFiltered, rFiltered))
}

// filterEntries applies the configured key restriction to one side.
// rightEntries is the unfiltered right operand, consulted by the
// right-keys mode. Filter keys that match nothing simply select nothing.
func filterEntries(entries map[any]any, o *options, rightEntries map[any]any) map[any]any {
	switch {
	case o.onlyMode == filterRightKeys:
		out := make(map[any]any, len(rightEntries))

		for k, v := range entries {
			if _, ok := rightEntries[k]; ok {
				out[k] = v
			}
		}

		return out

	case o.onlyMode == filterKeys:
		keep := make(map[any]struct{}, len(o.onlyKeys))
		for _, k := range o.onlyKeys {
			keep[normalizeKey(k)] = struct{}{}
		}

		out := make(map[any]any, len(keep))

		for k, v := range entries {
			if _, ok := keep[k]; ok {
				out[k] = v
			}
		}

		return out

	case len(o.exceptKeys) > 0:
		drop := make(map[any]struct{}, len(o.exceptKeys))
		for _, k := range o.exceptKeys {
			drop[normalizeKey(k)] = struct{}{}
		}

		out := make(map[any]any, len(entries))

		for k, v := range entries {
			if _, ok := drop[k]; !ok {
				out[k] = v
			}
		}

		return out

	default:
		return entries
	}
}

// entriesEqual compares two normalized maps: same key set, values equal
// under deepEqual.
func entriesEqual(left, right map[any]any) bool {
	if len(left) != len(right) {
		return false
	}

	for k, lv := range left {
		rv, ok := right[k]
		if !ok || !deepEqual(lv, rv) {
			return false
		}
	}

	return true
}

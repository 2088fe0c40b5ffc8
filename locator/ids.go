package locator

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVehicleIDs parses a comma-separated list of vehicle identifiers.
// Whitespace around entries is ignored and duplicates are collapsed,
// preserving first-seen order. Zero identifiers or more than max yield an
// *InputValidationError; so does any entry that is not an integer.
func ParseVehicleIDs(input string, max int) ([]int, error) {
	ids := make([]int, 0, max)
	seen := map[int]struct{}{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, &InputValidationError{Input: input, Reason: fmt.Sprintf("%q is not an integer", part)}
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, &InputValidationError{Input: input, Reason: "no identifiers"}
	}
	if len(ids) > max {
		return nil, &InputValidationError{Input: input, Reason: fmt.Sprintf("%d identifiers exceeds limit of %d", len(ids), max)}
	}
	return ids, nil
}

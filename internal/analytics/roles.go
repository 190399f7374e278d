package analytics

// UnknownRole is the bucket for matches with a missing role label.
const UnknownRole = "UNKNOWN"

// buildRoleDistribution counts games per role label.
func buildRoleDistribution(matches []Match) map[string]int {
	dist := make(map[string]int, 8)

	for _, m := range matches {
		role := m.Participant.Role
		if role == "" {
			role = UnknownRole
		}
		dist[role]++
	}

	return dist
}

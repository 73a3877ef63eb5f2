package ga

// TournamentSelect draws two distinct agents uniformly and returns the one
// with the lower fitness. Ties go to the second draw.
func TournamentSelect(agents []*Agent, rng Rand) *Agent {
	switch len(agents) {
	case 0:
		return nil
	case 1:
		return agents[0]
	}

	i := rng.Intn(len(agents))
	j := rng.Intn(len(agents) - 1)
	if j >= i {
		j++
	}
	if agents[i].Fitness < agents[j].Fitness {
		return agents[i]
	}
	return agents[j]
}

// SelectParents runs two independent tournaments; both may pick the same agent.
func SelectParents(agents []*Agent, rng Rand) (*Agent, *Agent) {
	p1 := TournamentSelect(agents, rng)
	p2 := TournamentSelect(agents, rng)
	return p1, p2
}

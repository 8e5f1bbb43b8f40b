package domain

// registry is the static set of actors allowed to sign in.
var registry = []Identity{
	{
		ID:          "25hd001",
		Name:        "Alex Johnson",
		Role:        "Senior Lab Handler",
		Department:  "Research",
		AccessLevel: LevelHandler,
		Email:       "alex.johnson@datalab.com",
	},
	{
		ID:          "25wk001",
		Name:        "Sam Thompson",
		Role:        "Lab Worker",
		Department:  "Testing",
		AccessLevel: LevelWorker,
		Email:       "sam.thompson@datalab.com",
	},
	{
		ID:          "25mb001",
		Name:        "Jamie Davis",
		Role:        "Company Member",
		Department:  "Management",
		AccessLevel: LevelMember,
		Email:       "jamie.davis@datalab.com",
	},
	{
		ID:          "25hd002",
		Name:        "Morgan Wright",
		Role:        "Lab Administrator",
		Department:  "Operations",
		AccessLevel: LevelHandler,
		Email:       "morgan.wright@datalab.com",
	},
	{
		ID:          "25wk002",
		Name:        "Taylor Lee",
		Role:        "Lab Technician",
		Department:  "Analysis",
		AccessLevel: LevelWorker,
		Email:       "taylor.lee@datalab.com",
	},
}

// Registry returns a copy of the seeded identities.
func Registry() []Identity {
	out := make([]Identity, len(registry))
	copy(out, registry)
	return out
}

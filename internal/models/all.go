package models

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&CV{},
		&WorkExperience{},
		&Education{},
		&Skill{},
		&Project{},
		&ShareLink{},
	}
}

package resource

// Definitions es el catálogo completo de recursos del registro.
// Una entrada por tabla; el router instancia el CRUD genérico con cada una.
func Definitions() []Definition {
	return []Definition{
		{
			Name:     "Pet",
			Path:     "pets",
			Table:    "pets",
			Required: []string{"name"},
			Optional: []string{"user_id", "type", "breed", "birth_date", "document_number", "owner_name", "owner_phone", "location"},
			Order:    []Order{{Column: "id"}},
		},
		{
			Name:     "Event",
			Path:     "events",
			Table:    "events",
			Required: []string{"pet_id", "event_type"},
			Optional: []string{"event_date", "description", "clinic", "location"},
			Order:    []Order{{Column: "event_date", Desc: true}, {Column: "id", Desc: true}},
			ListBy:   "pet_id",
		},
		{
			Name:     "Center",
			Path:     "centers",
			Table:    "training_centers",
			Required: []string{"name"},
			Optional: []string{"address", "phone"},
			Order:    []Order{{Column: "name"}},
		},
		{
			Name:     "Trainer",
			Path:     "trainers",
			Table:    "trainers",
			Required: []string{"center_id", "name"},
			Optional: []string{"specialty", "phone"},
			Join: &Join{
				Table:        "training_centers",
				LocalKey:     "center_id",
				LocalColumns: []string{"id", "name", "specialty", "phone"},
				Aliased: []AliasedColumn{
					{Alias: "center_name", Column: "name"},
					{Alias: "center_address", Column: "address"},
				},
				OrderColumn: "name",
			},
		},
		{
			Name:     "Leisure place",
			Path:     "leisure",
			Table:    "leisure_places",
			Required: []string{"name"},
			Optional: []string{"type", "address", "description"},
			Order:    []Order{{Column: "id"}},
		},
		{
			Name:     "Breeder",
			Path:     "breeders",
			Table:    "breeders",
			Required: []string{"name"},
			Optional: []string{"animal_type", "phone", "email", "address", "description"},
			Order:    []Order{{Column: "id"}},
		},
		{
			Name:     "Exhibition",
			Path:     "exhibitions",
			Table:    "exhibitions",
			Required: []string{"name", "start_date"},
			Optional: []string{"animal_type", "end_date", "location", "description"},
			Order:    []Order{{Column: "start_date"}},
		},
		{
			Name:     "Regulation",
			Path:     "regulations",
			Table:    "regulations",
			Required: []string{"title"},
			Optional: []string{"document_type", "url", "description"},
			Order:    []Order{{Column: "id"}},
		},
		{
			Name:     "Organization",
			Path:     "organizations",
			Table:    "animal_organizations",
			Required: []string{"name"},
			Optional: []string{"description", "website", "phone", "email"},
			Order:    []Order{{Column: "id"}},
		},
		{
			Name:     "News",
			Path:     "news",
			Table:    "news",
			Required: []string{"title", "content"},
			Optional: []string{"start_date", "end_date", "source"},
			Order:    []Order{{Column: "id"}},
		},
	}
}

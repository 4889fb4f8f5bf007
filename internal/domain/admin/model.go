package admin

// TypeCount es una fila del GROUP BY de tipos de mascota.
// Type puede ser NULL (mascotas cargadas sin tipo).
type TypeCount struct {
	Type  *string `json:"type"`
	Count int64   `json:"c"`
}

// Stats es el objeto compuesto de /api/admin/stats.
// Los nombres de campo son parte del contrato.
type Stats struct {
	Users         int64       `json:"users"`
	Pets          int64       `json:"pets"`
	PetsByType    []TypeCount `json:"petsByType"`
	Events        int64       `json:"events"`
	Clinics       int64       `json:"clinics"`
	Centers       int64       `json:"centers"`
	Trainers      int64       `json:"trainers"`
	Leisure       int64       `json:"leisure"`
	Breeders      int64       `json:"breeders"`
	Exhibitions   int64       `json:"exhibitions"`
	Regulations   int64       `json:"regulations"`
	Organizations int64       `json:"organizations"`
	News          int64       `json:"news"`
}

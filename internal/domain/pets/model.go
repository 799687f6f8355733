package pets

// Pet es el perfil público de una mascota.
// Breed y FunFact son opcionales; el resto es requerido al crear.
type Pet struct {
	ID string

	Name    string
	Species string // clave de filtro exacto
	Breed   string

	Image string // URL
	Lat   float64
	Long  float64

	Desc    string
	FunFact string
	Age     float64
}

// ListFilter: Species vacío = sin filtro.
type ListFilter struct {
	Species string
}

func (f ListFilter) Match(p Pet) bool {
	return f.Species == "" || p.Species == f.Species
}

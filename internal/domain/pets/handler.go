package pets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// createPetRequest es el cuerpo para registrar una mascota.
// "img" se acepta como alias de "image".
type createPetRequest struct {
	Name    string   `json:"name"`
	Species string   `json:"species"`
	Breed   string   `json:"breed"`
	Image   string   `json:"image"`
	Img     string   `json:"img" swaggerignore:"true"`
	Lat     *float64 `json:"lat"`
	Long    *float64 `json:"long"`
	Desc    string   `json:"desc"`
	FunFact string   `json:"funFact"`
	Age     *float64 `json:"age"`
}

// petResponse expone exactamente los campos públicos de una mascota.
type petResponse struct {
	PetID   string  `json:"petId"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed,omitempty"`
	Image   string  `json:"image"`
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
	Desc    string  `json:"desc"`
	FunFact string  `json:"funFact,omitempty"`
	Age     float64 `json:"age"`
}

type listPetsResponse struct {
	Pets []petResponse `json:"pets"`
}

type petEnvelope struct {
	Pet petResponse `json:"pet"`
}

type createdPetResponse struct {
	Pet string `json:"pet"`
}

type errorBody struct {
	Msg string `json:"msg"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve las mascotas en orden de creación. Con `species` filtra por coincidencia exacta; sin coincidencias devuelve lista vacía.
// @Tags pets
// @Produce json
// @Param species query string false "Especie exacta"
// @Success 200 {object} listPetsResponse
// @Failure 500 {object} errorBody
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), ListFilter{
			Species: r.URL.Query().Get("species"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, listPetsResponse{Pets: out})
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Registra una mascota. Requeridos: name, species, image, lat, long, desc, age. Devuelve el petId generado.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Mascota a crear"
// @Success 201 {object} createdPetResponse
// @Failure 400 {object} errorBody "missing required field / invalid request body"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		image := req.Image
		if strings.TrimSpace(image) == "" {
			image = req.Img
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
			Image:   image,
			Lat:     req.Lat,
			Long:    req.Long,
			Desc:    req.Desc,
			FunFact: req.FunFact,
			Age:     req.Age,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdPetResponse{Pet: p.ID})
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petEnvelope
// @Failure 404 {object} errorBody "no pet with that petId"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, petEnvelope{Pet: toPetResponse(p)})
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		PetID:   p.ID,
		Name:    p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		Image:   p.Image,
		Lat:     p.Lat,
		Long:    p.Long,
		Desc:    p.Desc,
		FunFact: p.FunFact,
		Age:     p.Age,
	}
}

// decodeJSON acepta body vacío como objeto vacío y rechaza datos después del primer valor.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrNotFound.Error()
	case errors.Is(err, ErrMissingField):
		return http.StatusBadRequest, ErrMissingField.Error()
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, errInvalidBody.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := errorResponse(err)
	writeJSON(w, status, errorBody{Msg: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

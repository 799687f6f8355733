package users

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))

		ur.Get("/{userID}", getUserHandler(svc))
		ur.Patch("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

// createUserRequest es el cuerpo para dar de alta un usuario.
type createUserRequest struct {
	Username string `json:"username"`
}

// updateUserRequest: nil = no tocar.
type updateUserRequest struct {
	Username *string `json:"username"`
}

// userResponse expone exactamente los campos públicos de un usuario.
type userResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type createdUserResponse struct {
	User string `json:"user"`
}

type errorBody struct {
	Msg string `json:"msg"`
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Devuelve todos los usuarios en orden de creación.
// @Tags users
// @Produce json
// @Success 200 {object} listUsersResponse
// @Failure 500 {object} errorBody
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}

		writeJSON(w, http.StatusOK, listUsersResponse{Users: out})
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description Crea un usuario con un username que no esté tomado. Devuelve el userId generado.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Usuario a crear"
// @Success 201 {object} createdUserResponse
// @Failure 400 {object} errorBody "missing required field / username taken / invalid request body"
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{Username: req.Username})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdUserResponse{User: u.ID})
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} userEnvelope
// @Failure 404 {object} errorBody "no user with that userId"
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Get(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, userEnvelope{User: toUserResponse(u)})
	}
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Description Aplica solo los campos enviados. El username nuevo no se valida contra otros usuarios.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param payload body updateUserRequest false "Campos a modificar"
// @Success 200 {object} userEnvelope
// @Failure 400 {object} errorBody "missing required field / invalid request body"
// @Failure 404 {object} errorBody "no user with that userId"
// @Router /users/{userID} [patch]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		// Primero existencia: un PATCH sin body a un id inexistente es 404, no 400.
		if _, err := svc.Get(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		var req updateUserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		u, err := svc.Update(r.Context(), userID, UpdateInput{Username: req.Username})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, userEnvelope{User: toUserResponse(u)})
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Tags users
// @Param userID path string true "ID del usuario"
// @Success 204
// @Failure 404 {object} errorBody "no user with that userId"
// @Router /users/{userID} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		UserID:   u.ID,
		Username: u.Username,
	}
}

// decodeJSON acepta body vacío como objeto vacío.
// Después del primer valor solo se admite fin de body.
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

// errorResponse es el único lugar donde un error de dominio se traduce a HTTP.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrNotFound.Error()
	case errors.Is(err, ErrMissingField):
		return http.StatusBadRequest, ErrMissingField.Error()
	case errors.Is(err, ErrUsernameTaken):
		return http.StatusBadRequest, ErrUsernameTaken.Error()
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

// writeJSON también vive en pets; no hay paquete compartido de helpers HTTP.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

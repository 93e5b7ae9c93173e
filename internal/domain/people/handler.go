package people

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/people", func(pr chi.Router) {
		pr.Get("/", listPeopleHandler(svc))
		pr.Post("/", addPersonHandler(svc))
		pr.Put("/", updatePersonHandler(svc))

		pr.Get("/{personID}", getPersonHandler(svc))
		pr.Put("/{personID}", updatePersonHandler(svc))
		pr.Delete("/{personID}", deletePersonHandler(svc))

		pr.Post("/{personID}/pets", addPetHandler(svc))
	})
}

type savedResponse struct {
	ID string `json:"id"`
}

type addPetRequest struct {
	Name string `json:"name"`
}

// listPeopleHandler godoc
// @Summary      Listar personas
// @Tags         people
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (requiere offset)"
// @Param        offset  query  int  false  "índice inicial (requiere limit)"
// @Success      200  {array}   Person
// @Failure      400  {string}  string
// @Router       /people [get]
func listPeopleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(r.URL.Query()))
		for k, v := range r.URL.Query() {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}

		page, err := ExtractPagination(params)
		if err != nil {
			respond.Error(w, err)
			return
		}

		items, err := svc.GetPeople(r.Context(), page)
		if err != nil {
			respond.Error(w, err)
			return
		}
		if items == nil {
			items = []Person{}
		}

		respond.JSON(w, http.StatusOK, items)
	}
}

// getPersonHandler godoc
// @Summary      Obtener una persona
// @Tags         people
// @Produce      json
// @Param        personID  path  string  true  "ID de la persona"
// @Success      200  {object}  Person
// @Failure      404  {string}  string
// @Router       /people/{personID} [get]
func getPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetPerson(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// addPersonHandler godoc
// @Summary      Crear persona
// @Description  first_name y last_name pasan por moderación antes de guardarse
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        person  body  NewPerson  true  "nueva persona"
// @Success      200  {object}  savedResponse
// @Failure      502  {string}  string
// @Router       /people [post]
func addPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewPerson
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadBody(w, err)
			return
		}

		p, err := svc.AddPerson(r.Context(), req)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, savedResponse{ID: p.ID})
	}
}

// updatePersonHandler godoc
// @Summary      Actualizar persona
// @Description  el id puede venir en el body o en el path; si vienen ambos deben coincidir
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        person  body  Person  true  "persona"
// @Success      200  {object}  Person
// @Failure      422  {string}  string
// @Router       /people [put]
func updatePersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Person
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadBody(w, err)
			return
		}

		if pathID := strings.TrimSpace(chi.URLParam(r, "personID")); pathID != "" {
			switch req.ID {
			case "":
				req.ID = pathID
			case pathID:
			default:
				respond.Error(w, apperr.New(apperr.KindInvalidInput, "id in body does not match path"))
				return
			}
		}

		p, err := svc.UpdatePerson(r.Context(), req)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, p)
	}
}

// deletePersonHandler godoc
// @Summary      Eliminar persona
// @Tags         people
// @Produce      plain
// @Param        personID  path  string  true  "ID de la persona"
// @Success      200  {string}  string
// @Failure      404  {string}  string
// @Router       /people/{personID} [delete]
func deletePersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "personID")
		if _, err := svc.DeletePerson(r.Context(), id); err != nil {
			respond.Error(w, err)
			return
		}
		respond.Text(w, http.StatusOK, fmt.Sprintf("Person %s deleted", id))
	}
}

// addPetHandler godoc
// @Summary      Agregar mascota a una persona
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        personID  path  string         true  "ID del dueño"
// @Param        pet       body  addPetRequest  true  "mascota"
// @Success      200  {object}  savedResponse
// @Failure      404  {string}  string
// @Router       /people/{personID}/pets [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.BadBody(w, err)
			return
		}

		pet, err := svc.AddPet(r.Context(), NewPet{Name: req.Name, PersonID: chi.URLParam(r, "personID")})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, savedResponse{ID: pet.ID})
	}
}

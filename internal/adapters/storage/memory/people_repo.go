package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"people-directory/internal/domain/people"
	"people-directory/internal/ports/storage"
)

// PeopleRepo guarda people y pets en mapas del proceso.
// Lecturas concurrentes, escrituras exclusivas.
type PeopleRepo struct {
	mu     sync.RWMutex
	byID   map[string]people.Person
	pets   map[string]people.Pet
	petsOf map[string]map[string]struct{}
}

func NewPeopleRepo() *PeopleRepo {
	return &PeopleRepo{
		byID:   make(map[string]people.Person),
		pets:   make(map[string]people.Pet),
		petsOf: make(map[string]map[string]struct{}),
	}
}

// GetPeople pagina sobre el orden por id para que los offsets sean estables.
func (r *PeopleRepo) GetPeople(ctx context.Context, limit *int, offset int) ([]people.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if offset < 0 {
		offset = 0
	}
	if offset >= len(ids) {
		return []people.Person{}, nil
	}
	end := len(ids)
	if limit != nil && *limit < end-offset {
		end = offset + *limit
	}

	out := make([]people.Person, 0, end-offset)
	for _, id := range ids[offset:end] {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *PeopleRepo) GetPerson(ctx context.Context, id string) (people.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return people.Person{}, storage.NotFound("memory.GetPerson")
	}
	return p, nil
}

func (r *PeopleRepo) AddPerson(ctx context.Context, p people.Person) (people.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return people.Person{}, storage.Failure("memory.AddPerson", errIDRequired)
	}
	if _, exists := r.byID[p.ID]; exists {
		return people.Person{}, storage.Duplicate("memory.AddPerson", nil)
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *PeopleRepo) UpdatePerson(ctx context.Context, p people.Person) (people.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return people.Person{}, storage.NotFound("memory.UpdatePerson")
	}
	r.byID[p.ID] = p
	return p, nil
}

// DeletePerson borra también sus pets.
func (r *PeopleRepo) DeletePerson(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, storage.NotFound("memory.DeletePerson")
	}
	delete(r.byID, id)
	for petID := range r.petsOf[id] {
		delete(r.pets, petID)
	}
	delete(r.petsOf, id)
	return true, nil
}

func (r *PeopleRepo) AddPet(ctx context.Context, p people.Pet) (people.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return people.Pet{}, storage.Failure("memory.AddPet", errIDRequired)
	}
	if _, ok := r.byID[p.PersonID]; !ok {
		return people.Pet{}, storage.NotFound("memory.AddPet")
	}
	if _, exists := r.pets[p.ID]; exists {
		return people.Pet{}, storage.Duplicate("memory.AddPet", nil)
	}

	r.pets[p.ID] = p
	if r.petsOf[p.PersonID] == nil {
		r.petsOf[p.PersonID] = make(map[string]struct{})
	}
	r.petsOf[p.PersonID][p.ID] = struct{}{}
	return p, nil
}

var _ people.Storer = (*PeopleRepo)(nil)

package people

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/storer_mock.go -package=mocks

// Storer es el contrato de persistencia de people y pets.
// Las implementaciones devuelven errores de internal/ports/storage:
// NotFound, DuplicateKey o Storage. Nunca un registro vacío como centinela.
type Storer interface {
	// GetPeople devuelve a lo sumo limit registros desde offset; limit nil = sin tope.
	GetPeople(ctx context.Context, limit *int, offset int) ([]Person, error)
	GetPerson(ctx context.Context, id string) (Person, error)
	AddPerson(ctx context.Context, p Person) (Person, error)
	UpdatePerson(ctx context.Context, p Person) (Person, error)
	DeletePerson(ctx context.Context, id string) (bool, error)
	AddPet(ctx context.Context, p Pet) (Pet, error)
}

package people

import (
	"strings"

	"github.com/google/uuid"
)

// Person es el registro del directorio. El id se asigna al crear y no cambia.
type Person struct {
	ID        string `json:"id" toml:"id"`
	FirstName string `json:"first_name" toml:"first_name"`
	LastName  string `json:"last_name" toml:"last_name"`
}

// NewPerson es el input de creación; nunca se persiste tal cual.
type NewPerson struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToPerson genera un id nuevo.
func (n NewPerson) ToPerson() Person {
	return Person{
		ID:        uuid.NewString(),
		FirstName: n.FirstName,
		LastName:  n.LastName,
	}
}

func (n NewPerson) valid() bool {
	return strings.TrimSpace(n.FirstName) != "" && strings.TrimSpace(n.LastName) != ""
}

// Less es el orden total usado al listar: id, luego nombre, luego apellido.
func (p Person) Less(o Person) bool {
	if p.ID != o.ID {
		return p.ID < o.ID
	}
	if p.FirstName != o.FirstName {
		return p.FirstName < o.FirstName
	}
	return p.LastName < o.LastName
}

// Pet pertenece a exactamente una Person.
type Pet struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PersonID string `json:"person_id"`
}

type NewPet struct {
	Name     string `json:"name"`
	PersonID string `json:"person_id"`
}

func (n NewPet) ToPet() Pet {
	return Pet{
		ID:       uuid.NewString(),
		Name:     n.Name,
		PersonID: n.PersonID,
	}
}

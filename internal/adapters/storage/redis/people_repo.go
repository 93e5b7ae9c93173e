package redis

import (
	"context"
	"math"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"people-directory/internal/domain/people"
	"people-directory/internal/ports/storage"
)

type PeopleRepo struct {
	rdb  goredis.UniversalClient
	keys keys
}

func NewPeopleRepo(rdb goredis.UniversalClient, prefix string) *PeopleRepo {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &PeopleRepo{rdb: rdb, keys: keys{prefix: prefix}}
}

// GetPeople pagina sobre el zset; con score 0 el rango sale ordenado por id.
func (r *PeopleRepo) GetPeople(ctx context.Context, limit *int, offset int) ([]people.Person, error) {
	const op = "redis.GetPeople"

	start := int64(offset)
	stop := int64(-1)
	// un limit enorme desborda start+limit; en ese caso es "hasta el final"
	if limit != nil && int64(*limit) <= math.MaxInt64-start {
		stop = start + int64(*limit) - 1
	}

	ids, err := r.rdb.ZRange(ctx, r.keys.index(), start, stop).Result()
	if err != nil {
		return nil, storage.Failure(op, err)
	}
	if len(ids) == 0 {
		return []people.Person{}, nil
	}

	cmds := make([]*goredis.MapStringStringCmd, len(ids))
	_, err = r.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.keys.person(id))
		}
		return nil
	})
	if err != nil {
		return nil, storage.Failure(op, err)
	}

	out := make([]people.Person, 0, len(ids))
	for _, cmd := range cmds {
		h := cmd.Val()
		if len(h) == 0 {
			// borrado entre ZRANGE y HGETALL
			continue
		}
		out = append(out, personFromHash(h))
	}
	return out, nil
}

func (r *PeopleRepo) GetPerson(ctx context.Context, id string) (people.Person, error) {
	h, err := r.rdb.HGetAll(ctx, r.keys.person(id)).Result()
	if err != nil {
		return people.Person{}, storage.Failure("redis.GetPerson", err)
	}
	if len(h) == 0 {
		return people.Person{}, storage.NotFound("redis.GetPerson")
	}
	return personFromHash(h), nil
}

func (r *PeopleRepo) AddPerson(ctx context.Context, p people.Person) (people.Person, error) {
	const op = "redis.AddPerson"

	n, err := addPersonScript.Run(ctx, r.rdb,
		[]string{r.keys.person(p.ID), r.keys.index()},
		p.ID, p.FirstName, p.LastName,
	).Int()
	if err != nil {
		return people.Person{}, storage.Failure(op, err)
	}
	if n == 0 {
		return people.Person{}, storage.Duplicate(op, errors.Errorf("person %s already exists", p.ID))
	}
	return p, nil
}

func (r *PeopleRepo) UpdatePerson(ctx context.Context, p people.Person) (people.Person, error) {
	const op = "redis.UpdatePerson"

	n, err := updatePersonScript.Run(ctx, r.rdb,
		[]string{r.keys.person(p.ID)},
		p.FirstName, p.LastName,
	).Int()
	if err != nil {
		return people.Person{}, storage.Failure(op, err)
	}
	if n == 0 {
		return people.Person{}, storage.NotFound(op)
	}
	return p, nil
}

func (r *PeopleRepo) DeletePerson(ctx context.Context, id string) (bool, error) {
	const op = "redis.DeletePerson"

	n, err := deletePersonScript.Run(ctx, r.rdb,
		[]string{r.keys.person(id), r.keys.index(), r.keys.petsOf(id)},
		id, r.keys.petPrefix(),
	).Int()
	if err != nil {
		return false, storage.Failure(op, err)
	}
	if n == 0 {
		return false, storage.NotFound(op)
	}
	return true, nil
}

func (r *PeopleRepo) AddPet(ctx context.Context, p people.Pet) (people.Pet, error) {
	const op = "redis.AddPet"

	n, err := addPetScript.Run(ctx, r.rdb,
		[]string{r.keys.person(p.PersonID), r.keys.pet(p.ID), r.keys.petsOf(p.PersonID)},
		p.ID, p.Name, p.PersonID,
	).Int()
	if err != nil {
		return people.Pet{}, storage.Failure(op, err)
	}
	switch n {
	case -1:
		return people.Pet{}, storage.NotFound(op)
	case 0:
		return people.Pet{}, storage.Duplicate(op, errors.Errorf("pet %s already exists", p.ID))
	}
	return p, nil
}

func personFromHash(h map[string]string) people.Person {
	return people.Person{
		ID:        h["id"],
		FirstName: h["first_name"],
		LastName:  h["last_name"],
	}
}

var _ people.Storer = (*PeopleRepo)(nil)

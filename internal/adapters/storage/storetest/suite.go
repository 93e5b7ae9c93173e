// Package storetest corre el mismo contrato contra cada backend de storage.
package storetest

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-directory/internal/domain/accounts"
	"people-directory/internal/domain/people"
	"people-directory/internal/ports/storage"
)

// PeopleFactory devuelve un Storer vacío por subtest.
type PeopleFactory func(t *testing.T) people.Storer

type AccountsFactory func(t *testing.T) accounts.Storer

func TestPeopleStorer(t *testing.T, newStore PeopleFactory) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		s := newStore(t)
		p := people.Person{ID: "p-1", FirstName: "Frodo", LastName: "Baggins"}

		saved, err := s.AddPerson(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, p, saved)

		got, err := s.GetPerson(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("get missing is not found", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetPerson(ctx, "missing-id")
		require.Error(t, err)
		assert.True(t, storage.IsNotFound(err), "%+v", err)
	})

	t.Run("add never overwrites", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddPerson(ctx, people.Person{ID: "p-1", FirstName: "Frodo", LastName: "Baggins"})
		require.NoError(t, err)

		_, err = s.AddPerson(ctx, people.Person{ID: "p-1", FirstName: "Bilbo", LastName: "Baggins"})
		require.Error(t, err)
		assert.True(t, storage.IsDuplicate(err), "%+v", err)

		got, err := s.GetPerson(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Frodo", got.FirstName)
	})

	t.Run("pagination over id order", func(t *testing.T) {
		s := newStore(t)
		for i := 4; i >= 0; i-- {
			_, err := s.AddPerson(ctx, people.Person{ID: fmt.Sprintf("p-%d", i), FirstName: "f", LastName: "l"})
			require.NoError(t, err)
		}

		all, err := s.GetPeople(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		two := 2
		page, err := s.GetPeople(ctx, &two, 1)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "p-1", page[0].ID)
		assert.Equal(t, "p-2", page[1].ID)

		rest, err := s.GetPeople(ctx, nil, 3)
		require.NoError(t, err)
		assert.Len(t, rest, 2)

		empty, err := s.GetPeople(ctx, &two, 10)
		require.NoError(t, err)
		assert.Empty(t, empty)

		huge := math.MaxInt
		tail, err := s.GetPeople(ctx, &huge, 1)
		require.NoError(t, err)
		require.Len(t, tail, 4)
		assert.Equal(t, "p-1", tail[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddPerson(ctx, people.Person{ID: "p-1", FirstName: "Frodo", LastName: "Baggins"})
		require.NoError(t, err)

		updated, err := s.UpdatePerson(ctx, people.Person{ID: "p-1", FirstName: "Frodo", LastName: "Underhill"})
		require.NoError(t, err)
		assert.Equal(t, "Underhill", updated.LastName)

		got, err := s.GetPerson(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Underhill", got.LastName)

		_, err = s.UpdatePerson(ctx, people.Person{ID: "missing-id", FirstName: "x", LastName: "y"})
		assert.True(t, storage.IsNotFound(err), "%+v", err)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddPerson(ctx, people.Person{ID: "p-1", FirstName: "Frodo", LastName: "Baggins"})
		require.NoError(t, err)
		_, err = s.AddPet(ctx, people.Pet{ID: "pet-1", Name: "Bill", PersonID: "p-1"})
		require.NoError(t, err)

		ok, err := s.DeletePerson(ctx, "p-1")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = s.GetPerson(ctx, "p-1")
		assert.True(t, storage.IsNotFound(err), "%+v", err)

		ok, err = s.DeletePerson(ctx, "missing-id")
		assert.False(t, ok)
		assert.True(t, storage.IsNotFound(err), "%+v", err)
	})

	t.Run("add pet requires owner", func(t *testing.T) {
		s := newStore(t)

		_, err := s.AddPet(ctx, people.Pet{ID: "pet-1", Name: "Bill", PersonID: "missing-id"})
		require.Error(t, err)
		assert.True(t, storage.IsNotFound(err), "%+v", err)

		_, err = s.AddPerson(ctx, people.Person{ID: "p-1", FirstName: "Sam", LastName: "Gamgee"})
		require.NoError(t, err)

		pet, err := s.AddPet(ctx, people.Pet{ID: "pet-1", Name: "Bill", PersonID: "p-1"})
		require.NoError(t, err)
		assert.Equal(t, "p-1", pet.PersonID)

		_, err = s.AddPet(ctx, people.Pet{ID: "pet-1", Name: "Bill", PersonID: "p-1"})
		assert.True(t, storage.IsDuplicate(err), "%+v", err)
	})

	t.Run("concurrent writers", func(t *testing.T) {
		s := newStore(t)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.AddPerson(ctx, people.Person{ID: fmt.Sprintf("c-%02d", i), FirstName: "f", LastName: "l"})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		all, err := s.GetPeople(ctx, nil, 0)
		require.NoError(t, err)
		assert.Len(t, all, 20)
	})
}

func TestAccountsStorer(t *testing.T, newStore AccountsFactory) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		s := newStore(t)

		id, err := s.AddAccount(ctx, accounts.Account{ID: "acc-1", Email: "a@b.com", Password: "digest"})
		require.NoError(t, err)
		assert.Equal(t, "acc-1", id)

		got, err := s.GetAccount(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, accounts.Account{ID: "acc-1", Email: "a@b.com", Password: "digest"}, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddAccount(ctx, accounts.Account{ID: "acc-1", Email: "a@b.com", Password: "digest"})
		require.NoError(t, err)

		_, err = s.AddAccount(ctx, accounts.Account{ID: "acc-2", Email: "a@b.com", Password: "other"})
		require.Error(t, err)
		assert.True(t, storage.IsDuplicate(err), "%+v", err)
	})

	t.Run("missing account", func(t *testing.T) {
		s := newStore(t)

		_, err := s.GetAccount(ctx, "nobody@b.com")
		require.Error(t, err)
		assert.True(t, storage.IsNotFound(err), "%+v", err)
	})
}

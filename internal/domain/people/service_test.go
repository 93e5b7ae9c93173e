package people_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"people-directory/internal/domain/people"
	"people-directory/internal/domain/people/mocks"
	"people-directory/internal/platform/apperr"
	modmocks "people-directory/internal/ports/moderation/mocks"
	"people-directory/internal/ports/storage"
)

type fixture struct {
	store  *mocks.MockStorer
	censor *modmocks.MockCensorious
	svc    *people.Service
}

func newFixture(t *testing.T, opts people.Options) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		store:  mocks.NewMockStorer(ctrl),
		censor: modmocks.NewMockCensorious(ctrl),
	}
	f.svc = people.NewService(f.store, f.censor, opts)
	return f
}

func moderationErr() error {
	return apperr.Wrap(apperr.KindModeration, "apilayer.Censor", errors.New("status=503"))
}

func TestAddPerson_StoresModeratedNames(t *testing.T) {
	f := newFixture(t, people.Options{})

	f.censor.EXPECT().CensorWithBackoff(gomock.Any(), "Darn").Return("****", nil)
	f.censor.EXPECT().CensorWithBackoff(gomock.Any(), "Baggins").Return("Baggins", nil)
	f.store.EXPECT().AddPerson(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p people.Person) (people.Person, error) {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "****", p.FirstName)
			assert.Equal(t, "Baggins", p.LastName)
			return p, nil
		})

	got, err := f.svc.AddPerson(context.Background(), people.NewPerson{FirstName: "Darn", LastName: "Baggins"})
	require.NoError(t, err)
	assert.Equal(t, "****", got.FirstName)
	assert.Equal(t, "Baggins", got.LastName)
}

func TestAddPerson_PlainTier(t *testing.T) {
	f := newFixture(t, people.Options{PlainModeration: true})

	f.censor.EXPECT().Censor(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s string) (string, error) { return s, nil }).Times(2)
	f.store.EXPECT().AddPerson(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p people.Person) (people.Person, error) { return p, nil })

	_, err := f.svc.AddPerson(context.Background(), people.NewPerson{FirstName: "Frodo", LastName: "Baggins"})
	require.NoError(t, err)
}

func TestAddPerson_ModerationCallsRunConcurrently(t *testing.T) {
	f := newFixture(t, people.Options{})

	// cada llamada espera a que la otra haya empezado; en serie nunca terminaría
	var arrived sync.WaitGroup
	arrived.Add(2)
	both := make(chan struct{})
	go func() {
		arrived.Wait()
		close(both)
	}()

	f.censor.EXPECT().CensorWithBackoff(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, s string) (string, error) {
			arrived.Done()
			select {
			case <-both:
				return s, nil
			case <-time.After(2 * time.Second):
				return "", errors.New("calls were not concurrent")
			}
		}).Times(2)
	f.store.EXPECT().AddPerson(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p people.Person) (people.Person, error) { return p, nil })

	_, err := f.svc.AddPerson(context.Background(), people.NewPerson{FirstName: "Frodo", LastName: "Baggins"})
	require.NoError(t, err)
}

func TestAddPerson_ModerationFailureNeverWrites(t *testing.T) {
	cases := []struct {
		name      string
		failFirst bool
	}{
		{"first name fails", true},
		{"last name fails", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, people.Options{})

			first := f.censor.EXPECT().CensorWithBackoff(gomock.Any(), "Frodo").AnyTimes()
			last := f.censor.EXPECT().CensorWithBackoff(gomock.Any(), "Baggins").AnyTimes()
			if tc.failFirst {
				first.Return("", moderationErr())
				last.Return("Baggins", nil)
			} else {
				first.Return("Frodo", nil)
				last.Return("", moderationErr())
			}
			// sin EXPECT sobre store: cualquier escritura hace fallar el test

			_, err := f.svc.AddPerson(context.Background(), people.NewPerson{FirstName: "Frodo", LastName: "Baggins"})
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidateBadWords, apperr.KindOf(err))
		})
	}
}

func TestAddPerson_StorageFailureIsCreatePerson(t *testing.T) {
	f := newFixture(t, people.Options{})

	f.censor.EXPECT().CensorWithBackoff(gomock.Any(), gomock.Any()).Return("x", nil).Times(2)
	f.store.EXPECT().AddPerson(gomock.Any(), gomock.Any()).
		Return(people.Person{}, storage.Failure("memory.AddPerson", errors.New("disk full")))

	_, err := f.svc.AddPerson(context.Background(), people.NewPerson{FirstName: "Frodo", LastName: "Baggins"})
	assert.Equal(t, apperr.KindCreatePerson, apperr.KindOf(err))
}

func TestAddPerson_RejectsEmptyNames(t *testing.T) {
	f := newFixture(t, people.Options{})

	_, err := f.svc.AddPerson(context.Background(), people.NewPerson{FirstName: " ", LastName: "Baggins"})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestGetPeople_SortsBackendOutput(t *testing.T) {
	f := newFixture(t, people.Options{})

	limit := 10
	f.store.EXPECT().GetPeople(gomock.Any(), &limit, 0).Return([]people.Person{
		{ID: "2", FirstName: "Sam", LastName: "Gamgee"},
		{ID: "1", FirstName: "Frodo", LastName: "Baggins"},
		{ID: "1", FirstName: "Bilbo", LastName: "Baggins"},
	}, nil)

	got, err := f.svc.GetPeople(context.Background(), people.Pagination{Limit: &limit})
	require.NoError(t, err)
	assert.Equal(t, []people.Person{
		{ID: "1", FirstName: "Bilbo", LastName: "Baggins"},
		{ID: "1", FirstName: "Frodo", LastName: "Baggins"},
		{ID: "2", FirstName: "Sam", LastName: "Gamgee"},
	}, got)
}

func TestGetPeople_StorageFailure(t *testing.T) {
	f := newFixture(t, people.Options{})

	f.store.EXPECT().GetPeople(gomock.Any(), gomock.Nil(), 0).
		Return(nil, storage.Failure("sqldb.GetPeople", errors.New("connection refused")))

	_, err := f.svc.GetPeople(context.Background(), people.Pagination{})
	assert.Equal(t, apperr.KindGetPeople, apperr.KindOf(err))
	assert.True(t, apperr.Is(err, apperr.KindStorage))
}

func TestOperations_TranslateStorageErrors(t *testing.T) {
	notFound := storage.NotFound("test")
	broken := storage.Failure("test", errors.New("boom"))
	person := people.Person{ID: "p-1", FirstName: "Frodo", LastName: "Baggins"}
	pet := people.NewPet{Name: "Bill", PersonID: "p-1"}

	cases := []struct {
		name  string
		setup func(f fixture, err error)
		call  func(svc *people.Service) error
		err   error
		want  apperr.Kind
	}{
		{
			name:  "get person missing",
			setup: func(f fixture, err error) { f.store.EXPECT().GetPerson(gomock.Any(), "p-1").Return(people.Person{}, err) },
			call:  func(svc *people.Service) error { _, err := svc.GetPerson(context.Background(), "p-1"); return err },
			err:   notFound,
			want:  apperr.KindPersonNotFound,
		},
		{
			name:  "get person broken",
			setup: func(f fixture, err error) { f.store.EXPECT().GetPerson(gomock.Any(), "p-1").Return(people.Person{}, err) },
			call:  func(svc *people.Service) error { _, err := svc.GetPerson(context.Background(), "p-1"); return err },
			err:   broken,
			want:  apperr.KindGetPerson,
		},
		{
			name:  "update missing",
			setup: func(f fixture, err error) { f.store.EXPECT().UpdatePerson(gomock.Any(), person).Return(people.Person{}, err) },
			call:  func(svc *people.Service) error { _, err := svc.UpdatePerson(context.Background(), person); return err },
			err:   notFound,
			want:  apperr.KindPersonNotFound,
		},
		{
			name:  "update broken",
			setup: func(f fixture, err error) { f.store.EXPECT().UpdatePerson(gomock.Any(), person).Return(people.Person{}, err) },
			call:  func(svc *people.Service) error { _, err := svc.UpdatePerson(context.Background(), person); return err },
			err:   broken,
			want:  apperr.KindUpdatePerson,
		},
		{
			name:  "delete missing",
			setup: func(f fixture, err error) { f.store.EXPECT().DeletePerson(gomock.Any(), "missing-id").Return(false, err) },
			call:  func(svc *people.Service) error { _, err := svc.DeletePerson(context.Background(), "missing-id"); return err },
			err:   notFound,
			want:  apperr.KindPersonNotFound,
		},
		{
			name:  "delete reports false",
			setup: func(f fixture, _ error) { f.store.EXPECT().DeletePerson(gomock.Any(), "missing-id").Return(false, nil) },
			call:  func(svc *people.Service) error { _, err := svc.DeletePerson(context.Background(), "missing-id"); return err },
			want:  apperr.KindPersonNotFound,
		},
		{
			name:  "delete broken",
			setup: func(f fixture, err error) { f.store.EXPECT().DeletePerson(gomock.Any(), "p-1").Return(false, err) },
			call:  func(svc *people.Service) error { _, err := svc.DeletePerson(context.Background(), "p-1"); return err },
			err:   broken,
			want:  apperr.KindDeletePerson,
		},
		{
			name:  "add pet missing owner",
			setup: func(f fixture, err error) { f.store.EXPECT().AddPet(gomock.Any(), gomock.Any()).Return(people.Pet{}, err) },
			call:  func(svc *people.Service) error { _, err := svc.AddPet(context.Background(), pet); return err },
			err:   notFound,
			want:  apperr.KindPersonNotFound,
		},
		{
			name:  "add pet broken",
			setup: func(f fixture, err error) { f.store.EXPECT().AddPet(gomock.Any(), gomock.Any()).Return(people.Pet{}, err) },
			call:  func(svc *people.Service) error { _, err := svc.AddPet(context.Background(), pet); return err },
			err:   broken,
			want:  apperr.KindAddPet,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, people.Options{})
			tc.setup(f, tc.err)

			err := tc.call(f.svc)
			require.Error(t, err)
			assert.Equal(t, tc.want, apperr.KindOf(err))
		})
	}
}

func TestDeletePerson_OK(t *testing.T) {
	f := newFixture(t, people.Options{})
	f.store.EXPECT().DeletePerson(gomock.Any(), "p-1").Return(true, nil)

	ok, err := f.svc.DeletePerson(context.Background(), "p-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddPet_AssignsIDAndOwner(t *testing.T) {
	f := newFixture(t, people.Options{})
	f.store.EXPECT().AddPet(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p people.Pet) (people.Pet, error) { return p, nil })

	got, err := f.svc.AddPet(context.Background(), people.NewPet{Name: "Bill", PersonID: "p-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "p-1", got.PersonID)
	assert.Equal(t, "Bill", got.Name)
}

func TestUpdatePerson_RequiresFields(t *testing.T) {
	f := newFixture(t, people.Options{})

	_, err := f.svc.UpdatePerson(context.Background(), people.Person{FirstName: "Frodo", LastName: "Baggins"})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

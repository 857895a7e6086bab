package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetsoft/internal/platform/validation"
	"vetsoft/internal/ports/storage"

	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID    map[string]Pet
	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return storage.ErrNotFound
	}
	r.byID[p.ID] = p
	r.updates++
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, storage.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// hoy fijo: 2025-05-20 a última hora, para que "mañana" no dependa de la hora.
var today = time.Date(2025, 5, 20, 23, 30, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return today }
	return svc, repo
}

func saveLuna(t *testing.T, svc *Service) Pet {
	t.Helper()

	p, err := svc.Save(context.Background(), validation.Fields{
		"name":     "Luna",
		"breed":    "Gato",
		"birthday": "2020-03-01",
	})
	require.NoError(t, err)
	return p
}

func TestBreeds(t *testing.T) {
	require.Equal(t, []Breed{"Perro", "Gato", "Conejo", "Pájaro", "Pez", "Otro"}, Breeds())
	require.True(t, IsBreed("Pájaro"))
	require.False(t, IsBreed("Pajaro"))
	require.False(t, IsBreed(""))

	// la lista devuelta es una copia
	b := Breeds()
	b[0] = "Dragón"
	require.Equal(t, BreedPerro, Breeds()[0])
}

func TestValidate_EmptyInput(t *testing.T) {
	require.Equal(t, validation.Errors{
		"name":     msgNameRequired,
		"breed":    msgBreedRequired,
		"birthday": msgBirthdayRequired,
	}, Validate(validation.Fields{}, today))
}

func TestValidate_Birthday(t *testing.T) {
	cases := []struct {
		name     string
		birthday string
		want     string
	}{
		{name: "today is valid", birthday: "2025-05-20", want: ""},
		{name: "past", birthday: "2019-12-31", want: ""},
		{name: "tomorrow", birthday: "2025-05-21", want: msgBirthdayFuture},
		{name: "impossible date", birthday: "2022-13-32", want: msgBirthdayFormat},
		{name: "other layout", birthday: "20/05/2025", want: msgBirthdayFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(validation.Fields{"name": "Luna", "breed": "Gato", "birthday": tc.birthday}, today)
			require.Equal(t, tc.want, errs["birthday"])
		})
	}
}

func TestValidate_BreedOutsideList(t *testing.T) {
	errs := Validate(validation.Fields{"name": "Luna", "breed": "Dragón", "birthday": "2020-01-01"}, today)
	require.Equal(t, validation.Errors{"breed": msgBreedInvalid}, errs)
}

func TestService_Save(t *testing.T) {
	svc, repo := newTestService()

	p := saveLuna(t, svc)

	stored := repo.byID[p.ID]
	require.Equal(t, "Luna", stored.Name)
	require.Equal(t, BreedGato, stored.Breed)
	require.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), stored.Birthday)

	_, err := svc.Save(context.Background(), validation.Fields{"name": "Max", "breed": "Perro", "birthday": "2025-05-21"})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, validation.Errors{"birthday": msgBirthdayFuture}, verrs)
	require.Len(t, repo.byID, 1)
}

func TestService_Update_NothingRelevantIsNoop(t *testing.T) {
	svc, repo := newTestService()
	p := saveLuna(t, svc)

	got, err := svc.Update(context.Background(), p.ID, validation.Fields{"owner": "Ana"})
	require.NoError(t, err)
	require.Equal(t, p, got)
	require.Zero(t, repo.updates)
}

func TestService_Update_BadBirthdayPersistsNothing(t *testing.T) {
	svc, repo := newTestService()
	p := saveLuna(t, svc)

	_, err := svc.Update(context.Background(), p.ID, validation.Fields{"name": "Lunita", "birthday": "2022-13-32"})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, msgBirthdayFormatUpdate, verrs["birthday"])

	_, err = svc.Update(context.Background(), p.ID, validation.Fields{"name": "Lunita", "birthday": "2030-01-01"})
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, msgBirthdayFuture, verrs["birthday"])

	require.Equal(t, p, repo.byID[p.ID])
	require.Zero(t, repo.updates)
}

func TestService_Update_InvalidBreedKeepsPersisted(t *testing.T) {
	svc, repo := newTestService()
	p := saveLuna(t, svc)

	got, err := svc.Update(context.Background(), p.ID, validation.Fields{"name": "Lunita", "breed": "Dragón"})
	require.NoError(t, err)
	require.Equal(t, "Lunita", got.Name)
	require.Equal(t, BreedGato, got.Breed)
	require.Equal(t, got, repo.byID[p.ID])
}

func TestService_Update_Birthday(t *testing.T) {
	svc, repo := newTestService()
	p := saveLuna(t, svc)

	_, err := svc.Update(context.Background(), p.ID, validation.Fields{"birthday": "2025-05-20", "breed": "Conejo"})
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), repo.byID[p.ID].Birthday)
	require.Equal(t, BreedConejo, repo.byID[p.ID].Breed)
}

func TestService_Update_UnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", validation.Fields{"name": "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

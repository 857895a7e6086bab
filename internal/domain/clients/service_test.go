package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"vetsoft/internal/platform/validation"
	"vetsoft/internal/ports/storage"

	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Client
	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Client{}}
}

func (r *testRepo) Create(ctx context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return storage.ErrNotFound
	}
	r.byID[c.ID] = c
	r.updates++
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, storage.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]Client, error) {
	out := make([]Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
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

// -------------------------
// Tests
// -------------------------

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func saveAna(t *testing.T, svc *Service) Client {
	t.Helper()

	c, err := svc.Save(context.Background(), validation.Fields{
		"name":  "Ana",
		"phone": "12345",
		"email": "ana@vetsoft.com",
	})
	require.NoError(t, err)
	return c
}

func TestValidate_EmptyInput_OneErrorPerRequiredField(t *testing.T) {
	errs := Validate(validation.Fields{})
	require.Equal(t, validation.Errors{
		"name":  msgNameRequired,
		"phone": msgPhoneRequired,
		"email": msgEmailRequired,
	}, errs)
}

func TestValidate_NameWithDigits_OnlyDigitRule(t *testing.T) {
	errs := Validate(validation.Fields{"name": "A1"})
	require.Equal(t, msgNameDigits, errs["name"])
}

func TestValidate_PhoneAndEmailFormat(t *testing.T) {
	errs := Validate(validation.Fields{
		"name":  "Juan Sebastian Veron",
		"phone": "54221asd",
		"email": "brujita75@hotmail.com",
	})
	require.Equal(t, validation.Errors{
		"phone": msgPhoneDigits,
		"email": msgEmailDomain,
	}, errs)
}

func TestService_Save_PersistsAllFields(t *testing.T) {
	svc, repo := newTestService()

	c := saveAna(t, svc)

	require.NotEmpty(t, c.ID)
	stored := repo.byID[c.ID]
	require.Equal(t, "Ana", stored.Name)
	require.Equal(t, "12345", stored.Phone)
	require.Equal(t, "ana@vetsoft.com", stored.Email)
	require.Equal(t, "", stored.Address)
}

func TestService_Save_InvalidDoesNotPersist(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Save(context.Background(), validation.Fields{})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)
	require.Empty(t, repo.byID)
}

func TestService_Update_PhoneWithLettersKeepsPersisted(t *testing.T) {
	svc, repo := newTestService()
	c := saveAna(t, svc)

	got, err := svc.Update(context.Background(), c.ID, validation.Fields{"phone": "12a"})
	require.NoError(t, err)
	require.Equal(t, "12345", got.Phone)
	require.Equal(t, "12345", repo.byID[c.ID].Phone)
}

func TestService_Update_ValidPhone(t *testing.T) {
	svc, repo := newTestService()
	c := saveAna(t, svc)

	_, err := svc.Update(context.Background(), c.ID, validation.Fields{"phone": "54221555233"})
	require.NoError(t, err)
	require.Equal(t, "54221555233", repo.byID[c.ID].Phone)
}

func TestService_Update_InvalidEmailRejectsWholeUpdate(t *testing.T) {
	svc, repo := newTestService()
	c := saveAna(t, svc)

	got, err := svc.Update(context.Background(), c.ID, validation.Fields{
		"name":  "Ana Maria",
		"email": "ana@hotmail.com",
	})

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, validation.Errors{"email": msgEmailDomain}, verrs)
	require.Equal(t, "ana@vetsoft.com", got.Email)
	require.Equal(t, c, repo.byID[c.ID])
	require.Zero(t, repo.updates)
}

func TestService_Update_EmptyFieldsIsNoop(t *testing.T) {
	svc, repo := newTestService()
	c := saveAna(t, svc)

	for _, fields := range []validation.Fields{
		{},
		{"name": "", "phone": "", "email": "", "address": ""},
	} {
		got, err := svc.Update(context.Background(), c.ID, fields)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	require.Equal(t, c, repo.byID[c.ID])
	require.Zero(t, repo.updates)
}

func TestService_Update_NameIsNotRevalidated(t *testing.T) {
	svc, repo := newTestService()
	c := saveAna(t, svc)

	_, err := svc.Update(context.Background(), c.ID, validation.Fields{"name": "Ana 2", "address": "13 y 44"})
	require.NoError(t, err)
	require.Equal(t, "Ana 2", repo.byID[c.ID].Name)
	require.Equal(t, "13 y 44", repo.byID[c.ID].Address)
}

func TestService_Update_UnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), "missing", validation.Fields{"name": "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()
	c := saveAna(t, svc)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	require.Empty(t, repo.byID)
	require.ErrorIs(t, svc.Delete(context.Background(), c.ID), ErrNotFound)
}

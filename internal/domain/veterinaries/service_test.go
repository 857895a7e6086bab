package veterinaries_test

import (
	"context"
	"errors"
	"testing"

	"vetsoft/internal/adapters/storage/memory"
	"vetsoft/internal/domain/veterinaries"
	"vetsoft/internal/platform/validation"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.Equal(t, validation.Errors{
		"name":  "Por favor ingrese un nombre",
		"phone": "Por favor ingrese un teléfono",
		"email": "Por favor ingrese un email",
	}, veterinaries.Validate(validation.Fields{}))

	require.Equal(t, validation.Errors{
		"email": "Por favor ingrese un email valido",
	}, veterinaries.Validate(validation.Fields{"name": "Dra. Paz", "phone": "221 555", "email": "paz"}))
}

func TestService_SaveUpdateDelete(t *testing.T) {
	repo := memory.NewVeterinaryRepo()
	svc := veterinaries.NewService(repo)
	ctx := context.Background()

	_, err := svc.Save(ctx, validation.Fields{})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	v, err := svc.Save(ctx, validation.Fields{"name": "Dra. Paz", "phone": "2215556677", "email": "paz@vet.com"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, v.ID, validation.Fields{"phone": "0800", "name": ""})
	require.NoError(t, err)
	require.Equal(t, "0800", got.Phone)
	require.Equal(t, "Dra. Paz", got.Name)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Delete(ctx, v.ID))
	require.ErrorIs(t, svc.Delete(ctx, v.ID), veterinaries.ErrNotFound)
}

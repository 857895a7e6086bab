package providers_test

import (
	"context"
	"errors"
	"testing"

	"vetsoft/internal/adapters/storage/memory"
	"vetsoft/internal/domain/providers"
	"vetsoft/internal/platform/validation"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.Equal(t, validation.Errors{
		"name":    "Por favor ingrese un nombre",
		"email":   "Por favor ingrese un email valido",
		"address": "Por favor ingrese una direccion",
	}, providers.Validate(validation.Fields{}))

	require.Equal(t, validation.Errors{
		"address": "Por favor ingrese una direccion",
	}, providers.Validate(validation.Fields{"name": "Farmacity S.A", "email": "moltito@hotmail.com", "address": ""}))

	require.Equal(t, validation.Errors{
		"email": "Por favor ingrese un email valido",
	}, providers.Validate(validation.Fields{"name": "Farmacity S.A", "email": "moltito", "address": "Rio negro 2265"}))
}

func TestService_SaveAndUpdate(t *testing.T) {
	repo := memory.NewProviderRepo()
	svc := providers.NewService(repo)
	ctx := context.Background()

	_, err := svc.Save(ctx, validation.Fields{"name": "Farmacity S.A"})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.ElementsMatch(t, []string{"address", "email"}, verrs.Fields())

	p, err := svc.Save(ctx, validation.Fields{
		"name":    "Farmacity S.A",
		"email":   "moltito@hotmail.com",
		"address": "Rio negro 2265",
	})
	require.NoError(t, err)

	// update no revalida: email sin "@" se acepta, los vacíos se ignoran
	got, err := svc.Update(ctx, p.ID, validation.Fields{"email": "sin-arroba", "address": ""})
	require.NoError(t, err)
	require.Equal(t, "sin-arroba", got.Email)
	require.Equal(t, "Rio negro 2265", got.Address)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, got, stored)

	same, err := svc.Update(ctx, p.ID, validation.Fields{})
	require.NoError(t, err)
	require.Equal(t, stored, same)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, providers.ErrNotFound)
}

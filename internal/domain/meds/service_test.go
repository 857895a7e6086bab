package meds_test

import (
	"context"
	"errors"
	"testing"

	"vetsoft/internal/adapters/storage/memory"
	"vetsoft/internal/domain/meds"
	"vetsoft/internal/platform/validation"

	"github.com/stretchr/testify/require"
)

func TestValidate_Dose(t *testing.T) {
	cases := []struct {
		dose string
		want string
	}{
		{dose: "10.0", want: ""},
		{dose: "10", want: ""},
		{dose: "1", want: ""},
		{dose: " 5.5 ", want: ""},
		{dose: "10.01", want: "La dosis debe estar entre 1 y 10"},
		{dose: "0.99", want: "La dosis debe estar entre 1 y 10"},
		{dose: "NaN", want: "La dosis debe estar entre 1 y 10"},
		{dose: "1e400", want: "La dosis debe estar entre 1 y 10"},
		{dose: "abc", want: "La dosis debe ser un número decimal"},
		{dose: "0x1p1", want: "La dosis debe ser un número decimal"},
		{dose: "", want: "Por favor ingrese una dosis"},
	}

	for _, tc := range cases {
		t.Run(tc.dose, func(t *testing.T) {
			errs := meds.Validate(validation.Fields{"name": "Paracetamol", "desc": "Analgésico", "dose": tc.dose})
			require.Equal(t, tc.want, errs["dose"])
			if tc.want == "" {
				require.Empty(t, errs)
			}
		})
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	require.Equal(t, validation.Errors{
		"name": "Por favor ingrese un nombre",
		"desc": "Por favor ingrese una descripcion",
		"dose": "Por favor ingrese una dosis",
	}, meds.Validate(nil))
}

func TestService_Update_RequiresFullForm(t *testing.T) {
	repo := memory.NewMedRepo()
	svc := meds.NewService(repo)
	ctx := context.Background()

	m, err := svc.Save(ctx, validation.Fields{"name": "Paracetamol", "desc": "Analgésico", "dose": "3"})
	require.NoError(t, err)
	require.Equal(t, 3.0, m.Dose)

	// solo la dosis: bloquea el update entero
	_, err = svc.Update(ctx, m.ID, validation.Fields{"dose": "5"})
	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	require.ElementsMatch(t, []string{"desc", "name"}, verrs.Fields())

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, 3.0, stored.Dose)

	// fuera de rango
	_, err = svc.Update(ctx, m.ID, validation.Fields{"name": "Paracetamol", "desc": "Analgésico", "dose": "11"})
	require.Error(t, err)

	got, err := svc.Update(ctx, m.ID, validation.Fields{"name": "Paracetamol", "desc": "Antifebril", "dose": "5"})
	require.NoError(t, err)
	require.Equal(t, "Antifebril", got.Desc)
	require.Equal(t, 5.0, got.Dose)

	stored, err = repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, got, stored)
}

func TestService_Update_EmptyNeverChangesPersisted(t *testing.T) {
	repo := memory.NewMedRepo()
	svc := meds.NewService(repo)
	ctx := context.Background()

	m, err := svc.Save(ctx, validation.Fields{"name": "Amoxicilina", "desc": "Antibiótico", "dose": "7.5"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, m.ID, validation.Fields{"name": "", "desc": "", "dose": ""})
	require.Error(t, err)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m, stored)
}

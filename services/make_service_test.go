package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carcatalog-api/repositories"
)

func TestFindByNameOrCreateReturnsSameRow(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.makes.FindByNameOrCreate("Toyota")
	require.NoError(t, err)

	second, err := env.makes.FindByNameOrCreate("Toyota")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	_, total, err := env.makes.Filter("", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCreateMakeRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.makes.Create("Toyota")
	require.NoError(t, err)

	_, err = env.makes.Create("Toyota")
	require.ErrorIs(t, err, repositories.ErrDuplicateName)

	// The existing row is untouched.
	unchanged, err := env.makes.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", unchanged.Name)
}

func TestCreateMakeRejectsEmptyName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.makes.Create("  ")
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)
}

func TestUpdateMake(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.makes.Create("Toyotta")
	require.NoError(t, err)

	updated, err := env.makes.Update(created.ID, "Toyota")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateMakeNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.makes.Update(9999, "Toyota")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteMakeNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.makes.Delete(9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFilterMakesByExactName(t *testing.T) {
	env := newTestEnv(t)

	for _, name := range []string{"Toyota", "Toy", "Honda"} {
		_, err := env.makes.Create(name)
		require.NoError(t, err)
	}

	makes, total, err := env.makes.Filter("Toyota", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, makes, 1)
	assert.Equal(t, "Toyota", makes[0].Name)

	// Empty filter returns everything.
	_, total, err = env.makes.Filter("", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

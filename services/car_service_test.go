package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carcatalog-api/repositories"
)

func TestCreateAndFindCarRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	created := env.createCar(t, "LADA", "KALINA", "Sedan", 2026)

	found, err := env.cars.FindCarByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "LADA", found.Make)
	assert.Equal(t, "KALINA", found.Model)
	assert.Equal(t, "Sedan", found.Category)
	assert.Equal(t, 2026, found.Year)
	assert.Equal(t, created.ObjectID, found.ObjectID)
}

func TestCreateCarReusesExistingNames(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)
	env.createCar(t, "Toyota", "Camry", "Sedan", 2020)

	_, total, err := env.makes.Filter("", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = env.categories.Filter("", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = env.modelsSvc.Filter("", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestCreateCarRequiresAllFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cars.CreateCar(CreateCarInput{Make: "Toyota", Model: "Corolla", Category: "Sedan"})
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)

	_, err = env.cars.CreateCar(CreateCarInput{Model: "Corolla", Category: "Sedan", Year: 2019})
	assert.ErrorIs(t, err, repositories.ErrInvalidArgument)
}

func TestFindCarByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cars.FindCarByID(404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateCarRenamesLinkedEntitiesInPlace(t *testing.T) {
	env := newTestEnv(t)

	created := env.createCar(t, "Toyotta", "Corola", "Sedann", 2018)
	makeBefore, err := env.makes.FindByNameOrCreate("Toyotta")
	require.NoError(t, err)

	updated, err := env.cars.UpdateCar(created.ID, UpdateCarInput{
		Make:     "Toyota",
		Model:    "Corolla",
		Category: "Sedan",
		Year:     2019,
	})
	require.NoError(t, err)

	assert.Equal(t, "Toyota", updated.Make)
	assert.Equal(t, "Corolla", updated.Model)
	assert.Equal(t, "Sedan", updated.Category)
	assert.Equal(t, 2019, updated.Year)
	assert.Equal(t, created.ObjectID, updated.ObjectID, "objectId is immutable")

	// The linked make row was renamed, not replaced.
	makeAfter, err := env.makes.FindByID(makeBefore.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", makeAfter.Name)

	_, total, err := env.makes.Filter("", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUpdateCarNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cars.UpdateCar(404, UpdateCarInput{
		Make: "Toyota", Model: "Corolla", Category: "Sedan", Year: 2019,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteCar(t *testing.T) {
	env := newTestEnv(t)

	created := env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)

	require.NoError(t, env.cars.DeleteCar(created.ID))

	_, err := env.cars.FindCarByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, env.cars.DeleteCar(created.ID), repositories.ErrNotFound)
}

func TestFilterCarsUnfilteredPagination(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 25; i++ {
		env.createCar(t, "Toyota", fmt.Sprintf("Model-%02d", i), "Sedan", 2000+i)
	}

	page0, total, err := env.cars.FilterCars("", "", "", 0, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, page0, 10)

	// Ordered by id ascending, so page 0 starts at the first insert.
	assert.Equal(t, "Model-00", page0[0].Model)
	assert.Equal(t, "Model-09", page0[9].Model)

	page2, total, err := env.cars.FilterCars("", "", "", 0, 2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, page2, 5)
	assert.Equal(t, "Model-20", page2[0].Model)

	// Page beyond the data: empty content, same total, no error.
	page3, total, err := env.cars.FilterCars("", "", "", 0, 3, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Empty(t, page3)
}

func TestFilterCarsByMakeExactMatch(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)
	env.createCar(t, "Toy", "Blocks", "Misc", 2020)
	env.createCar(t, "toyota", "Corolla", "Sedan", 2019)

	items, total, err := env.cars.FilterCars("Toyota", "", "", 0, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Toyota", items[0].Make)
}

func TestFilterCarsConjunction(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)
	env.createCar(t, "Toyota", "Corolla", "Sedan", 2020)
	env.createCar(t, "Toyota", "Camry", "Sedan", 2019)
	env.createCar(t, "Honda", "Civic", "Sedan", 2019)

	items, total, err := env.cars.FilterCars("Toyota", "Corolla", "Sedan", 2019, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, 2019, items[0].Year)
	assert.Equal(t, "Corolla", items[0].Model)
}

func TestFilterCarsListItemProjection(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)

	items, _, err := env.cars.FilterCars("", "", "", 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, CarListItemDTO{
		Make:     "Toyota",
		Model:    "Corolla",
		Category: "Sedan",
		Year:     2019,
	}, items[0])
}

func TestDeleteMakeAndAssociations(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)
	env.createCar(t, "Toyota", "Camry", "Sedan", 2020)
	kept := env.createCar(t, "Honda", "Civic", "Sedan", 2019)

	toyota, err := env.makes.FindByNameOrCreate("Toyota")
	require.NoError(t, err)

	require.NoError(t, env.cars.DeleteMakeAndAssociations(toyota.ID))

	_, err = env.makes.FindByID(toyota.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, total, err := env.cars.FilterCars("", "", "", 0, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, err = env.cars.FindCarByID(kept.ID)
	assert.NoError(t, err)
}

func TestDeleteMakeWithoutCars(t *testing.T) {
	env := newTestEnv(t)

	orphan, err := env.makes.Create("Saab")
	require.NoError(t, err)
	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)

	require.NoError(t, env.cars.DeleteMakeAndAssociations(orphan.ID))

	_, total, err := env.cars.FilterCars("", "", "", 0, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total, "unrelated cars survive")
}

func TestDeleteMakeAndAssociationsNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.cars.DeleteMakeAndAssociations(404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteModelAndAssociations(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)
	env.createCar(t, "Toyota", "Camry", "Sedan", 2020)

	corolla, err := env.modelsSvc.FindByNameOrCreate("Corolla")
	require.NoError(t, err)

	require.NoError(t, env.cars.DeleteModelAndAssociations(corolla.ID))

	_, total, err := env.cars.FilterCars("", "", "", 0, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, err = env.modelsSvc.FindByID(corolla.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteCategoryAndAssociations(t *testing.T) {
	env := newTestEnv(t)

	env.createCar(t, "Toyota", "Corolla", "Sedan", 2019)
	env.createCar(t, "Ford", "Mustang", "Coupe", 2018)

	sedan, err := env.categories.FindByNameOrCreate("Sedan")
	require.NoError(t, err)

	require.NoError(t, env.cars.DeleteCategoryAndAssociations(sedan.ID))

	items, total, err := env.cars.FilterCars("", "", "", 0, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Coupe", items[0].Category)
}

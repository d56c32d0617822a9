package services

import (
	"testing"

	"restaurant-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_DeleteUserProtectsAdmin(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, "admin")
	root := createUser(t, db, "admin")

	assert.ErrorIs(t, admin.DeleteUser(ctx, root.ID), ErrProtectedAccount)

	var count int64
	db.Model(&models.User{}).Where("id = ?", root.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminService_DeleteUserCascadesCart(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, "admin")
	carts := NewCartService(db)
	keep := createUser(t, db, "keep")
	gone := createUser(t, db, "gone")
	dish := createDish(t, db, "Borscht", "Soups", 6.5)
	require.NoError(t, carts.Add(ctx, keep.ID, dish.ID, 1))
	require.NoError(t, carts.Add(ctx, gone.ID, dish.ID, 2))

	require.NoError(t, admin.DeleteUser(ctx, gone.ID))
	assert.ErrorIs(t, admin.DeleteUser(ctx, gone.ID), ErrNotFound)

	users, err := admin.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "keep", users[0].Username)

	orders, err := admin.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, keep.ID, orders[0].UserID)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, "keep", orders[0].User.Username)
	assert.Equal(t, "Borscht", orders[0].Dish.Name)
}

func TestAdminService_DeleteDishCascadesCart(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, "admin")
	user := createUser(t, db, "u")
	dish := createDish(t, db, "Kvass", "Drinks", 1.5)
	other := createDish(t, db, "Tea", "Drinks", 1)
	carts := NewCartService(db)
	require.NoError(t, carts.Add(ctx, user.ID, dish.ID, 1))
	require.NoError(t, carts.Add(ctx, user.ID, other.ID, 1))

	deleted, err := admin.DeleteDish(ctx, dish.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kvass", deleted.Name)

	_, err = admin.DeleteDish(ctx, dish.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := carts.Cart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, other.ID, cart.Items[0].DishID)
}

func TestAdminService_DeleteOrder(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, "admin")
	user := createUser(t, db, "u")
	dish := createDish(t, db, "Tea", "Drinks", 1)
	require.NoError(t, NewCartService(db).Add(ctx, user.ID, dish.ID, 1))

	orders, err := admin.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.NoError(t, admin.DeleteOrder(ctx, orders[0].ID))
	assert.ErrorIs(t, admin.DeleteOrder(ctx, orders[0].ID), ErrNotFound)
}

func TestAdminService_CreateDishAndSummary(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, "admin")

	assert.ErrorIs(t, admin.CreateDish(ctx, &models.Dish{Name: " ", Category: "Soups"}), ErrMissingFields)
	assert.ErrorIs(t, admin.CreateDish(ctx, &models.Dish{Name: "Soup", Category: ""}), ErrMissingFields)
	assert.ErrorIs(t, admin.CreateDish(ctx, &models.Dish{Name: "Soup", Category: "Soups", Price: -1}), ErrInvalidPrice)
	assert.ErrorIs(t, admin.CreateDish(ctx, &models.Dish{Name: "Soup", Category: "Soups", Price: MaxDishPrice + 1}), ErrInvalidPrice)

	dish := &models.Dish{Name: " Solyanka ", Category: "Soups", Price: 7.2, Description: "Meat soup"}
	require.NoError(t, admin.CreateDish(ctx, dish))
	assert.NotZero(t, dish.ID)
	assert.Equal(t, "Solyanka", dish.Name)

	createUser(t, db, "u1")
	require.NoError(t, NewReservationService(db).Create(ctx, &models.Reservation{
		Name: "X", PeopleCount: 2, Date: "d", Time: "t", Phone: "p",
	}))

	sum, err := admin.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 1, Dishes: 1, Orders: 0, Reservations: 1}, *sum)

	dishes, err := admin.Dishes(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
}

package models_test

import (
	"testing"

	"gbstore/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, models.StatusProcessing.Valid())
	assert.True(t, models.StatusOutForDelivery.Valid())
	assert.True(t, models.StatusDelivered.Valid())
	assert.True(t, models.StatusCanceled.Valid())
	assert.False(t, models.OrderStatus("shipped").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.StatusProcessing, models.StatusOutForDelivery, true},
		{models.StatusProcessing, models.StatusCanceled, true},
		{models.StatusProcessing, models.StatusDelivered, false},
		{models.StatusOutForDelivery, models.StatusDelivered, true},
		{models.StatusOutForDelivery, models.StatusCanceled, true},
		{models.StatusOutForDelivery, models.StatusProcessing, false},
		{models.StatusDelivered, models.StatusProcessing, false},
		{models.StatusDelivered, models.StatusCanceled, false},
		{models.StatusCanceled, models.StatusProcessing, false},
		// Reassigning the current status is a permitted no-op
		{models.StatusProcessing, models.StatusProcessing, true},
		{models.StatusDelivered, models.StatusDelivered, true},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCartItemSameVariant(t *testing.T) {
	base := models.CartItem{ProductID: "1", Color: "Blue", Size: "10", Quantity: 1}

	assert.True(t, base.SameVariant(models.CartItem{ProductID: "1", Color: "Blue", Size: "10", Quantity: 5}))
	assert.False(t, base.SameVariant(models.CartItem{ProductID: "1", Color: "Red", Size: "10"}))
	assert.False(t, base.SameVariant(models.CartItem{ProductID: "1", Color: "Blue", Size: "11"}))
	assert.False(t, base.SameVariant(models.CartItem{ProductID: "2", Color: "Blue", Size: "10"}))
}

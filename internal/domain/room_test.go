package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomConfig_Validate(t *testing.T) {
	valid := RoomConfig{
		ID:        "pueblo_dorm_mixed_8",
		Location:  LocationPueblo,
		Type:      RoomTypeDorm,
		Capacity:  8,
		MaxGuests: 1,
		BasePrice: 18,
	}
	assert.NoError(t, valid.Validate())

	broken := []func(r *RoomConfig){
		func(r *RoomConfig) { r.ID = " " },
		func(r *RoomConfig) { r.Location = "downtown" },
		func(r *RoomConfig) { r.Type = "cabin" },
		func(r *RoomConfig) { r.Capacity = 0 },
		func(r *RoomConfig) { r.MaxGuests = 0 },
		func(r *RoomConfig) { r.BasePrice = -1 },
	}
	for i, mutate := range broken {
		r := valid
		mutate(&r)
		assert.ErrorIs(t, r.Validate(), ErrInvalidRoomConfig, "case %d", i)
	}
}

func TestRoomConfig_StayPrice(t *testing.T) {
	dorm := RoomConfig{Type: RoomTypeDorm, BasePrice: 20}
	private := RoomConfig{Type: RoomTypePrivate, BasePrice: 55}

	assert.Equal(t, 120.0, dorm.StayPrice(2, 3))
	assert.Equal(t, 165.0, private.StayPrice(2, 3))
}

func TestRoomPatch_Apply(t *testing.T) {
	price := 30.0
	capacity := 10
	r := RoomPatch{BasePrice: &price, Capacity: &capacity}.Apply(RoomConfig{ID: "x", BasePrice: 20, Capacity: 8, MaxGuests: 1})

	assert.Equal(t, 30.0, r.BasePrice)
	assert.Equal(t, 10, r.Capacity)
	assert.Equal(t, 1, r.MaxGuests)
	assert.True(t, RoomPatch{}.IsEmpty())
}

func TestLooksLikeDorm(t *testing.T) {
	assert.True(t, LooksLikeDorm("hideout_DORM_10"))
	assert.False(t, LooksLikeDorm("pueblo_private_double"))
}

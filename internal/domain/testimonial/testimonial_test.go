package testimonial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	list := All()
	require.Len(t, list, 5)
	assert.Equal(t, "Ana Silva", list[0].Name)
	assert.Equal(t, "https://picsum.photos/seed/ana/150/150", list[0].AvatarURL)

	list[0].Name = "Outro"
	assert.Equal(t, "Ana Silva", All()[0].Name)
}

func TestAverageRating(t *testing.T) {
	assert.InDelta(t, 4.8, AverageRating(All()), 1e-9)
	assert.Zero(t, AverageRating(nil))
}

func TestTopRated(t *testing.T) {
	list := []Testimonial{
		{ID: 1, Rating: 3},
		{ID: 2, Rating: 5},
		{ID: 3, Rating: 4},
		{ID: 4, Rating: 5},
	}

	top := TopRated(list, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []int{2, 4, 3}, []int{top[0].ID, top[1].ID, top[2].ID})
	assert.Equal(t, 1, list[0].ID)

	assert.Len(t, TopRated(list, 10), 4)
	assert.Empty(t, TopRated(nil, 3))
}

package utils_test

import (
	"testing"

	"pogodata/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 25, utils.ToInt(float64(25)))
	assert.Equal(t, 25, utils.ToInt("25"))
	assert.Equal(t, 25, utils.ToInt(25))
	assert.Equal(t, 0, utils.ToInt(nil))
	assert.Equal(t, 0, utils.ToInt("not a number"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "PIKACHU", utils.ToString("PIKACHU"))
	assert.Equal(t, "", utils.ToString(nil))
	assert.Equal(t, "11", utils.ToString(float64(11)))
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool("true"))
	assert.True(t, utils.ToBool(float64(1)))
	assert.False(t, utils.ToBool(nil))
	assert.False(t, utils.ToBool("0"))
}

func TestToStringSlice(t *testing.T) {
	assert.Equal(t, []string{"THUNDER_SHOCK", "QUICK_ATTACK"},
		utils.ToStringSlice([]any{"THUNDER_SHOCK", "QUICK_ATTACK"}))
	assert.Nil(t, utils.ToStringSlice(nil))
	assert.Nil(t, utils.ToStringSlice("not a list"))
}

func TestToMapSlice(t *testing.T) {
	got := utils.ToMapSlice([]any{
		map[string]any{"a": 1},
		"skipped",
		map[string]any{"b": 2},
	})
	assert.Len(t, got, 2)
}

func TestToMap(t *testing.T) {
	assert.Equal(t, map[string]any{"a": 1}, utils.ToMap(map[string]any{"a": 1}))
	assert.NotNil(t, utils.ToMap(nil))
	assert.Empty(t, utils.ToMap("not a map"))
}

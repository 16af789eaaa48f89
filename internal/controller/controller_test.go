package controller

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, n int) *Controller {
	t.Helper()
	cfg := DefaultConfig
	cfg.Len = n
	cfg.Seed = 1
	c, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig.Validate())

	for _, mutate := range []func(*Config){
		func(cfg *Config) { cfg.Len = 0 },
		func(cfg *Config) { cfg.Len = 65 },
		func(cfg *Config) { cfg.MaxLen = 0 },
		func(cfg *Config) { cfg.MinValue, cfg.MaxValue = 1, 0 },
		func(cfg *Config) { cfg.MaxValue = 1 << 50 },
	} {
		cfg := DefaultConfig
		mutate(&cfg)
		require.Error(t, cfg.Validate(), "%+v", cfg)

		c, err := New(cfg, zerolog.Nop())
		require.Error(t, err)
		require.Nil(t, c)
	}
}

func TestNewView(t *testing.T) {
	c := newController(t, 8)
	v := c.View()

	require.Equal(t, 8, v.Len)
	require.Equal(t, make([]int64, 8), v.Values)
	require.Equal(t, make([]int64, 8), v.Nodes)
	require.Equal(t, make([]bool, 8), v.ArrayMarks)
	require.Equal(t, make([]bool, 8), v.TreeMarks)
	require.Nil(t, v.Result)
	require.Empty(t, v.Err)
}

func TestQueryAndUpdateMarks(t *testing.T) {
	c := newController(t, 8)

	require.NoError(t, c.Update("3", "5"))
	v := c.View()
	require.Equal(t, []int64{0, 0, 5, 0, 0, 0, 0, 0}, v.Values)
	require.Equal(t, []bool{false, false, true, false, false, false, false, false}, v.ArrayMarks)
	require.Equal(t, []bool{false, false, true, true, false, false, false, true}, v.TreeMarks)

	require.NoError(t, c.Query(" 4 "))
	v = c.View()
	require.NotNil(t, v.Result)
	require.Equal(t, int64(5), *v.Result)
	require.Equal(t, []bool{true, true, true, true, false, false, false, false}, v.ArrayMarks)
	require.Equal(t, []bool{false, false, false, true, false, false, false, false}, v.TreeMarks)

	require.NoError(t, c.Update("1", "2"))
	require.NoError(t, c.Query("4"))
	require.Equal(t, int64(7), *c.View().Result)
}

func TestParseErrors(t *testing.T) {
	c := newController(t, 8)
	require.NoError(t, c.Update("2", "9"))
	before := c.View()

	err := c.Query("abc")
	require.ErrorIs(t, err, ErrInvalidIndexFormat)
	require.Equal(t, err, c.Err())
	require.Contains(t, c.View().Err, "invalid query index")

	require.ErrorIs(t, c.Query("9"), ErrIndexOutOfRange)
	require.ErrorIs(t, c.Query("0"), ErrIndexOutOfRange)
	require.ErrorIs(t, c.Update("x", "1"), ErrInvalidIndexFormat)
	require.ErrorIs(t, c.Update("0", "1"), ErrIndexOutOfRange)
	require.ErrorIs(t, c.Update("9", "oops"), ErrIndexOutOfRange)
	require.ErrorIs(t, c.Update("1", "oops"), ErrInvalidValueFormat)
	require.ErrorIs(t, c.Update("1", "99999999999999999999"), ErrInvalidValueFormat)

	after := c.View()
	require.Equal(t, before.Values, after.Values)
	require.Equal(t, before.Nodes, after.Nodes)
	require.Equal(t, before.ArrayMarks, after.ArrayMarks)
	require.Equal(t, before.TreeMarks, after.TreeMarks)

	require.NoError(t, c.Query("8"))
	require.NoError(t, c.Err())
	require.Empty(t, c.View().Err)
}

func TestResize(t *testing.T) {
	c := newController(t, 8)
	require.NoError(t, c.Update("3", "5"))
	require.NoError(t, c.Query("8"))

	require.NoError(t, c.Resize(8))
	require.Equal(t, int64(5), c.View().Values[2])
	require.True(t, c.View().TreeMarks[7])

	require.NoError(t, c.Resize(12))
	v := c.View()
	require.Equal(t, 12, c.Len())
	require.Equal(t, make([]int64, 12), v.Values)
	require.Equal(t, make([]bool, 12), v.ArrayMarks)
	require.Equal(t, make([]bool, 12), v.TreeMarks)
	require.Nil(t, v.Result)

	require.ErrorIs(t, c.Resize(0), ErrLengthOutOfRange)
	require.ErrorIs(t, c.Resize(65), ErrLengthOutOfRange)
	require.Equal(t, 12, c.Len())
}

func TestRandomizeAndReset(t *testing.T) {
	c := newController(t, 64)
	require.Error(t, c.Query("abc"))

	require.NoError(t, c.Randomize())
	v := c.View()
	for _, x := range v.Values {
		require.GreaterOrEqual(t, x, int64(-100))
		require.LessOrEqual(t, x, int64(100))
	}
	require.Equal(t, make([]bool, 64), v.ArrayMarks)
	require.Equal(t, make([]bool, 64), v.TreeMarks)
	require.Empty(t, v.Err)

	require.NoError(t, c.Query("64"))
	require.Error(t, c.Update("1", "x"))
	c.Reset()
	v = c.View()
	require.Equal(t, make([]int64, 64), v.Values)
	require.Equal(t, make([]int64, 64), v.Nodes)
	require.Equal(t, make([]bool, 64), v.ArrayMarks)
	require.Nil(t, v.Result)
	require.NoError(t, c.Err())
}

func TestClearResultOnUpdate(t *testing.T) {
	cfg := DefaultConfig
	cfg.ClearResultOnUpdate = true
	c, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, c.Query("3"))
	require.NotNil(t, c.View().Result)
	require.NoError(t, c.Update("1", "1"))
	require.Nil(t, c.View().Result)

	c = newController(t, 16)
	require.NoError(t, c.Query("3"))
	require.NoError(t, c.Update("1", "1"))
	require.NotNil(t, c.View().Result)
	require.Equal(t, int64(0), *c.View().Result)
}

func TestViewIsASnapshot(t *testing.T) {
	c := newController(t, 4)
	require.NoError(t, c.Update("1", "1"))

	v := c.View()
	v.Values[0] = 42
	v.TreeMarks[0] = false

	require.Equal(t, int64(1), c.View().Values[0])
	require.True(t, c.View().TreeMarks[0])
}

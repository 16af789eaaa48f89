package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/caio/go-fenwickviz/internal/controller"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, n int, commands ...func(*controller.Controller) error) controller.View {
	t.Helper()
	cfg := controller.DefaultConfig
	cfg.Len = n
	c, err := controller.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	for _, command := range commands {
		command(c)
	}
	return c.View()
}

func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, strings.TrimRight(line, " "))
	}
	return out
}

func TestRenderPlain(t *testing.T) {
	v := newView(t, 4, func(c *controller.Controller) error { return c.Update("1", "3") })

	var buf bytes.Buffer
	require.NoError(t, New(false).Render(&buf, v))

	require.Equal(t, []string{
		"4 │ 0 │         █ 3",
		"3 │ 0 │ ┃ 0     █",
		"2 │ 0 │     █ 3 █",
		"1 │*3*│ █ 3 █   █",
		"",
		"query answer:",
		"",
	}, lines(buf.String()))
}

func TestRenderQueryAnswer(t *testing.T) {
	v := newView(t, 2,
		func(c *controller.Controller) error { return c.Update("2", "-12") },
		func(c *controller.Controller) error { return c.Query("1") },
	)

	var buf bytes.Buffer
	require.NoError(t, New(false).Render(&buf, v))

	require.Equal(t, []string{
		"2 │ -12 │       ┃ -12",
		"1 │*  0*│ █   0 ┃",
		"",
		"query answer: 0",
		"",
	}, lines(buf.String()))
}

func TestRenderError(t *testing.T) {
	v := newView(t, 1, func(c *controller.Controller) error { return c.Query("nope") })

	var plain, colored bytes.Buffer
	require.NoError(t, New(false).Render(&plain, v))
	require.NoError(t, New(true).Render(&colored, v))

	require.Contains(t, plain.String(), "\ninvalid query index")
	require.NotContains(t, plain.String(), "\x1b[")
	require.Contains(t, colored.String(), "\x1b[31minvalid query index")
}

func TestRenderColorHighlights(t *testing.T) {
	v := newView(t, 8, func(c *controller.Controller) error { return c.Query("6") })

	var buf bytes.Buffer
	require.NoError(t, New(true).Render(&buf, v))
	out := lines(buf.String())

	// Rows are printed from 8 down to 1.
	for row := 1; row <= 8; row++ {
		line := out[8-row]
		if row <= 6 {
			require.Contains(t, line, "\x1b[33m 0 \x1b[0m", "row %d", row)
		} else {
			require.NotContains(t, line, "\x1b[33m 0 ", "row %d", row)
		}
	}
	// Query(6) visits nodes 6 and 4.
	require.Contains(t, out[8-6], "\x1b[33m┃ 0\x1b[0m")
	require.Contains(t, out[8-4], "\x1b[33m┃ 0\x1b[0m")
	require.NotContains(t, out[8-8], "\x1b[33m┃")
	require.NotContains(t, out[8-5], "\x1b[33m┃ 0")
}

// Package controller turns discrete user actions into engine calls and
// keeps the presentation state the engine does not: the highlight
// vectors and the latest error message.
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caio/go-fenwickviz"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

var (
	ErrInvalidIndexFormat = errors.New("index is not an integer")
	ErrInvalidValueFormat = errors.New("value is not a 64-bit integer")
	ErrIndexOutOfRange    = fenwickviz.ErrIndexOutOfRange
	ErrLengthOutOfRange   = errors.New("length out of range")
)

// View is a snapshot of everything a renderer draws. Slices are indexed
// from zero; element k describes index k+1.
type View struct {
	Len        int
	Values     []int64
	Nodes      []int64
	ArrayMarks []bool
	TreeMarks  []bool
	Result     *int64
	Err        string
}

type Controller struct {
	cfg    Config
	engine *fenwickviz.Engine
	log    zerolog.Logger

	arrayMarks []bool
	treeMarks  []bool
	err        error
}

func New(cfg Config, log zerolog.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	engine, err := fenwickviz.New(cfg.Len, cfg.engineOptions()...)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:    cfg,
		engine: engine,
		log:    log.With().Str("component", "controller").Logger(),
	}
	c.clearMarks()
	return c, nil
}

// Query runs a prefix sum query for the index typed in text.
func (c *Controller) Query(text string) error {
	i, err := c.parseIndex(text)
	if err != nil {
		return c.fail(fmt.Errorf("invalid query index: %w", err))
	}
	sum, touched, err := c.engine.Query(i)
	if err != nil {
		return c.fail(fmt.Errorf("invalid query index range (must be between 1 and array length): %w", err))
	}

	c.log.Debug().Int("index", i).Int64("sum", sum).Ints("tree", touched.Tree).Msg("query")
	c.mark(touched)
	return c.ok()
}

// Update sets the value at the index typed in indexText to valueText.
func (c *Controller) Update(indexText, valueText string) error {
	i, err := c.parseIndex(indexText)
	if err != nil {
		return c.fail(fmt.Errorf("invalid update index: %w", err))
	}
	if i < 1 || i > c.engine.Len() {
		return c.fail(fmt.Errorf("invalid update index range (must be between 1 and array length): %w", ErrIndexOutOfRange))
	}
	v, err := strconv.ParseInt(strings.TrimSpace(valueText), 10, 64)
	if err != nil {
		return c.fail(fmt.Errorf("invalid update value: %w", ErrInvalidValueFormat))
	}
	touched, err := c.engine.Update(i, v)
	if err != nil {
		return c.fail(fmt.Errorf("invalid update value: %w", err))
	}

	c.log.Debug().Int("index", i).Int64("value", v).Ints("tree", touched.Tree).Msg("update")
	c.mark(touched)
	return c.ok()
}

// Resize changes the array length, discarding every value when n
// differs from the current length.
func (c *Controller) Resize(n int) error {
	if n < 1 || n > c.cfg.MaxLen {
		return c.fail(fmt.Errorf("invalid array length %d (must be between 1 and %d): %w", n, c.cfg.MaxLen, ErrLengthOutOfRange))
	}
	if n == c.engine.Len() {
		return c.ok()
	}
	if err := c.engine.Resize(n); err != nil {
		return c.fail(err)
	}

	c.log.Debug().Int("len", n).Msg("resize")
	c.clearMarks()
	return c.ok()
}

// Randomize refills the array with values from the configured range.
func (c *Controller) Randomize() error {
	if err := c.engine.Randomize(c.cfg.MinValue, c.cfg.MaxValue); err != nil {
		return c.fail(err)
	}

	c.log.Debug().Int64("min", c.cfg.MinValue).Int64("max", c.cfg.MaxValue).Msg("randomize")
	c.clearMarks()
	return c.ok()
}

// Reset zeroes the array and forgets the result, the highlights and the
// latest error.
func (c *Controller) Reset() {
	c.engine.Reset()
	c.clearMarks()
	c.err = nil
	c.log.Debug().Msg("reset")
}

// Err returns the error of the latest command, or nil if it succeeded.
func (c *Controller) Err() error {
	return c.err
}

func (c *Controller) Len() int {
	return c.engine.Len()
}

func (c *Controller) View() View {
	v := View{
		Len:        c.engine.Len(),
		Values:     c.engine.Values(),
		Nodes:      c.engine.Nodes(),
		ArrayMarks: slices.Clone(c.arrayMarks),
		TreeMarks:  slices.Clone(c.treeMarks),
	}
	if result, ok := c.engine.LastResult(); ok {
		v.Result = &result
	}
	if c.err != nil {
		v.Err = c.err.Error()
	}
	return v
}

func (c *Controller) parseIndex(text string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrInvalidIndexFormat
	}
	return i, nil
}

func (c *Controller) mark(touched fenwickviz.Touched) {
	c.arrayMarks, c.treeMarks = touched.Mask(c.engine.Len())
}

func (c *Controller) clearMarks() {
	c.mark(fenwickviz.Touched{})
}

func (c *Controller) fail(err error) error {
	c.log.Debug().Err(err).Msg("rejected")
	c.err = err
	return err
}

func (c *Controller) ok() error {
	c.err = nil
	return nil
}

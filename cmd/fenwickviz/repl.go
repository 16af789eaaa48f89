package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/caio/go-fenwickviz/internal/controller"
	"github.com/caio/go-fenwickviz/internal/render"
)

const helpText = `commands:
  query X       prefix sum of index X
  update X Y    set the value at index X to Y
  randomize     refill the array with random values
  reset         zero the array
  resize N      change the array length (discards the values)
  show          redraw
  help          this text
  quit          leave
`

type repl struct {
	controller *controller.Controller
	renderer   *render.Renderer
	out        io.Writer
}

// run reads commands from in until EOF or quit, drawing a frame after
// every command that reaches the controller.
func (s *repl) run(in io.Reader) error {
	if err := s.draw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		quit, err := s.exec(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *repl) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	args := fields[1:]
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := io.WriteString(s.out, helpText)
		return false, err
	case "show":
	case "query":
		if !s.arity(cmd, args, 1) {
			return false, nil
		}
		s.controller.Query(args[0])
	case "update":
		if !s.arity(cmd, args, 2) {
			return false, nil
		}
		s.controller.Update(args[0], args[1])
	case "randomize":
		s.controller.Randomize()
	case "reset":
		s.controller.Reset()
	case "resize":
		if !s.arity(cmd, args, 1) {
			return false, nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "invalid array length %q\n", args[0])
			return false, nil
		}
		s.controller.Resize(n)
	default:
		fmt.Fprintf(s.out, "unknown command %q, type help for a list\n", cmd)
		return false, nil
	}

	return false, s.draw()
}

func (s *repl) arity(cmd string, args []string, n int) bool {
	if len(args) != n {
		fmt.Fprintf(s.out, "%s takes %d argument(s), got %d\n", cmd, n, len(args))
		return false
	}
	return true
}

func (s *repl) draw() error {
	return s.renderer.Render(s.out, s.controller.View())
}

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/skillquest/internal/progression"
)

func init() {
	Register(VerbInfo{Name: "mine", Aliases: []string{"m"}, Usage: "mine <resource>"}, parseMine)
	Register(VerbInfo{Name: "stop", Aliases: []string{"s"}, Usage: "stop"}, parseStop)
	Register(VerbInfo{Name: "deposit", Aliases: []string{"d"}, Usage: "deposit <item> [count|all]"}, parseDeposit)
	Register(VerbInfo{Name: "view", Aliases: []string{"v"}, Usage: "view inventory|vault|skills"}, parseView)
}

func parseMine(args []string) (progression.Command, error) {
	if len(args) == 0 {
		return progression.Command{}, fmt.Errorf("mine: %w", ErrMissingTarget)
	}
	return progression.Command{Verb: progression.VerbMine, Target: strings.Join(args, " ")}, nil
}

func parseStop([]string) (progression.Command, error) {
	return progression.Command{Verb: progression.VerbStop}, nil
}

// parseDeposit accepts a multi-word item name optionally followed by a
// count or "all". The count defaults to one.
func parseDeposit(args []string) (progression.Command, error) {
	qty := 1
	if n := len(args); n > 0 {
		last := strings.ToLower(args[n-1])
		switch {
		case last == "all":
			qty = progression.QuantityAll
			args = args[:n-1]
		case isNumber(last):
			v, err := strconv.Atoi(last)
			if err != nil || v < 1 {
				return progression.Command{}, fmt.Errorf("deposit: %w: %q", ErrBadQuantity, args[n-1])
			}
			qty = v
			args = args[:n-1]
		}
	}
	if len(args) == 0 {
		return progression.Command{}, fmt.Errorf("deposit: %w", ErrMissingTarget)
	}
	return progression.Command{
		Verb:     progression.VerbDeposit,
		Target:   strings.Join(args, " "),
		Quantity: qty,
	}, nil
}

func parseView(args []string) (progression.Command, error) {
	if len(args) == 0 {
		return progression.Command{}, fmt.Errorf("view: %w", ErrMissingTarget)
	}
	return progression.Command{Verb: progression.VerbView, Target: strings.Join(args, " ")}, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

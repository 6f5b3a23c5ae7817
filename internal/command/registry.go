// Package command parses typed player input into progression commands.
// Verbs register themselves in init(), so the prompt and the help text
// discover them without a hardcoded list.
package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/skillquest/internal/progression"
)

// Parse errors. Returned errors wrap one of these.
var (
	ErrEmpty         = errors.New("empty command")
	ErrUnknownVerb   = errors.New("unknown command")
	ErrMissingTarget = errors.New("missing target")
	ErrBadQuantity   = errors.New("bad quantity")
)

// ParseFunc builds a command from the words following the verb.
type ParseFunc func(args []string) (progression.Command, error)

// VerbInfo describes a registered verb for help output.
type VerbInfo struct {
	Name    string
	Aliases []string
	Usage   string
}

type entry struct {
	info  VerbInfo
	parse ParseFunc
}

var (
	verbs   = make(map[string]*entry) // name and aliases
	primary = make(map[string]*entry)
	mu      sync.RWMutex
)

// Register adds a verb. Panics if the name or an alias is taken.
func Register(info VerbInfo, parse ParseFunc) {
	mu.Lock()
	defer mu.Unlock()

	keys := append([]string{info.Name}, info.Aliases...)
	for i, key := range keys {
		keys[i] = strings.ToLower(key)
		if _, exists := verbs[keys[i]]; exists {
			panic(fmt.Sprintf("command: verb %q already registered", keys[i]))
		}
	}

	e := &entry{info: info, parse: parse}
	for _, key := range keys {
		verbs[key] = e
	}
	primary[info.Name] = e
}

// List returns all registered verbs sorted by name.
func List() []VerbInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]VerbInfo, 0, len(primary))
	for _, e := range primary {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Parse turns one prompt line into a command.
func Parse(line string) (progression.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return progression.Command{}, ErrEmpty
	}

	mu.RLock()
	e, ok := verbs[strings.ToLower(fields[0])]
	mu.RUnlock()
	if !ok {
		return progression.Command{}, fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
	}
	return e.parse(fields[1:])
}

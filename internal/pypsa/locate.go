package pypsa

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrNoNetworkFile reports an empty scenario networks directory.
var ErrNoNetworkFile = errors.New("pypsa: no network file")

// ErrAmbiguousNetworkFile reports more than one candidate file under
// strict locating.
var ErrAmbiguousNetworkFile = errors.New("pypsa: more than one network file")

// Locator finds the solved network file of a scenario under the
// results root.
type Locator struct {
	resultsRoot string
	strict      bool
	logger      *log.Logger
}

// NewLocator builds a Locator. When strict is false (the default
// behaviour), a directory with several network files yields a warning
// and the first entry; when strict is true it is an error.
func NewLocator(resultsRoot string, strict bool, logger *log.Logger) (*Locator, error) {
	if resultsRoot == "" {
		return nil, errors.New("pypsa: empty results root")
	}
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Locator{resultsRoot: resultsRoot, strict: strict, logger: logger}, nil
}

// NetworkPath returns the path of the scenario's network file. A
// scenario folder holds its solved networks under <scenario>/networks
// and is expected to hold exactly one.
func (l *Locator) NetworkPath(scenario string) (string, error) {
	if scenario == "" {
		return "", errors.New("pypsa: empty scenario folder")
	}
	dir := filepath.Join(l.resultsRoot, scenario, "networks")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("pypsa: list networks of scenario %q: %w", scenario, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoNetworkFile, dir)
	}
	if len(names) > 1 {
		if l.strict {
			return "", fmt.Errorf("%w: %d candidates in %s", ErrAmbiguousNetworkFile, len(names), dir)
		}
		l.logger.Printf("pypsa: %d network files in %s, using %s", len(names), dir, names[0])
	}
	return filepath.Join(dir, names[0]), nil
}

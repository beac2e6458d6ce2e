package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScenario is matched by every unknown scenario type error.
var ErrInvalidScenario = errors.New("invalid scenario type")

// InvalidTypeError reports a scenario type the catalog does not hold.
type InvalidTypeError struct {
	Type  string
	Valid []string
}

func (e *InvalidTypeError) Error() string {
	quoted := make([]string, len(e.Valid))
	for i, v := range e.Valid {
		quoted[i] = "'" + v + "'"
	}
	return fmt.Sprintf("Invalid scenario type: %s. Use %s", e.Type, strings.Join(quoted, " or "))
}

// Is makes errors.Is(err, ErrInvalidScenario) hold.
func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidScenario
}

package scheme

import (
	"fmt"
	"strings"
)

// InvalidEnumValueError reports a document field whose value is not one of
// the allowed enumeration members. The whole load aborts on this error;
// no partial configuration is ever returned.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s, allowed values: %s",
		e.Value, e.Field, strings.Join(e.Allowed, ", "))
}

package utils

import (
	"encoding/json"
)

// Remarshal converts a typed value into another shape through its JSON
// form. The find endpoint uses it to turn games into the generic
// documents its predicates match against.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}

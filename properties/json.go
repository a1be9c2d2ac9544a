package properties

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

// loadJSON reads the store serialized as a flat JSON object of
// string values. Nested objects and non-string values are an error.
func (p *Properties) loadJSON(r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var m map[string]string
	if err := json.Unmarshal(d, &m); err != nil {
		return fmt.Errorf("not a flat JSON object of strings: %w", err)
	}
	for k, v := range m {
		p.SetProperty(k, v)
	}
	return nil
}

// storeJSON writes the store as a pretty-printed JSON object.
// json.Marshal sorts map keys so output is deterministic.
func (p *Properties) storeJSON(w io.Writer) error {
	es := p.entries()
	m := make(map[string]string, len(es))
	for _, e := range es {
		m[e.Key] = e.Value
	}
	d, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(d))
	return err
}

package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// keySet records which known keys a stored record carried.
type keySet map[string]bool

// decodeObject decodes data as a JSON object. Numbers are kept as
// json.Number so they round-trip unchanged.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var all map[string]any
	if err := dec.Decode(&all); err != nil {
		return nil, err
	}
	return all, nil
}

// splitExtra removes the known keys from obj, reporting which of them were
// present. What is left is returned as the extra fields.
func splitExtra(obj map[string]any, known ...string) (map[string]any, keySet) {
	present := make(keySet, len(known))
	for _, k := range known {
		if _, ok := obj[k]; ok {
			present[k] = true
			delete(obj, k)
		}
	}
	if len(obj) == 0 {
		return nil, present
	}
	return obj, present
}

// object assembles a record for encoding. A known key is written when its
// value is set, when the stored record carried it, or, for records built in
// code, when it is one of the defaults. Keys kept verbatim in extra win.
type object struct {
	out      map[string]any
	present  keySet
	defaults keySet
}

func newObject(extra map[string]any, present, defaults keySet) *object {
	out := make(map[string]any, len(extra)+len(defaults)+4)
	for k, v := range extra {
		out[k] = v
	}
	return &object{out: out, present: present, defaults: defaults}
}

func (o *object) put(key string, value any, zero bool) {
	if _, kept := o.out[key]; kept {
		return
	}
	if !zero || o.carries(key) {
		o.out[key] = value
	}
}

func (o *object) carries(key string) bool {
	if o.present == nil {
		return o.defaults[key]
	}
	return o.present[key]
}

func (o *object) encode() ([]byte, error) {
	return marshalNoEscape(o.out)
}

// truthy follows the loose truth rules of hand-edited JSON: false, null, 0,
// "" and empty containers are false, everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		return err != nil || f != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// marshalNoEscape encodes v without turning <, > and & into \u escapes;
// post bodies carry raw HTML.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

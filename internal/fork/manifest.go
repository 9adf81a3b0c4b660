package fork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blazestart/blazestart/internal/options"
)

// ForkVersion is the version a forked package.json restarts from.
const ForkVersion = "1.0.0"

// orderedObject is a JSON object that keeps its key order.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func parseOrdered(data []byte) (*orderedObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}

	obj := &orderedObject{values: map[string]json.RawMessage{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		obj.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after object")
	}
	return obj, nil
}

func (o *orderedObject) set(key string, raw json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

func (o *orderedObject) setString(key, value string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	o.set(key, raw)
	return nil
}

func (o *orderedObject) delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// MarshalJSON writes the keys in their original order.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(o.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RewritePackageJSON renames the package, resets its version, sets the
// description when given and drops the repository field. Other keys keep
// their order and values.
func RewritePackageJSON(data []byte, name, description string) ([]byte, error) {
	obj, err := parseOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("parse package.json: %w", err)
	}

	if err := obj.setString("name", options.SanitizeName(name)); err != nil {
		return nil, err
	}
	if err := obj.setString("version", ForkVersion); err != nil {
		return nil, err
	}
	if description != "" {
		if err := obj.setString("description", description); err != nil {
			return nil, err
		}
	}
	obj.delete("repository")

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return nil, fmt.Errorf("encode package.json: %w", err)
	}
	return buf.Bytes(), nil
}

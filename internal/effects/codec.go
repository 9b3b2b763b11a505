package effects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// recordData is the host document layout of a record
type recordData struct {
	ID        string       `json:"_id"`
	Name      string       `json:"name"`
	Origin    string       `json:"origin,omitempty"`
	Disabled  bool         `json:"disabled"`
	Temporary bool         `json:"temporary,omitempty"`
	Changes   []changeData `json:"changes"`
	Flags     flagsData    `json:"flags"`
}

type flagsData struct {
	Arm5e *systemFlags `json:"arm5e,omitempty"`
}

type systemFlags struct {
	Type    []string `json:"type"`
	Subtype []string `json:"subtype"`
	Option  []string `json:"option"`
	Hidden  bool     `json:"hidden,omitempty"`
	NoEdit  bool     `json:"noEdit,omitempty"`
}

type changeData struct {
	Key   string      `json:"key"`
	Mode  int         `json:"mode"`
	Value json.Number `json:"value"`
}

// MarshalJSON writes the record in the host layout with parallel tag arrays
func (r *Record) MarshalJSON() ([]byte, error) {
	tags := r.Tags()
	data := recordData{
		ID:        r.ID,
		Name:      r.Name,
		Origin:    r.Origin,
		Disabled:  r.Disabled,
		Temporary: r.Temporary,
		Changes:   make([]changeData, len(r.entries)),
		Flags: flagsData{Arm5e: &systemFlags{
			Type:    tags.Type,
			Subtype: tags.Subtype,
			Option:  tags.Option,
			Hidden:  r.Hidden,
			NoEdit:  r.NoEdit,
		}},
	}
	for i, e := range r.entries {
		data.Changes[i] = changeData{
			Key:   e.Key,
			Mode:  int(e.Mode),
			Value: json.Number(formatValue(e.Value)),
		}
	}
	return json.Marshal(data)
}

// UnmarshalJSON reads the host layout, failing when tags and changes are misaligned
func (r *Record) UnmarshalJSON(raw []byte) error {
	var data recordData
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	changes := make([]Change, len(data.Changes))
	for i, c := range data.Changes {
		value, err := parseValue(string(c.Value))
		if err != nil {
			return fmt.Errorf("record %s change %d: %w", data.ID, i, err)
		}
		changes[i] = Change{Key: c.Key, Mode: Mode(c.Mode), Value: value}
	}

	var tags Tags
	var hidden, noEdit bool
	if f := data.Flags.Arm5e; f != nil {
		tags = Tags{Type: f.Type, Subtype: f.Subtype, Option: f.Option}
		hidden, noEdit = f.Hidden, f.NoEdit
	}

	decoded, err := FromParallel(data.ID, data.Name, changes, tags)
	if err != nil {
		return err
	}
	decoded.Origin = data.Origin
	decoded.Disabled = data.Disabled
	decoded.Temporary = data.Temporary
	decoded.Hidden = hidden
	decoded.NoEdit = noEdit

	*r = *decoded
	return nil
}

// UnmarshalJSON accepts the value as a JSON number or a numeric string,
// since host documents store change values as strings.
func (c *changeData) UnmarshalJSON(raw []byte) error {
	var aux struct {
		Key   string          `json:"key"`
		Mode  int             `json:"mode"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return err
	}
	c.Key = aux.Key
	c.Mode = aux.Mode

	v := strings.TrimSpace(string(aux.Value))
	switch {
	case v == "" || v == "null":
		c.Value = "0"
	case strings.HasPrefix(v, `"`):
		var s string
		if err := json.Unmarshal(aux.Value, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			s = "0"
		}
		c.Value = json.Number(strings.TrimSpace(s))
	default:
		c.Value = json.Number(v)
	}
	return nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("change value %q is not numeric", s)
	}
	return v, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package store

import "encoding/json"

// Decode maps a row onto a typed struct via its json tags.
func Decode(row Row, out interface{}) error {
	raw, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Encode flattens a typed struct into a row via its json tags.
func Encode(in interface{}) (Row, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var row Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}
	return row, nil
}

package regionnames

import (
	"bytes"
	"encoding/json"
)

// Native returns the effective name table as a JSON object literal, for
// consumers which can't use a NameTable. The keys appear in display order,
// followed by the remaining codes in ascending order.
func (l *Locale) Native() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	written := make(map[RegionCode]bool, len(l.names))
	write := func(code RegionCode) error {
		name, ok := l.names[code]
		if !ok || written[code] {
			return nil
		}
		if len(written) > 0 {
			buf.WriteByte(',')
		}
		written[code] = true
		key, err := json.Marshal(string(code))
		if err != nil {
			return err
		}
		val, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}
	for _, code := range l.sorted {
		if err := write(code); err != nil {
			return nil, err
		}
	}
	for _, code := range l.names.Codes() {
		if err := write(code); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. See Native.
func (l *Locale) MarshalJSON() ([]byte, error) {
	return l.Native()
}

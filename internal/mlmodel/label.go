package mlmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ClassLabel is a raw class emitted by a classifier. Models trained on string
// targets carry names ("Beginner", "Expert"); models trained on encoded targets
// carry integer codes (0, 1, 2).
type ClassLabel struct {
	Name    string
	Code    int
	Numeric bool
}

func StringLabel(name string) ClassLabel { return ClassLabel{Name: name} }

func CodeLabel(code int) ClassLabel { return ClassLabel{Code: code, Numeric: true} }

func (l ClassLabel) String() string {
	if l.Numeric {
		return strconv.Itoa(l.Code)
	}
	return l.Name
}

func (l ClassLabel) Less(o ClassLabel) bool {
	if l.Numeric != o.Numeric {
		return l.Numeric
	}
	if l.Numeric {
		return l.Code < o.Code
	}
	return l.Name < o.Name
}

func (l ClassLabel) MarshalJSON() ([]byte, error) {
	if l.Numeric {
		return json.Marshal(l.Code)
	}
	return json.Marshal(l.Name)
}

func (l *ClassLabel) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = StringLabel(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("class label must be a string or integer: %w", err)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("class label %v is not an integer", f)
	}
	*l = CodeLabel(int(f))
	return nil
}

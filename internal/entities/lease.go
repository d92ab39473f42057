package entities

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/pfsense-client/internal/constants"
)

const (
	LeaseKeyType     = "type"
	LeaseKeyMAC      = "mac"
	LeaseKeyIP       = "ip"
	LeaseKeyHostname = "hostname"
	LeaseKeyDescr    = "descr"
	LeaseKeyState    = "state"
	LeaseKeyOnline   = "online"
)

type (
	// Lease is a DHCP binding record as reported by the appliance, its shape is owned by the API.
	Lease map[string]any

	Leases []Lease
)

// String returns value of key as text, absent and null values are empty.
func (l Lease) String(key string) string {
	value, ok := l[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return fmt.Sprintf("%v", value)
}

func (l Lease) IsExpired() bool {
	return l.String(LeaseKeyState) == constants.LeaseStateExpired
}

func (l Lease) IsOnline() bool {
	return isTruthy(l[LeaseKeyOnline])
}

// ValuesString joins all record values in key order, used for substring search.
// Booleans and null render as True, False and None.
func (l Lease) ValuesString() string {
	keys := lo.Keys(l)
	slices.Sort(keys)

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		switch v := l[key].(type) {
		case nil:
			values = append(values, "None")
		case bool:
			values = append(values, lo.Ternary(v, "True", "False"))
		default:
			values = append(values, l.String(key))
		}
	}

	return strings.Join(values, ", ")
}

func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		return !rv.IsZero()
	}
}

// LeaseFilter holds list_leases options.
type LeaseFilter struct {
	Find    string
	Expired bool
	Debug   bool
	Table   bool
}

// Match reports whether the lease survives the filter.
func (f LeaseFilter) Match(lease Lease) bool {
	if lo.IsNotEmpty(f.Find) && !strings.Contains(lease.ValuesString(), f.Find) {
		return false
	}

	if !f.Expired && lease.IsExpired() {
		return false
	}

	return true
}

// Package schema validates untrusted backend JSON against per-resource
// structural contracts before it is treated as trusted typed data. A response
// that drifts from the declared shape fails with an *Error naming every path
// that mismatched; nothing is coerced and no partially-populated value is
// ever returned.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Issue describes a single contract violation at one path in the payload.
type Issue struct {
	Value   any
	Path    string
	Message string
}

// Error reports every contract violation found while validating one response.
type Error struct {
	Resource string
	Issues   []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("%s: schema validation failed", e.Resource)
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s%s: %s", e.Resource, issue.Path, issue.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// collector accumulates issues for one response.
type collector struct {
	resource string
	issues   []Issue
}

func (c *collector) add(path, message string, value any) {
	c.issues = append(c.issues, Issue{Path: path, Message: message, Value: value})
}

func (c *collector) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &Error{Resource: c.resource, Issues: c.issues}
}

// decode parses raw JSON preserving number precision.
func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

// decodeObject parses raw JSON that must be a single object.
func decodeObject(resource string, raw []byte) (map[string]any, *collector, error) {
	c := &collector{resource: resource}
	v, err := decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", resource, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		c.add("", fmt.Sprintf("expected object, got %s", typeName(v)), v)
		return nil, nil, c.err()
	}
	return obj, c, nil
}

// decodeArray parses raw JSON that must be an array of objects.
func decodeArray(resource string, raw []byte) ([]map[string]any, *collector, error) {
	c := &collector{resource: resource}
	v, err := decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", resource, err)
	}
	arr, ok := v.([]any)
	if !ok {
		c.add("", fmt.Sprintf("expected array, got %s", typeName(v)), v)
		return nil, nil, c.err()
	}
	objs := make([]map[string]any, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			c.add(fmt.Sprintf("[%d]", i), fmt.Sprintf("expected object, got %s", typeName(item)), item)
			continue
		}
		objs = append(objs, obj)
	}
	if err := c.err(); err != nil {
		return nil, nil, err
	}
	return objs, c, nil
}

// object wraps one decoded JSON object with typed field accessors. Accessors
// record issues on the shared collector and return zero values on mismatch;
// the caller checks the collector once at the end.
type object struct {
	fields map[string]any
	c      *collector
	path   string
}

func (o object) field(key string) string {
	return o.path + "." + key
}

func (o object) requireString(key string) string {
	v, ok := o.fields[key]
	if !ok {
		o.c.add(o.field(key), "missing required field", nil)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected string, got %s", typeName(v)), v)
		return ""
	}
	return s
}

// optionalString tolerates an absent or null value and returns "".
func (o object) optionalString(key string) string {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected string or null, got %s", typeName(v)), v)
		return ""
	}
	return s
}

// stringOr returns the string at key, or fallback when the key is absent.
func (o object) stringOr(key, fallback string) string {
	if _, ok := o.fields[key]; !ok {
		return fallback
	}
	return o.requireString(key)
}

func (o object) requireDecimal(key string) decimal.Decimal {
	v, ok := o.fields[key]
	if !ok {
		o.c.add(o.field(key), "missing required field", nil)
		return decimal.Zero
	}
	n, ok := v.(json.Number)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected number, got %s", typeName(v)), v)
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		o.c.add(o.field(key), fmt.Sprintf("invalid number %q", n.String()), v)
		return decimal.Zero
	}
	return d
}

func (o object) requireInt(key string) int64 {
	v, ok := o.fields[key]
	if !ok {
		o.c.add(o.field(key), "missing required field", nil)
		return 0
	}
	n, ok := v.(json.Number)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected integer, got %s", typeName(v)), v)
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		o.c.add(o.field(key), fmt.Sprintf("expected integer, got %s", n.String()), v)
		return 0
	}
	return i
}

// optionalInt tolerates an absent or null value and returns nil.
func (o object) optionalInt(key string) *int64 {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := v.(json.Number)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected integer or null, got %s", typeName(v)), v)
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		o.c.add(o.field(key), fmt.Sprintf("expected integer, got %s", n.String()), v)
		return nil
	}
	return &i
}

// optionalIntOr returns the integer at key, or fallback when absent.
func (o object) optionalIntOr(key string, fallback int64) int64 {
	if v, ok := o.fields[key]; !ok || v == nil {
		return fallback
	}
	return o.requireInt(key)
}

func (o object) optionalBool(key string) bool {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected boolean, got %s", typeName(v)), v)
		return false
	}
	return b
}

// requireEnum validates a required string against a declared value set.
func (o object) requireEnum(key string, allowed []string) string {
	s := o.requireString(key)
	if s == "" {
		return ""
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	o.c.add(o.field(key), fmt.Sprintf("invalid value %q, expected one of %s", s, strings.Join(allowed, "|")), s)
	return ""
}

// timestampLayouts covers the ISO-8601 renderings the backend emits:
// RFC 3339 with offset, naive datetimes, and bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (o object) requireTime(key string) time.Time {
	s := o.requireString(key)
	if s == "" {
		return time.Time{}
	}
	t, ok := parseTimestamp(s)
	if !ok {
		o.c.add(o.field(key), fmt.Sprintf("expected ISO-8601 timestamp, got %q", s), s)
		return time.Time{}
	}
	return t
}

// optionalTime tolerates an absent or null value and returns the zero time.
func (o object) optionalTime(key string) time.Time {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return time.Time{}
	}
	return o.requireTime(key)
}

// optionalTimePtr tolerates an absent or null value and returns nil.
func (o object) optionalTimePtr(key string) *time.Time {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return nil
	}
	t := o.requireTime(key)
	if t.IsZero() {
		return nil
	}
	return &t
}

// indexPath renders the path prefix for the i-th element of a list response.
func indexPath(i int) string {
	return fmt.Sprintf("[%d]", i)
}

// enumValues converts a typed enum value list into plain strings.
func enumValues[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// typeName renders a decoded JSON value's type for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

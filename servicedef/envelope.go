package servicedef

import (
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Envelope is the standard response wrapper of the API: {"success": ..., "message": ..., "data": {...}}.
type Envelope struct {
	Success bool
	Message string
	Data    ldvalue.Value
}

// ParseEnvelope reads the envelope fields from a JSON body. It returns false if the body is not
// a JSON object.
func ParseEnvelope(body ldvalue.Value) (Envelope, bool) {
	if body.Type() != ldvalue.ObjectType {
		return Envelope{Data: ldvalue.Null()}, false
	}
	return Envelope{
		Success: body.GetByKey("success").BoolValue(),
		Message: body.GetByKey("message").StringValue(),
		Data:    body.GetByKey("data"),
	}, true
}

// Field returns a field of the data object as a string, accepting either a JSON string or a
// number. It returns "" if the field is absent or of any other type.
func (e Envelope) Field(name string) string {
	return StringOrNumber(e.Data.GetByKey(name))
}

// HasField is true if the data object has a non-null value for the field.
func (e Envelope) HasField(name string) bool {
	return !e.Data.GetByKey(name).IsNull()
}

// StringOrNumber returns a string or number value as a string, or "" for any other type.
func StringOrNumber(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.StringType:
		return v.StringValue()
	case ldvalue.NumberType:
		if v.IsInt() {
			return strconv.Itoa(v.IntValue())
		}
		return strconv.FormatFloat(v.Float64Value(), 'f', -1, 64)
	default:
		return ""
	}
}

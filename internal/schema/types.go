package schema

// Primitive field types. Any fieldType outside this closed set is treated as a
// user-defined enum.
const (
	TypeString        = "String"
	TypeInteger       = "Integer"
	TypeLong          = "Long"
	TypeFloat         = "Float"
	TypeDouble        = "Double"
	TypeBigDecimal    = "BigDecimal"
	TypeLocalDate     = "LocalDate"
	TypeInstant       = "Instant"
	TypeZonedDateTime = "ZonedDateTime"
	TypeDuration      = "Duration"
	TypeUUID          = "UUID"
	TypeBoolean       = "Boolean"
	TypeBytes         = "byte[]"
	TypeByteBuffer    = "ByteBuffer"
)

var primitiveTypes = map[string]bool{
	TypeString:        true,
	TypeInteger:       true,
	TypeLong:          true,
	TypeFloat:         true,
	TypeDouble:        true,
	TypeBigDecimal:    true,
	TypeLocalDate:     true,
	TypeInstant:       true,
	TypeZonedDateTime: true,
	TypeDuration:      true,
	TypeUUID:          true,
	TypeBoolean:       true,
	TypeBytes:         true,
	TypeByteBuffer:    true,
}

// legacyTypes maps retired temporal type names to their canonical replacement.
// The rewrite is applied unconditionally on every resolution pass.
var legacyTypes = map[string]string{
	"DateTime": TypeInstant,
	"Date":     TypeInstant,
}

// CanonicalFieldType rewrites legacy temporal type names to their canonical
// form and returns every other type unchanged.
func CanonicalFieldType(t string) string {
	if canonical, ok := legacyTypes[t]; ok {
		return canonical
	}
	return t
}

// IsPrimitiveType reports whether t is one of the built-in field types.
func IsPrimitiveType(t string) bool {
	return primitiveTypes[t]
}

// IsBinaryType reports whether t is a binary field type. Binary fields cannot
// carry validation rules.
func IsBinaryType(t string) bool {
	return t == TypeBytes || t == TypeByteBuffer
}

// IsTemporalType reports whether t is a date/time field type.
func IsTemporalType(t string) bool {
	switch t {
	case TypeLocalDate, TypeInstant, TypeZonedDateTime, TypeDuration:
		return true
	}
	return false
}

// IsNumericType reports whether t is a numeric field type.
func IsNumericType(t string) bool {
	switch t {
	case TypeInteger, TypeLong, TypeFloat, TypeDouble, TypeBigDecimal:
		return true
	}
	return false
}

// Supported field validation rule names.
const (
	RuleRequired  = "required"
	RuleUnique    = "unique"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMinlength = "minlength"
	RuleMaxlength = "maxlength"
	RuleMinbytes  = "minbytes"
	RuleMaxbytes  = "maxbytes"
	RulePattern   = "pattern"
)

var supportedValidationRules = map[string]bool{
	RuleRequired:  true,
	RuleUnique:    true,
	RuleMin:       true,
	RuleMax:       true,
	RuleMinlength: true,
	RuleMaxlength: true,
	RuleMinbytes:  true,
	RuleMaxbytes:  true,
	RulePattern:   true,
}

// IsSupportedValidationRule reports whether rule is a known validation rule.
func IsSupportedValidationRule(rule string) bool {
	return supportedValidationRules[rule]
}

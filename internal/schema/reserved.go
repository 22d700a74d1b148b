package schema

import "strings"

// reservedKeywords are names an entity cannot take when server-side code is
// generated: target-language keywords plus names the generator claims for
// itself.
var reservedKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true,
	"goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true,
	"native": true, "new": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "short": true,
	"static": true, "strictfp": true, "super": true, "switch": true,
	"synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true,
	"while": true,
	// Names claimed by the generated application itself.
	"application": true, "account": true, "entity": true,
}

// reservedTableWords are SQL reserved words that cannot be used verbatim as a
// table or column identifier across the supported databases.
var reservedTableWords = map[string]bool{
	"ALL": true, "ANALYZE": true, "AND": true, "ANY": true, "ARRAY": true,
	"AS": true, "ASC": true, "AUDIT": true, "AUTHORIZATION": true,
	"BETWEEN": true, "BOTH": true, "BY": true, "CASE": true, "CAST": true,
	"CHECK": true, "COLUMN": true, "COMMENT": true, "CONSTRAINT": true,
	"CREATE": true, "CROSS": true, "CURRENT": true, "DATABASE": true,
	"DEFAULT": true, "DELETE": true, "DESC": true, "DISTINCT": true,
	"DROP": true, "ELSE": true, "END": true, "EXCEPT": true, "EXISTS": true,
	"FALSE": true, "FETCH": true, "FILE": true, "FOR": true, "FOREIGN": true,
	"FROM": true, "FULL": true, "GRANT": true, "GROUP": true, "HAVING": true,
	"IN": true, "INDEX": true, "INNER": true, "INSERT": true,
	"INTERSECT": true, "INTO": true, "IS": true, "JOIN": true, "KEY": true,
	"LEADING": true, "LEFT": true, "LIKE": true, "LIMIT": true, "LOCK": true,
	"MODE": true, "NATURAL": true, "NOT": true, "NULL": true, "OF": true,
	"OFFSET": true, "ON": true, "ONLY": true, "OR": true, "ORDER": true,
	"OUTER": true, "PRIMARY": true, "PRIVILEGES": true, "PUBLIC": true,
	"REFERENCES": true, "RIGHT": true, "ROW": true, "ROWS": true,
	"SELECT": true, "SESSION": true, "SET": true, "SIZE": true, "SOME": true,
	"TABLE": true, "THEN": true, "TO": true, "TRAILING": true, "TRUE": true,
	"UNION": true, "UNIQUE": true, "UPDATE": true, "USER": true,
	"USING": true, "VALUES": true, "VIEW": true, "WHEN": true, "WHERE": true,
	"WITH": true,
}

// IsReservedKeyword reports whether name collides with a reserved keyword.
// The check is case-insensitive.
func IsReservedKeyword(name string) bool {
	return reservedKeywords[strings.ToLower(name)]
}

// IsReservedTableWord reports whether the identifier collides with a reserved
// SQL word. The check is case-insensitive.
func IsReservedTableWord(identifier string) bool {
	return reservedTableWords[strings.ToUpper(identifier)]
}

// ReservedSuffix is forbidden as an entity-name ending; the generator claims
// it for detail views.
const ReservedSuffix = "Detail"

// Identifier length thresholds for SQL databases. Identifiers longer than the
// soft limit may be truncated by some engines; identifiers longer than the
// hard limit will not load at all.
const (
	identifierSoftLimit = 30
	identifierHardLimit = 64
)

// IdentifierLimits returns the warning and hard identifier length limits for
// the given database type. checked is false when the database imposes no
// practical identifier limit.
func IdentifierLimits(databaseType string) (soft, hard int, checked bool) {
	if databaseType == DatabaseSQL {
		return identifierSoftLimit, identifierHardLimit, true
	}
	return 0, 0, false
}

package dialect

// MySQL is the Dialect for MySQL / MariaDB.
var MySQL Dialect = mysqlDialect{}

type mysqlDialect struct{}

var mysqlTypes = map[string]string{
	"bool":            "tinyint",
	"int":             "bigint",
	"int8":            "tinyint",
	"int16":           "smallint",
	"int32":           "int",
	"int64":           "bigint",
	"uint":            "bigint_unsigned",
	"uint8":           "tinyint_unsigned",
	"uint16":          "smallint_unsigned",
	"uint32":          "int_unsigned",
	"uint64":          "bigint_unsigned",
	"float32":         "float",
	"float64":         "double",
	"string":          "varchar",
	"[]byte":          "blob",
	"time.Time":       "datetime",
	"time.Duration":   "bigint",
	"json.RawMessage": "json",
	"uuid.UUID":       "char",
	"decimal.Decimal": "decimal",
}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) NormalizeType(goType string) string {
	t := baseType(goType)
	if v, ok := mysqlTypes[t]; ok {
		return v
	}
	return fallbackType(t)
}

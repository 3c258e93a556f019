package dialect

import (
	"encoding/json"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// PostgreSQL is the Dialect for PostgreSQL.
var PostgreSQL Dialect = &postgresDialect{}

type postgresDialect struct {
	mu sync.Mutex
	m  *pgtype.Map
}

// pgValues holds a zero value per Go type so pgx can tell which PostgreSQL
// type it encodes to.
var pgValues = map[string]any{
	"bool":            false,
	"int":             int(0),
	"int8":            int8(0),
	"int16":           int16(0),
	"int32":           int32(0),
	"int64":           int64(0),
	"uint":            uint(0),
	"uint8":           uint8(0),
	"uint16":          uint16(0),
	"uint32":          uint32(0),
	"uint64":          uint64(0),
	"float32":         float32(0),
	"float64":         float64(0),
	"string":          "",
	"[]byte":          []byte(nil),
	"[]string":        []string(nil),
	"[]int":           []int(nil),
	"[]int32":         []int32(nil),
	"[]int64":         []int64(nil),
	"[]float64":       []float64(nil),
	"[]bool":          []bool(nil),
	"time.Time":       time.Time{},
	"time.Duration":   time.Duration(0),
	"json.RawMessage": json.RawMessage(nil),
	"net.IP":          net.IP(nil),
	"net.IPNet":       net.IPNet{},
}

// pgTypes covers types pgx has no default mapping for.
var pgTypes = map[string]string{
	"uuid.UUID":       "uuid",
	"decimal.Decimal": "numeric",
	"map[string]any":  "jsonb",
}

func (*postgresDialect) Name() string { return "postgres" }

func (d *postgresDialect) NormalizeType(goType string) string {
	t := baseType(goType)
	if v, ok := pgTypes[t]; ok {
		return v
	}
	if v, ok := pgValues[t]; ok {
		if name, ok := d.typeName(v); ok {
			return name
		}
	}
	return fallbackType(t)
}

func (d *postgresDialect) typeName(v any) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.m == nil {
		d.m = pgtype.NewMap()
	}
	typ, ok := d.m.TypeForValue(v)
	if !ok {
		return "", false
	}
	// Array types are registered as "_elem".
	if elem, ok := strings.CutPrefix(typ.Name, "_"); ok {
		return elem + "[]", true
	}
	return typ.Name, true
}

package listquery

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/response"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100

	// MaxPage keeps (Page-1)*PageSize within an int.
	MaxPage = math.MaxInt / MaxPageSize

	ParamSearch   = "search"
	ParamOrdering = "ordering"
	ParamPage     = "page"
	ParamPageSize = "page_size"
)

// Kind decides how a filter value is parsed before it reaches the database.
type Kind int

const (
	String Kind = iota
	Bool
	UUID
	Date
)

// Field maps a query parameter name to a column.
type Field struct {
	Name   string
	Column string
	Kind   Kind
}

// Definition lists what a collection endpoint can be filtered, searched and
// ordered by. Column names come from code, never from the request.
type Definition struct {
	Filters      []Field
	Search       []string
	Ordering     []Field
	DefaultOrder string
}

type condition struct {
	column string
	value  any
}

type order struct {
	column string
	desc   bool
}

// Query is a parsed list request.
type Query struct {
	Page     int
	PageSize int

	conditions   []condition
	search       []string
	terms        []string
	orders       []order
	defaultOrder string
}

// Parse reads filters, search terms, ordering and pagination from values.
// Unknown parameters and unknown ordering fields are ignored. A filter value
// that cannot be parsed as its field's kind is rejected.
func (d Definition) Parse(values url.Values) (Query, error) {
	q := Query{
		Page:         parsePositive(values.Get(ParamPage), 1),
		PageSize:     parsePositive(values.Get(ParamPageSize), DefaultPageSize),
		search:       d.Search,
		defaultOrder: d.DefaultOrder,
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}

	for _, f := range d.Filters {
		raw, ok := values[f.Name]
		if !ok || len(raw) == 0 {
			continue
		}
		value, err := parseValue(f.Kind, raw[0])
		if err != nil {
			return Query{}, apperror.New(
				apperror.CodeInvalidInput,
				f.Name+" filter is invalid",
				http.StatusBadRequest,
			)
		}
		q.conditions = append(q.conditions, condition{column: f.Column, value: value})
	}

	if len(d.Search) > 0 {
		q.terms = strings.Fields(values.Get(ParamSearch))
	}

	for _, raw := range strings.Split(values.Get(ParamOrdering), ",") {
		name := strings.TrimSpace(raw)
		desc := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(name, "-")
		if name == "" {
			continue
		}
		for _, f := range d.Ordering {
			if f.Name == name {
				q.orders = append(q.orders, order{column: f.Column, desc: desc})
				break
			}
		}
	}

	return q, nil
}

// Offset is the number of rows skipped for the requested page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Meta builds the pagination block of a list response.
func (q Query) Meta(total int64) response.PaginationMeta {
	return response.NewPaginationMeta(total, q.Page, q.PageSize)
}

// Where applies exact filters and search terms. Every term has to match at
// least one searchable column, case-insensitively.
func (q Query) Where() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range q.conditions {
			db = db.Where(clause.Eq{Column: clause.Column{Name: c.column}, Value: c.value})
		}
		for _, term := range q.terms {
			pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
			exprs := make([]clause.Expression, 0, len(q.search))
			for _, col := range q.search {
				exprs = append(exprs, clause.Expr{
					SQL:  "LOWER(CAST(? AS TEXT)) LIKE ? ESCAPE '!'",
					Vars: []any{clause.Column{Name: col}, pattern},
				})
			}
			db = db.Where(clause.Or(exprs...))
		}
		return db
	}
}

// Order applies the requested ordering followed by the default order.
func (q Query) Order() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, o := range q.orders {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: o.column}, Desc: o.desc})
		}
		if q.defaultOrder != "" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: q.defaultOrder}})
		}
		return db
	}
}

// Paginate limits the result to the requested page.
func (q Query) Paginate() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.PageSize)
	}
}

func parseValue(kind Kind, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch kind {
	case Bool:
		return strconv.ParseBool(strings.ToLower(raw))
	case UUID:
		return uuid.Parse(raw)
	case Date:
		return types.ParseDate(raw)
	default:
		return raw, nil
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

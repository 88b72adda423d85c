package query

import (
	"strings"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

// Order is one sort key.
type Order struct {
	Field string
	Desc  bool
}

// PageRequest carries the paging, sorting and search inputs for an Executor.
// Number is one-based.
type PageRequest struct {
	Number int
	Size   int
	Sort   []Order
	Search string
}

// Index returns the zero-based page index.
func (p PageRequest) Index() int {
	return p.Number - 1
}

// Offset returns the number of rows to skip. Pager.PageRequest guarantees it
// does not overflow.
func (p PageRequest) Offset() int {
	return p.Index() * p.Size
}

// Page is one page of results plus the total match count. Executors echo
// the request's Number and Size.
type Page[D any] struct {
	Content       []D
	TotalElements int64
	Number        int
	Size          int
}

// ParseSort parses a comma-separated list of field[,asc|desc] pairs.
// A field without a direction sorts ascending. An empty string yields no
// ordering.
func ParseSort(raw string) ([]Order, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var (
		orders   []Order
		directed bool
	)
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		switch strings.ToLower(tok) {
		case "":
			return nil, domain.Errorf(domain.ErrBadRequest, "Sort '%s' contains an empty field", raw)
		case "asc", "desc":
			if len(orders) == 0 || directed {
				return nil, domain.Errorf(domain.ErrBadRequest, "Sort '%s' has a direction without a field", raw)
			}
			orders[len(orders)-1].Desc = strings.EqualFold(tok, "desc")
			directed = true
		default:
			orders = append(orders, Order{Field: tok})
			directed = false
		}
	}
	return orders, nil
}

// Package query turns the path and query parameters of a list or get-one
// request into a conjunctive filter predicate plus paging and sorting, and
// hands them to an entity-specific executor.
//
// The flow for a list request:
//
//	req := query.Request{Path: pathParams, Query: queryParams}
//	page, err := pager.GetPage(ctx, req)
//
// Pager validates the query parameters, resolves the reserved parameters
// (page_number, page_size, filter, sort), builds the Filters from every other
// parameter, asks its Translator for a predicate of type S and calls its
// Executor. GetOne runs the same flow and insists on exactly one match.
//
// The package is stateless. A Pager holds only its collaborators and options
// and is safe for concurrent use when they are.
package query

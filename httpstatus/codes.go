package httpstatus

import "fmt"

// Category is one of the broad status classifications that a matcher can
// target instead of a specific code.
type Category string

const (
	CategorySuccess  Category = "success"  // any 2xx status
	CategoryRedirect Category = "redirect" // any 3xx status
	CategoryMissing  Category = "missing"  // exactly 404
	CategoryError    Category = "error"    // any 5xx status
)

// AllCategories lists every valid Category, in the order they are
// documented and reported.
var AllCategories = []Category{
	CategorySuccess,
	CategoryRedirect,
	CategoryMissing,
	CategoryError,
}

type statusEntry struct {
	symbol string
	code   int
}

// statusEntries maps symbolic status names to numeric codes. The table is
// ordered: reverse lookup (SymbolForCode) returns the first entry whose code
// matches, so where two symbols share a code (302, 413, 422), the earlier
// entry is the canonical display name.
//
// The table is owned by this package rather than derived from another
// library so that matcher behavior does not shift underneath us when an
// unrelated dependency is upgraded.
var statusEntries = []statusEntry{
	{"continue", 100},
	{"switching_protocols", 101},
	{"processing", 102},
	{"early_hints", 103},
	{"ok", 200},
	{"created", 201},
	{"accepted", 202},
	{"non_authoritative_information", 203},
	{"no_content", 204},
	{"reset_content", 205},
	{"partial_content", 206},
	{"multi_status", 207},
	{"already_reported", 208},
	{"im_used", 226},
	{"multiple_choices", 300},
	{"moved_permanently", 301},
	{"found", 302},
	{"moved_temporarily", 302},
	{"see_other", 303},
	{"not_modified", 304},
	{"use_proxy", 305},
	{"temporary_redirect", 307},
	{"permanent_redirect", 308},
	{"bad_request", 400},
	{"unauthorized", 401},
	{"payment_required", 402},
	{"forbidden", 403},
	{"not_found", 404},
	{"method_not_allowed", 405},
	{"not_acceptable", 406},
	{"proxy_authentication_required", 407},
	{"request_timeout", 408},
	{"conflict", 409},
	{"gone", 410},
	{"length_required", 411},
	{"precondition_failed", 412},
	{"payload_too_large", 413},
	{"content_too_large", 413},
	{"uri_too_long", 414},
	{"unsupported_media_type", 415},
	{"range_not_satisfiable", 416},
	{"expectation_failed", 417},
	{"misdirected_request", 421},
	{"unprocessable_entity", 422},
	{"unprocessable_content", 422},
	{"locked", 423},
	{"failed_dependency", 424},
	{"too_early", 425},
	{"upgrade_required", 426},
	{"precondition_required", 428},
	{"too_many_requests", 429},
	{"request_header_fields_too_large", 431},
	{"unavailable_for_legal_reasons", 451},
	{"internal_server_error", 500},
	{"not_implemented", 501},
	{"bad_gateway", 502},
	{"service_unavailable", 503},
	{"gateway_timeout", 504},
	{"http_version_not_supported", 505},
	{"variant_also_negotiates", 506},
	{"insufficient_storage", 507},
	{"loop_detected", 508},
	{"bandwidth_limit_exceeded", 509},
	{"not_extended", 510},
	{"network_authentication_required", 511},
}

// CodeForSymbol returns the numeric status code for a symbolic name such as
// "created" or "not_found".
func CodeForSymbol(symbol string) (int, bool) {
	for _, e := range statusEntries {
		if e.symbol == symbol {
			return e.code, true
		}
	}
	return 0, false
}

// SymbolForCode returns a symbolic name for a numeric status code, for use
// in failure messages. When more than one symbol maps to the code, the first
// entry in table order wins.
func SymbolForCode(code int) (string, bool) {
	for _, e := range statusEntries {
		if e.code == code {
			return e.symbol, true
		}
	}
	return "", false
}

// IsCategory reports whether the given name is one of the category labels.
// Category membership is checked before symbolic lookup when a matcher
// target is classified, so these four names can never be used as plain
// status symbols.
func IsCategory(name string) bool {
	for _, c := range AllCategories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Contains reports whether a numeric status code falls inside the category.
// Codes outside all four categories (e.g. 1xx, or 4xx other than 404) belong
// to no category and match nothing.
func (c Category) Contains(code int) bool {
	switch c {
	case CategorySuccess:
		return code >= 200 && code <= 299
	case CategoryRedirect:
		return code >= 300 && code <= 399
	case CategoryMissing:
		return code == 404
	case CategoryError:
		return code >= 500 && code <= 599
	}
	return false
}

// RangeDescription returns the displayed code range for the category, e.g.
// "2xx" for success or "404" for missing.
func (c Category) RangeDescription() string {
	switch c {
	case CategorySuccess:
		return "2xx"
	case CategoryRedirect:
		return "3xx"
	case CategoryMissing:
		return "404"
	case CategoryError:
		return "5xx"
	}
	return string(c)
}

// withArticle returns the category with its indefinite article, as used in
// failure messages ("a success", "an error").
func (c Category) withArticle() string {
	if c == CategoryError {
		return "an error"
	}
	return fmt.Sprintf("a %s", c)
}

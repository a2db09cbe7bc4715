package route

import (
	"regexp"
	"strings"
)

// Shape is a syntactic pattern a path segment may match.
type Shape string

const (
	// ShapeSEOListingURL is a listing slug followed by a 6-char suffix, e.g. /macbook-pro-Ab12Cd.
	ShapeSEOListingURL Shape = "seo_listing_url"
	// ShapeProfileNumericID is a 6-digit profile code.
	ShapeProfileNumericID Shape = "profile_numeric_id"
	// ShapeProfileUUIDPrefix is the first 6 hex characters of a profile UUID.
	ShapeProfileUUIDPrefix Shape = "profile_uuid_prefix"
	// ShapeProfileFullUUID is a canonical 8-4-4-4-12 UUID.
	ShapeProfileFullUUID Shape = "profile_full_uuid"
)

var (
	seoURLPattern     = regexp.MustCompile(`^/[a-z0-9-]+-[a-zA-Z0-9]{6}$`)
	numericIDPattern  = regexp.MustCompile(`^[0-9]{6}$`)
	uuidPrefixPattern = regexp.MustCompile(`(?i)^[A-F0-9]{6}$`)
	fullUUIDPattern   = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// priority lists every shape in the order candidates are tried.
var priority = []struct {
	shape   Shape
	matches func(segment string) bool
}{
	{ShapeSEOListingURL, func(s string) bool { return seoURLPattern.MatchString("/" + s) }},
	{ShapeProfileNumericID, numericIDPattern.MatchString},
	{ShapeProfileUUIDPrefix, uuidPrefixPattern.MatchString},
	{ShapeProfileFullUUID, fullUUIDPattern.MatchString},
}

// Segment strips a single leading slash from path.
func Segment(path string) string {
	return strings.TrimPrefix(path, "/")
}

// Classify returns every shape path matches, highest priority first.
// A segment may match more than one shape: "123456" is both a numeric
// profile code and a UUID prefix. An empty segment matches nothing.
func Classify(path string) []Shape {
	segment := Segment(path)
	if segment == "" {
		return nil
	}

	var shapes []Shape

	for _, candidate := range priority {
		if candidate.matches(segment) {
			shapes = append(shapes, candidate.shape)
		}
	}

	return shapes
}

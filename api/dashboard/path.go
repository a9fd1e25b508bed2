package dashboard

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/oapi-codegen/runtime"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}/]+)\}`)

// PathParameters returns the placeholder names of a path template in order
// of appearance.
func PathParameters(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// ExpandPath substitutes every {name} placeholder in template with the
// path-escaped value of params[name]. Placement is by name, so the order of
// params is irrelevant; text outside placeholders is left untouched.
// A placeholder without a non-empty value yields a ValidationError.
func ExpandPath(template string, params map[string]string) (string, error) {
	var expandErr error

	expanded := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if expandErr != nil {
			return match
		}

		name := match[1 : len(match)-1]
		value, ok := params[name]
		if !ok || value == "" {
			expandErr = missingParameter(name)
			return match
		}

		styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
		if err != nil {
			expandErr = errors.Wrapf(err, "failed to encode path parameter %s", name)
			return match
		}
		return styled
	})

	if expandErr != nil {
		return "", expandErr
	}
	return expanded, nil
}

var schemeHostPattern = regexp.MustCompile(`^https?://[^/]+`)

// cleanURL collapses runs of slashes in the path portion of rawURL.
// The scheme separator is preserved; URLs without an http(s) scheme and
// host are rejected.
func cleanURL(rawURL string) (string, error) {
	prefix := schemeHostPattern.FindString(rawURL)
	if prefix == "" {
		return "", errors.Newf("invalid URL format: %q", rawURL)
	}

	rest := rawURL[len(prefix):]
	for strings.Contains(rest, "//") {
		rest = strings.ReplaceAll(rest, "//", "/")
	}

	return prefix + rest, nil
}

// addQuery form-encodes value under name into query when value is non-nil.
func addQuery[T any](query url.Values, name string, value *T) error {
	if value == nil {
		return nil
	}

	fragment, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, *value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode query parameter %s", name)
	}

	parsed, err := url.ParseQuery(fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to parse query parameter %s", name)
	}

	for k, vs := range parsed {
		query[k] = append(query[k], vs...)
	}

	return nil
}

package pathutil

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when an id in the URL is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive int64 id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID reads the named wildcard of the matched route pattern.
//
// Example:
//
//	// mux.Handle("GET /articles/{id}", h)
//	id, err := PathID(r, "id")
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(r.PathValue(name))
}

// QueryIDs parses a comma separated id list such as ?ids=1,2,3.
// ok is false when the parameter is absent.
func QueryIDs(r *http.Request, name string) (ids []int64, ok bool, err error) {
	raw, present := r.URL.Query()[name]
	if !present {
		return nil, false, nil
	}
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := ParseID(part)
			if err != nil {
				return nil, true, err
			}
			ids = append(ids, id)
		}
	}
	return ids, true, nil
}

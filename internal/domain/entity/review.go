package entity

import (
	"fmt"
	"strings"
	"time"
)

// ReviewType classifies the tone of a review.
type ReviewType string

const (
	ReviewPositive ReviewType = "POSITIVE"
	ReviewNeutral  ReviewType = "NEUTRAL"
	ReviewCritical ReviewType = "CRITICAL"
)

// reviewTypeCodes is the storage mapping for ReviewType. Codes are persisted,
// so existing entries must never be renumbered.
var reviewTypeCodes = map[ReviewType]int16{
	ReviewPositive: 0,
	ReviewNeutral:  1,
	ReviewCritical: 2,
}

var reviewTypesByCode = func() map[int16]ReviewType {
	m := make(map[int16]ReviewType, len(reviewTypeCodes))
	for t, c := range reviewTypeCodes {
		m[c] = t
	}
	return m
}()

// Code returns the stored small-integer code for the review type.
func (t ReviewType) Code() (int16, error) {
	c, ok := reviewTypeCodes[t]
	if !ok {
		return 0, fmt.Errorf("unknown review type %q", string(t))
	}
	return c, nil
}

// Valid reports whether t is one of the known review types.
func (t ReviewType) Valid() bool {
	_, ok := reviewTypeCodes[t]
	return ok
}

// ReviewTypeFromCode maps a stored code back to its ReviewType.
func ReviewTypeFromCode(code int16) (ReviewType, error) {
	t, ok := reviewTypesByCode[code]
	if !ok {
		return "", fmt.Errorf("unknown review type code %d", code)
	}
	return t, nil
}

// ParseReviewType converts a review type name into a ReviewType.
func ParseReviewType(s string) (ReviewType, error) {
	t := ReviewType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown review type %q", s)
	}
	return t, nil
}

// Review is a single user's opinion on an article.
type Review struct {
	ID        int64
	Type      ReviewType
	CreatedAt time.Time
	Content   string
	AuthorID  int64
	ArticleID int64
}

func (r Review) WithID(id int64) Review {
	r.ID = id
	return r
}

func (r Review) WithContent(content string) Review {
	r.Content = content
	return r
}

func (r Review) WithType(t ReviewType) Review {
	r.Type = t
	return r
}

package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
)

// QueryString returns a trimmed query value, or nil when the key is absent or blank.
func QueryString(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// QueryInt parses an integer query value. Absent or blank yields nil.
func QueryInt(c *gin.Context, key string) (*int, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, invalidQuery(key, "must be an integer")
	}
	return &n, nil
}

// QueryBool accepts true/false/1/0 in any case.
func QueryBool(c *gin.Context, key string) (*bool, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	var b bool
	switch strings.ToLower(*raw) {
	case "true", "1":
		b = true
	case "false", "0":
		b = false
	default:
		return nil, invalidQuery(key, "must be a boolean (true, false, 1, 0)")
	}
	return &b, nil
}

// QueryList splits a comma separated value and drops blanks. Repeated keys are merged.
func QueryList(c *gin.Context, key string) []string {
	values, ok := c.GetQueryArray(key)
	if !ok {
		return nil
	}
	return SplitList(values...)
}

// SplitList splits every value on commas and keeps the non-blank trimmed parts in order.
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func invalidQuery(key, reason string) error {
	return apperrors.NewValidationError(
		fmt.Sprintf("invalid query parameter %q", key),
		map[string]string{key: reason},
	)
}

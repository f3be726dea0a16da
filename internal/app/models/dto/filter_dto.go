package dto

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// MentorFilter narrows the mentor listing.
// Category is accepted for compatibility with the UI and has no effect.
type MentorFilter struct {
	Department *string
	Skills     []string
	Category   *string
}

// NoteFilter narrows the note listing
type NoteFilter struct {
	Dept       *string
	Semester   *int
	CourseCode *string
	Search     *string
}

// EventFilter narrows the event listing
type EventFilter struct {
	Tags     []string
	Upcoming *bool
}

type ClubFilter struct {
	Category *string
}

type OpportunityFilter struct {
	Type *string
	Tags []string
}

type ProjectIfpFilter struct {
	Dept *string
	Area *string
}

type LinkFilter struct {
	Group  *string
	Search *string
}

type DiscussionFilter struct {
	Platform  *string
	TopicTags []string
}

// Query encodes the filter the way the REST surface parses it.
// Equal filters always produce equal encodings.
func (f MentorFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "department", f.Department)
	setList(v, "skills", f.Skills)
	setString(v, "category", f.Category)
	return v
}

func (f NoteFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "dept", f.Dept)
	if f.Semester != nil {
		v.Set("semester", strconv.Itoa(*f.Semester))
	}
	setString(v, "courseCode", f.CourseCode)
	setString(v, "search", f.Search)
	return v
}

func (f EventFilter) Query() url.Values {
	v := url.Values{}
	setList(v, "tags", f.Tags)
	if f.Upcoming != nil {
		v.Set("upcoming", strconv.FormatBool(*f.Upcoming))
	}
	return v
}

func (f ClubFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "category", f.Category)
	return v
}

func (f OpportunityFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "type", f.Type)
	setList(v, "tags", f.Tags)
	return v
}

func (f ProjectIfpFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "dept", f.Dept)
	setString(v, "area", f.Area)
	return v
}

func (f LinkFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "group", f.Group)
	setString(v, "search", f.Search)
	return v
}

func (f DiscussionFilter) Query() url.Values {
	v := url.Values{}
	setString(v, "platform", f.Platform)
	setList(v, "topicTags", f.TopicTags)
	return v
}

func setString(v url.Values, key string, s *string) {
	if s != nil && *s != "" {
		v.Set(key, *s)
	}
}

// setList sorts and dedupes list values; overlap filters do not depend on order.
func setList(v url.Values, key string, values []string) {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, s := range values {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return
	}
	sort.Strings(out)
	v.Set(key, strings.Join(out, ","))
}

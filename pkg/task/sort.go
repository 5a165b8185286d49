package task

import (
	"cmp"
	"slices"
	"strings"
)

// Each comparator returns 2 when it cannot decide, handing over to the next one.

func sortNil(l, r *Draft) int {
	if l == nil && r != nil {
		return 1
	} else if l != nil && r == nil {
		return -1
	} else if l == nil && r == nil {
		return 0
	}
	return 2
}

func sortDate(l, r *Draft) int {
	if l.Date != nil && r.Date == nil {
		return -1
	} else if l.Date == nil && r.Date != nil {
		return 1
	} else if l.Date != nil && r.Date != nil {
		if c := l.Date.Compare(*r.Date); c != 0 {
			return c
		}
	}
	return 2
}

// untimed drafts come first within a day
func sortTime(l, r *Draft) int {
	if l.Time == nil && r.Time != nil {
		return -1
	} else if l.Time != nil && r.Time == nil {
		return 1
	} else if l.Time != nil && r.Time != nil {
		lt, rt := l.Time.Time, r.Time.Time
		if c := cmp.Compare(lt.Hour*3600+lt.Minute*60+lt.Second, rt.Hour*3600+rt.Minute*60+rt.Second); c != 0 {
			return c
		}
	}
	return 2
}

func sortTitle(l, r *Draft) int {
	if c := strings.Compare(strings.ToLower(l.Title), strings.ToLower(r.Title)); c != 0 {
		return c
	}
	return 2
}

// SortDrafts orders drafts by date, then time, then title; undated drafts go last.
func SortDrafts(drafts []*Draft) []*Draft {
	out := slices.Clone(drafts)
	slices.SortStableFunc(out, func(l, r *Draft) int {
		for _, sorter := range []func(l, r *Draft) int{sortNil, sortDate, sortTime, sortTitle} {
			if res := sorter(l, r); res != 2 {
				return res
			}
		}
		return 0
	})
	return out
}

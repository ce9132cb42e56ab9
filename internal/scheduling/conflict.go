package scheduling

import "context"

// overlaps reports whether an existing [es,ee) range collides with a proposed [ns,ne)
// range. All four times must already be normalized "HH:MM" strings. The three cases are
// kept as the source system enumerated them: proposed start inside existing, proposed end
// inside existing, existing fully contained in proposed. Adjacent ranges do not overlap.
func overlaps(es, ee, ns, ne string) bool {
	if es <= ns && ee > ns {
		return true
	}
	if es < ne && ee >= ne {
		return true
	}
	if es >= ns && ee <= ne {
		return true
	}
	return false
}

// findConflict scans the resource's non-cancelled plannings on date and returns the first
// entry overlapping [start,end), or nil.
func (p *Planner) findConflict(ctx context.Context, kind ResourceKind, resourceID int64, date, start, end string) (*Entry, error) {
	entries, err := p.store.EntriesFor(ctx, kind, resourceID, date)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if overlaps(entries[i].Start, entries[i].End, start, end) {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// coveringWindow returns the first active window that fully contains [start,end).
// Partial overlap with a window is not enough, the whole proposed range must fit
// inside a single window.
func coveringWindow(windows []Window, start, end string) *Window {
	for i := range windows {
		if windows[i].Start <= start && windows[i].End >= end {
			return &windows[i]
		}
	}
	return nil
}

// HasCoveringWindow reports whether some window fully contains [start,end). Callers
// outside the planner use it to apply the same containment rule on reschedules.
func HasCoveringWindow(windows []Window, start, end string) bool {
	return coveringWindow(windows, start, end) != nil
}

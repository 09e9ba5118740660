package attendancelog

import (
	"github.com/staffdeck/workforce-console/internal/domain/attendance"
)

// Page returns the 1-based current page.
func (v *View) Page() int { return v.page }

// TotalPages returns ceil(len(records) / PageSize).
func (v *View) TotalPages() int {
	return (len(v.records) + PageSize - 1) / PageSize
}

// CanPrev reports whether the previous-page control is enabled.
func (v *View) CanPrev() bool { return v.page > 1 }

// CanNext reports whether the next-page control is enabled.
func (v *View) CanNext() bool { return v.page < v.TotalPages() }

// First jumps to page 1.
func (v *View) First() { v.page = 1 }

// Prev moves one page back; a no-op on page 1.
func (v *View) Prev() {
	if v.CanPrev() {
		v.page--
	}
}

// Next moves one page forward; a no-op on the last page.
func (v *View) Next() {
	if v.CanNext() {
		v.page++
	}
}

// Last jumps to the last page (page 1 when the list is empty).
func (v *View) Last() {
	if total := v.TotalPages(); total > 0 {
		v.page = total
	} else {
		v.page = 1
	}
}

// SetPage jumps to page p when it is in range; out-of-range values are
// ignored.
func (v *View) SetPage(p int) {
	if p >= 1 && p <= v.TotalPages() {
		v.page = p
	}
}

// VisibleRecords returns the current page's rows, converted for rendering.
func (v *View) VisibleRecords() []attendance.RecordResponse {
	start := (v.page - 1) * PageSize
	if start >= len(v.records) {
		return []attendance.RecordResponse{}
	}
	end := start + PageSize
	if end > len(v.records) {
		end = len(v.records)
	}

	rows := make([]attendance.RecordResponse, 0, end-start)
	for _, r := range v.records[start:end] {
		rows = append(rows, attendance.ToResponse(r))
	}
	return rows
}

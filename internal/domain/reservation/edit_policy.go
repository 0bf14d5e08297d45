package reservation

// Edit gating by lifecycle status. This is a pure lookup: it never changes
// the status itself, and the caller decides how a locked field is surfaced.
//
//   - confirmed: every field is editable.
//   - checked_in / checked_out: only the two free-text fields stay open.
//   - cancelled: the record is frozen.
var editableByStatus = map[Status]map[Field]bool{
	StatusConfirmed:  allFieldsEditable(),
	StatusCheckedIn:  freeTextOnly(),
	StatusCheckedOut: freeTextOnly(),
	StatusCancelled:  {},
}

func allFieldsEditable() map[Field]bool {
	m := make(map[Field]bool, len(AllFields))
	for _, f := range AllFields {
		m[f] = true
	}
	return m
}

func freeTextOnly() map[Field]bool {
	return map[Field]bool{
		FieldSpecialRequests: true,
		FieldNotes:           true,
	}
}

// CanEdit reports whether the given field may change while the reservation is
// in the given status. Unknown statuses and unknown fields are locked.
func CanEdit(status Status, field Field) bool {
	fields, ok := editableByStatus[status]
	if !ok {
		return false
	}
	return fields[field]
}

// EditableFields returns the fields open for edit in the given status.
func EditableFields(status Status) []Field {
	allowed := editableByStatus[status]
	result := make([]Field, 0, len(allowed))
	for _, f := range AllFields {
		if allowed[f] {
			result = append(result, f)
		}
	}
	return result
}

// AcceptsEdits reports whether any field at all can change; a false result
// means the containing form should suppress its submit action entirely.
func AcceptsEdits(status Status) bool {
	return len(editableByStatus[status]) > 0
}

//go:build unit

package reservation_test

import (
	"testing"

	"hoteldesk/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

var freeTextFields = map[reservation.Field]bool{
	reservation.FieldSpecialRequests: true,
	reservation.FieldNotes:           true,
}

func TestCanEdit(t *testing.T) {
	t.Run("confirmed: every field editable", func(t *testing.T) {
		for _, f := range reservation.AllFields {
			assert.True(t, reservation.CanEdit(reservation.StatusConfirmed, f), "field %s", f)
		}
	})

	t.Run("checked_in: only free-text fields editable", func(t *testing.T) {
		for _, f := range reservation.AllFields {
			want := freeTextFields[f]
			assert.Equal(t, want, reservation.CanEdit(reservation.StatusCheckedIn, f), "field %s", f)
		}
	})

	t.Run("checked_out: only free-text fields editable", func(t *testing.T) {
		for _, f := range reservation.AllFields {
			want := freeTextFields[f]
			assert.Equal(t, want, reservation.CanEdit(reservation.StatusCheckedOut, f), "field %s", f)
		}
	})

	t.Run("cancelled: nothing editable, notes included", func(t *testing.T) {
		for _, f := range reservation.AllFields {
			assert.False(t, reservation.CanEdit(reservation.StatusCancelled, f), "field %s", f)
		}
	})

	t.Run("unknown status locks everything", func(t *testing.T) {
		assert.False(t, reservation.CanEdit(reservation.Status("bogus"), reservation.FieldNotes))
	})

	t.Run("unknown field locked in every status", func(t *testing.T) {
		for _, s := range []reservation.Status{
			reservation.StatusConfirmed,
			reservation.StatusCheckedIn,
			reservation.StatusCheckedOut,
			reservation.StatusCancelled,
		} {
			assert.False(t, reservation.CanEdit(s, reservation.Field("room_color")), "status %s", s)
		}
	})
}

func TestAcceptsEdits(t *testing.T) {
	assert.True(t, reservation.AcceptsEdits(reservation.StatusConfirmed))
	assert.True(t, reservation.AcceptsEdits(reservation.StatusCheckedIn))
	assert.True(t, reservation.AcceptsEdits(reservation.StatusCheckedOut))
	assert.False(t, reservation.AcceptsEdits(reservation.StatusCancelled))
}

func TestEditableFields(t *testing.T) {
	assert.Len(t, reservation.EditableFields(reservation.StatusConfirmed), len(reservation.AllFields))
	assert.ElementsMatch(t,
		[]reservation.Field{reservation.FieldSpecialRequests, reservation.FieldNotes},
		reservation.EditableFields(reservation.StatusCheckedIn))
	assert.Empty(t, reservation.EditableFields(reservation.StatusCancelled))
}

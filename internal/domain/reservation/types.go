package reservation

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// Field is a closed enumeration of the editable reservation fields. Adding a
// field here forces an editability decision in the policy table; nothing
// defaults to editable.
type Field string

const (
	FieldGuestName       Field = "guest_name"
	FieldGuestEmail      Field = "guest_email"
	FieldGuestPhone      Field = "guest_phone"
	FieldIDDocument      Field = "id_document"
	FieldCheckInDate     Field = "check_in_date"
	FieldCheckOutDate    Field = "check_out_date"
	FieldAdults          Field = "adults"
	FieldChildren        Field = "children"
	FieldRoomID          Field = "room_id"
	FieldBaseRate        Field = "base_rate"
	FieldExtraCharges    Field = "extra_charges"
	FieldDiscount        Field = "discount"
	FieldDeposit         Field = "deposit"
	FieldSpecialRequests Field = "special_requests"
	FieldNotes           Field = "notes"
)

// AllFields lists every reservation field the edit policy governs.
var AllFields = []Field{
	FieldGuestName,
	FieldGuestEmail,
	FieldGuestPhone,
	FieldIDDocument,
	FieldCheckInDate,
	FieldCheckOutDate,
	FieldAdults,
	FieldChildren,
	FieldRoomID,
	FieldBaseRate,
	FieldExtraCharges,
	FieldDiscount,
	FieldDeposit,
	FieldSpecialRequests,
	FieldNotes,
}

func (f Field) String() string {
	return string(f)
}

func (f Field) IsValid() bool {
	for _, known := range AllFields {
		if f == known {
			return true
		}
	}
	return false
}

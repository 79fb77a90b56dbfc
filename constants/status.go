package constants

// Reservation status
const (
	ReservationStatusPending   = 0
	ReservationStatusConfirmed = 1
	ReservationStatusCancelled = 2
)

// Member roles within a hostel. Guest is the implicit role of any
// principal without a member row.
const (
	RoleGuest   = 0
	RoleStaff   = 1
	RoleManager = 2
	RoleOwner   = 3
)

// Supported default languages for a hostel
const (
	LangES = "es"
	LangEN = "en"
	LangPT = "pt"
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

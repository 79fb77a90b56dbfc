package dto

// ActorResponse carries the guest/user identity attached to a reservation.
type ActorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

package pets

type CreateRequest struct {
	Name string
}

// UpdateRequest carries a partial update; nil fields are left untouched.
// Values are written verbatim, matching the raw update route.
type UpdateRequest struct {
	Name      *string
	Happiness *int
	Health    *int
	Coins     *int
}

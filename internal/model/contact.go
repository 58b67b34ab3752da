package model

// Contact is a person shown on the contact card.
// It carries no identity; the id in the URL only selects which card the page links back to.
type Contact struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
}

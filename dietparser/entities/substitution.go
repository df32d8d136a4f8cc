package entities

// SubstitutionOption is one interchangeable alternative inside a
// substitution group.
type SubstitutionOption struct {
	Name     string `json:"name"`
	Quantity string `json:"qty"`
}

// SubstitutionGroup is the set of food options associated with one CAD code.
// Code is always positive; Options is never empty: a group parsed without
// options carries a synthetic option mirroring the title so downstream
// consumers never see an empty choice set.
type SubstitutionGroup struct {
	Code    int                  `json:"cadCode"`
	Title   string               `json:"title"`
	Options []SubstitutionOption `json:"options"`
}

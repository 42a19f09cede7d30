package entity

// ConsentRecord is an append-only log entry of a visitor's consent choice.
type ConsentRecord struct {
	BaseSimple
	Email   *string `db:"email"`
	Kind    string  `db:"kind"` // cookies, marketing
	Granted bool    `db:"granted"`
	Locale  string  `db:"locale"`
}

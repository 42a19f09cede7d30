package entity

type Partner struct {
	Base
	Name string `db:"name"`
	Slug string `db:"slug"`
	// Price1PaxCents is the session price for exactly one participant,
	// Price2PlusCents the per-person price for two or more.
	Price1PaxCents  int64 `db:"price_1pax_cents"`
	Price2PlusCents int64 `db:"price_2plus_cents"`
	// FeePercent is the deposit fraction (0-100) collected upfront.
	FeePercent int  `db:"fee_percent"`
	IsActive   bool `db:"is_active"`
}

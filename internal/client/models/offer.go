package models

// Offer is a purchase offer made on a listing.
type Offer struct {
	CarID    int64
	Offer    string
	Comments string
}

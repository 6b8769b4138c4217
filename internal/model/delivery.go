package model

// Delivery is one pickup-and-drop request. ID is the payload-marker
// character emitted in the move string during load/unload dwells.
type Delivery struct {
	ID      byte
	Pickup  byte // shelf letter
	Dropoff byte // shelf letter
}

package gallery

import (
	"time"

	"github.com/uptrace/bun"
)

// Record is one stored print. Template holds the serialized native
// template verbatim; the store never reinterprets or rewrites it.
type Record struct {
	bun.BaseModel `bun:"table:prints,alias:p"`

	// ID is a UUID assigned on first save.
	ID string `bun:"id,pk" json:"id"`

	// Username is the identity the print was enrolled for.
	Username string `bun:"username,notnull" json:"username"`

	// Finger is the fprint.Finger value the print belongs to.
	Finger int `bun:"finger,notnull,default:0" json:"finger"`

	// Driver and DeviceID record which sensor produced the print. The
	// native layer uses them to decide comparison compatibility.
	Driver   string `bun:"driver" json:"driver"`
	DeviceID string `bun:"device_id" json:"device_id"`

	// EnrolledAt is when the print was saved.
	EnrolledAt time.Time `bun:"enrolled_at,nullzero" json:"enrolled_at"`

	// Template is the serialized print, byte-for-byte as the native
	// library emitted it.
	Template []byte `bun:"template,notnull" json:"template"`
}

// Package gallery persists enrolled fingerprint prints on the host.
//
// # Overview
//
// A Store keeps serialized print templates together with their
// metadata (username, finger, originating driver/device) in a local
// SQLite database. Template bytes are stored verbatim: what Serialize
// produced is exactly what comes back, so a round trip through the
// store never alters the native template format.
//
// # Basic Usage
//
//	store, err := gallery.Open("/var/lib/fprintctl/gallery.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	data, _ := print.Serialize()
//	rec := &gallery.Record{
//	    Username: print.Username(),
//	    Finger:   int(print.Finger()),
//	    Driver:   print.Driver(),
//	    DeviceID: print.DeviceID(),
//	    Template: data,
//	}
//	if err := store.Save(ctx, rec); err != nil {
//	    log.Fatal(err)
//	}
//
// # Archives
//
// Export and Import move the whole gallery through a
// Zstandard-compressed JSON archive, usable for backup or transfer
// between hosts.
//
// The store does no comparison: matching a live capture against stored
// prints always goes through a fprint.Device operation.
package gallery

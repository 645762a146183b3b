// Package commands implements the fprintctl CLI: device listing,
// enrollment, verification and identification against the local print
// gallery, plus gallery maintenance (list, delete, export, import).
package commands

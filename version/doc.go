// Package version provides lenient semantic version parsing and comparison
// for binding version gates.
//
// Binding drivers report versions in whatever form their native toolkit
// uses, frequently two-part forms like "4.6" or distribution-decorated
// forms like "5.12.3-1". Parse normalizes these into semver before
// comparison so the activation gate never mis-orders "4.10" and "4.9".
package version

// Package timing implements the timing-box manager: arrival/required
// time propagation through opaque delay-table "boxes", with per-box and
// per-manager traversal ids to avoid redundant recomputation.
package timing

// Package organize folders canonicalized videos so each file lives inside a
// directory named after its own stem.
package organize

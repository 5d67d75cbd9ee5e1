// Package staterr names the fatal conditions of this module's error
// taxonomy: programmer errors that abort via panic. Routing misses (a post to
// an unknown id, a publish with no subscribers) are silent and have no type
// here.
//
// Each condition is a small struct with its own Error method.
package staterr

// Package fale fetches remote HTML documents and rewrites every case variant
// of a target word in their visible text, leaving markup and attribute values
// such as link targets untouched.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, htmltomarkdown/).
package fale

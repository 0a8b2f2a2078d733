// Package action models a single named, categorized operation against an
// external system and the tagged outcome it settles to. Actions are the unit
// of work executed by the batch processor; they are single-use and never
// retry on their own.
package action

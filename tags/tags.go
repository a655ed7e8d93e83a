// Package tags names the resolv tags of the level spatial index.
package tags

const (
	ResolvSolid    = "solid"
	ResolvOneWay   = "platform"
	ResolvPushable = "pushable"
)

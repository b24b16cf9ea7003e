// Package timinglog adapts logging backends for use as timing notification sinks.
package timinglog

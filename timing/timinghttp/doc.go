/*
Package timinghttp integrates the timing package with HTTP servers: it decorates
handlers so that each request is measured as a stopwatch operation, and it exposes
the accumulated statistics as a JSON endpoint.
*/
package timinghttp

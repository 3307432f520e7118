// Package scan decodes a batch of boarding passes and selects the seat with
// the highest identifier.
//
// A Scanner runs either sequentially or over a bounded pool of workers. Each
// worker writes only the result slots of the passes it picked up, so results
// keep the input order and no locking is involved. When several passes fail,
// the error of the earliest one is returned, whatever the worker timing.
package scan

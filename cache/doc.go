// Package cache implements the load cache, the public entry point of the
// asset subsystem.
//
// Load resolves a reference, deduplicates concurrent identical requests,
// drives the fetch, hands the bytes to the container decoder or the script
// admission gate, and stores the finished view keyed by kind and locator.
//
// A key is always in exactly one of three states: absent, pending, or
// resolved. N concurrent loads of one key perform one fetch and one parse;
// every waiter observes the same view instance or the same error. Failures
// leave the key absent so a later call retries from scratch; a stored view
// is immutable for the process lifetime and never evicted.
package cache

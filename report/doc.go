// Package report tabulates and analyzes search results: an ASCII
// comparison table, a ranked breakdown of successful and failed
// strategies, a weighted best-strategy pick and a plain-text file
// export. Each Comparison carries a UUID run identifier and a
// timestamp so saved reports never collide.
package report

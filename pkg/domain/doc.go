// Package domain contains the core types shared by the hash engine and its
// callers: the closed set of supported algorithms, fingerprint results and
// crack results. They carry no behaviour beyond parsing and are free of
// infrastructure concerns.
package domain

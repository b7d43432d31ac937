// Package domain contains the core model for romcalc: Roman numeral decoding,
// arithmetic evaluation, English number words and the per-line outcome of an
// expression.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
package domain

// Package catalog holds the static tables of languages, frameworks,
// licenses, package managers and README styles that blazestart can
// scaffold, together with the language-gating rules between them.
//
// Every table is read-only. Accessors return copies so callers can
// sort or filter the result without affecting other users.
package catalog

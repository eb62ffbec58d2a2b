// Package locale builds the translation table used for entity names.
//
// The upstream locale dump stores its strings as one flat array of
// alternating keys and values. NewTable pairs them up and Get resolves keys
// case-insensitively, returning "?" for anything untranslated.
package locale

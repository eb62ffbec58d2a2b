// Package protos extracts enum definitions from the game's protocol
// description text.
//
// The upstream proto file contains blocks of the form
//
//	enum Form {
//		PIKACHU_NORMAL = 0;
//		PIKACHU_COSPLAY = 1;
//	}
//
// surrounded by arbitrary other content. Index locates a block by name
// (case-insensitively), parses its entries, and caches the result so repeated
// resolution of the same enum is O(1). An Index is built per catalog reload
// because the underlying proto text may change between reloads.
package protos

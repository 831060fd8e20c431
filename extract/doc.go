// Package extract pulls typed values out of free text.
//
// Every extractor returns the residue of its input next to what it found,
// so extractors chain: the residue of one is the input of the next.
package extract

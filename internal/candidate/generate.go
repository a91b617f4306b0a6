package candidate

import (
	"strconv"
	"unicode"
)

// Alphabet is the symbol set of the brute-force stage, in emission order.
const Alphabet = "K@_!#$%^&*ABCDEFGHIJLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	// SuffixBatch is the number of numeric suffixes appended to one case variant.
	SuffixBatch = 10000
	// prefixLength is the length of the brute-force prefixes held in memory;
	// the last symbol is added per batch.
	prefixLength = 3
	// maxVariantRunes caps the words expanded into case variants at 2^24
	// variants each.
	maxVariantRunes = 24
)

// caseVariants returns all 2^n upper/lower-case variants of word, where bit j
// of the variant index upper-cases rune j.
func caseVariants(word string) []string {
	runes := []rune(word)
	n := 1 << len(runes)
	out := make([]string, 0, n)
	buf := make([]rune, len(runes))
	for i := 0; i < n; i++ {
		for j, r := range runes {
			if i>>j&1 == 1 {
				buf[j] = unicode.ToUpper(r)
			} else {
				buf[j] = r
			}
		}
		out = append(out, string(buf))
	}
	return out
}

// appendSuffixed appends base followed by each of 0..count-1, unpadded.
func appendSuffixed(dst []string, base string, count int) []string {
	for n := 0; n < count; n++ {
		dst = append(dst, base+strconv.Itoa(n))
	}
	return dst
}

// prefixes returns every prefixLength-symbol string over Alphabet in
// depth-first alphabet order.
func prefixes() []string {
	size := len(Alphabet)
	out := make([]string, 0, size*size*size)
	var buf [prefixLength]byte
	for i := 0; i < size; i++ {
		buf[0] = Alphabet[i]
		for j := 0; j < size; j++ {
			buf[1] = Alphabet[j]
			for k := 0; k < size; k++ {
				buf[2] = Alphabet[k]
				out = append(out, string(buf[:]))
			}
		}
	}
	return out
}

// appendCompleted appends prefix followed by each Alphabet symbol.
func appendCompleted(dst []string, prefix string) []string {
	for i := 0; i < len(Alphabet); i++ {
		dst = append(dst, prefix+Alphabet[i:i+1])
	}
	return dst
}

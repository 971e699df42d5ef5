// Package stringutils holds utility methods for working with strings.
package stringutils

import (
	"math/rand"
	"time"
)

const (
	// CharsetUnicode represents set of Unicode characters (contain multi byte runes).
	CharsetUnicode = "abcdefghijklmnopqrstuvwxyz" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" + "ğŸ¤¡ğŸ¤–ğŸ§ŸğŸ‹ğŸ¥‡â˜ŸğŸ’„ğŸ²ğŸŒ“ğŸŒªğŸ‡µğŸ‡±âš¥â„â˜ âŒ˜Â©Â®ğŸ’µâ“µ " + "Ä™Å›Ä‡Å¼ÅºÅ‚Ã³Å„"

	// CharsetASCII represents set containing only ASCII characters.
	CharsetASCII = " !#$%&'()*+,-.0123456789:;=?@ABCDEFGHIJKLMNOPQRSTUVWXYZ^_`abcdefghijklmnopqrstuvwxyz|~"

	// CharsetPolish represents set of only polish letters.
	CharsetPolish = "Ä„Ä…Ä†Ä‡Ä˜Ä™ÅÅ‚ÅƒÅ„Ã“Ã³ÅšÅ›Å¹ÅºÅ»Å¼abcdefghijklmnoprstuwvxyzABCDEFGHIJKLMNOPRSTUWVXYZ"

	// CharsetEnglish represents set of only english letters.
	CharsetEnglish = "abcdefghijklmnoprstuwvxyzABCDEFGHIJKLMNOPRSTUWVXYZ"

	// CharsetRussian represents set of only russian letters.
	CharsetRussian = "ĞĞ°Ğ‘Ğ±Ğ’Ğ²Ğ“Ğ³Ğ”Ğ´Ğ•ĞµĞÑ‘Ğ–Ğ¶Ğ—Ğ·Ğ˜Ğ¸Ğ™Ğ¹ĞšĞºĞ›Ğ»ĞœĞ¼ĞĞ½ĞĞ¾ĞŸĞ¿Ğ Ñ€Ğ¡ÑĞ¢Ñ‚Ğ£ÑƒĞ¤Ñ„Ğ¥Ñ…Ğ¦Ñ†Ğ§Ñ‡Ğ¨ÑˆĞ©Ñ‰ĞªÑŠĞ«Ñ‹Ğ¬ÑŒĞ­ÑĞ®ÑĞ¯Ñ"
)

var seededRand *rand.Rand = rand.New(
	rand.NewSource(time.Now().UnixNano()))

// RunesFromCharset returns random slice of runes of given length.
// Argument length indices length of output slice.
// Argument charset indices input charset from which output slice will be composed.
func RunesFromCharset(length int, charset []rune) []rune {
	output := make([]rune, 0, length)
	charsetR := charset

	for i := 0; i < length; i++ {
		output = append(output, charsetR[seededRand.Intn(len(charsetR))])
	}

	return output
}

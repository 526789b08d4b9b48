// Package noteref classifies the link targets found in note text.
//
// The parser attaches raw URL strings to link runs; hosts wire taps on
// those runs to navigation (open a profile, jump to a note, search a
// hashtag, open a browser). This package supplies the classification that
// wiring needs. It only inspects prefixes and character sets; it never
// decodes key material or touches the network.
package noteref

import "strings"

// Kind is the navigation target category of a link destination.
type Kind uint8

const (
	// Opaque destinations are passed to the host unchanged.
	Opaque Kind = iota
	// Profile destinations reference a user (npub1... or nprofile1...).
	Profile
	// Event destinations reference a note or other event (note1...,
	// nevent1... or naddr1...).
	Event
	// Hashtag destinations are topic searches.
	Hashtag
	// Web destinations are http or https URLs.
	Web
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Profile:
		return "Profile"
	case Event:
		return "Event"
	case Hashtag:
		return "Hashtag"
	case Web:
		return "Web"
	}
	return "Opaque"
}

var entityKinds = map[string]Kind{
	"npub":     Profile,
	"nprofile": Profile,
	"note":     Event,
	"nevent":   Event,
	"naddr":    Event,
}

// Classify returns the navigation kind of a link destination. A leading
// "nostr:" scheme is accepted on entity references; bech32 entities with
// characters outside the bech32 charset are Opaque rather than an error.
func Classify(dest string) Kind {
	switch {
	case dest == "":
		return Opaque
	case strings.HasPrefix(dest, "#"):
		return Hashtag
	case strings.HasPrefix(dest, "http://"), strings.HasPrefix(dest, "https://"):
		return Web
	}
	entity := strings.TrimPrefix(dest, "nostr:")
	for hrp, kind := range entityKinds {
		if rest := strings.TrimPrefix(entity, hrp+"1"); rest != entity {
			if validBech32Data(rest) {
				return kind
			}
			return Opaque
		}
	}
	return Opaque
}

// The bech32 data charset, per BIP-173. "1", "b", "i" and "o" are
// excluded by design.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

func validBech32Data(s string) bool {
	if len(s) < 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(bech32Charset, rune(s[i])) {
			return false
		}
	}
	return true
}

package domain

import (
	"fmt"
	"strings"
)

// Kind identifies one of the report sections recognised inside a CLI export
type Kind string

const (
	KindLinkPerf Kind = "linkperf"
	KindBoardSfp Kind = "boardsfp"
	KindFruRadio Kind = "fruradio"
	KindMfitr    Kind = "mfitr"
	KindMfar     Kind = "mfar"
)

// AllKinds lists every section kind in report order
var AllKinds = []Kind{KindLinkPerf, KindBoardSfp, KindFruRadio, KindMfar, KindMfitr}

// Title returns the human readable section name used in exports
func (k Kind) Title() string {
	switch k {
	case KindLinkPerf:
		return "Link performance WL"
	case KindBoardSfp:
		return "Board SFP"
	case KindFruRadio:
		return "FRU radio"
	case KindMfitr:
		return "MFITR"
	case KindMfar:
		return "MFAR"
	default:
		return string(k)
	}
}

// Valid reports whether k is a known section kind
func (k Kind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind converts user input (case-insensitive) into a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown section kind %q", s)
	}
	return k, nil
}

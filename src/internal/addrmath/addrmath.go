package addrmath

import "net/netip"

// Family identifies an address width in bytes.
type Family int

const (
	FamilyV4 Family = 4
	FamilyV6 Family = 16
)

// String returns "IPv4" or "IPv6".
func (f Family) String() string {
	switch f {
	case FamilyV4:
		return "IPv4"
	case FamilyV6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Matches reports whether addr has this family's width.
// IPv6 addresses with a zone never match.
func (f Family) Matches(addr netip.Addr) bool {
	switch f {
	case FamilyV4:
		return addr.Is4()
	case FamilyV6:
		return addr.Is6() && addr.Zone() == ""
	default:
		return false
	}
}

// Op combines two addresses of the same family into a third.
type Op func(a, b netip.Addr) netip.Addr

// AddV4 adds b to a octet by octet modulo 256. Overflow in one octet
// does not carry into its neighbour: 255 + 1 is 0.
func AddV4(a, b netip.Addr) netip.Addr {
	return netip.AddrFrom4(combine4(a.As4(), b.As4(), func(x, y byte) byte { return x + y }))
}

// SubtractV4 subtracts b from a octet by octet modulo 256, without borrow.
func SubtractV4(a, b netip.Addr) netip.Addr {
	return netip.AddrFrom4(combine4(a.As4(), b.As4(), func(x, y byte) byte { return x - y }))
}

// XorV6 returns the bytewise exclusive or of two IPv6 addresses.
func XorV6(a, b netip.Addr) netip.Addr {
	return netip.AddrFrom16(combine16(a.As16(), b.As16(), func(x, y byte) byte { return x ^ y }))
}

func combine4(a, b [4]byte, op func(x, y byte) byte) [4]byte {
	var out [4]byte
	for i := range out {
		out[i] = op(a[i], b[i])
	}
	return out
}

func combine16(a, b [16]byte, op func(x, y byte) byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = op(a[i], b[i])
	}
	return out
}

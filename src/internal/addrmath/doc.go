// Package addrmath implements octet-wise arithmetic over IP addresses.
//
// Every octet is an independent counter modulo 256. AddV4 and SubtractV4
// never carry or borrow between octets, so the result is not the integer
// sum of the two addresses:
//
//	AddV4(192.168.1.1, 10.10.10.10)  // 202.178.11.11
//	AddV4(255.255.255.255, 1.1.1.1)  // 0.0.0.0
//	SubtractV4(0.0.0.0, 1.1.1.1)     // 255.255.255.255
//
// XorV6 combines two IPv6 addresses byte by byte.
//
// All operations are pure. Callers must pass operands of the operation's
// family; use Family.Matches to check decoded input before calling.
package addrmath

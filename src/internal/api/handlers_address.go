package api

import (
	"fmt"
	"net/http"
	"net/netip"

	"github.com/oapi-codegen/runtime"

	"github.com/octetpost/octetpost/src/internal/addrmath"
	"github.com/octetpost/octetpost/src/internal/errors"
	"github.com/octetpost/octetpost/src/internal/log"
)

// addressRoute describes an address arithmetic endpoint: which family both
// query parameters must belong to, their names, and the operation applied
// to them in that order.
type addressRoute struct {
	family addrmath.Family
	first  string
	second string
	op     addrmath.Op
}

var (
	// GET /2/dest?from=&key=
	destV4Route = addressRoute{family: addrmath.FamilyV4, first: "from", second: "key", op: addrmath.AddV4}
	// GET /2/key?from=&to= computes to - from.
	keyV4Route = addressRoute{family: addrmath.FamilyV4, first: "to", second: "from", op: addrmath.SubtractV4}
	// GET /2/v6/dest?from=&key=
	destV6Route = addressRoute{family: addrmath.FamilyV6, first: "from", second: "key", op: addrmath.XorV6}
	// GET /2/v6/key?from=&to=
	keyV6Route = addressRoute{family: addrmath.FamilyV6, first: "from", second: "to", op: addrmath.XorV6}
)

// addressHandler returns the handler for an address arithmetic route.
func (h *Handler) addressHandler(route addressRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := decodeAddressParam(r, route.first, route.family)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		b, err := decodeAddressParam(r, route.second, route.family)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		result := route.op(a, b)
		log.Debugf("%s %s, %s -> %s", r.URL.Path, a, b, result)

		writeText(w, http.StatusOK, result.String())
	}
}

// decodeAddressParam reads a required single-valued query parameter and
// parses it as an address of the given family.
func decodeAddressParam(r *http.Request, name string, family addrmath.Family) (netip.Addr, error) {
	query := r.URL.Query()
	if !query.Has(name) {
		return netip.Addr{}, errors.NewValidationError(fmt.Sprintf("query parameter '%s' is required", name), nil)
	}

	var raw string
	if err := runtime.BindQueryParameter("form", true, true, name, query, &raw); err != nil {
		return netip.Addr{}, errors.NewValidationError(fmt.Sprintf("invalid format for query parameter '%s'", name), err)
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, errors.NewValidationError(fmt.Sprintf("query parameter '%s' is not a valid %s address", name, family), err)
	}

	if !family.Matches(addr) {
		return netip.Addr{}, errors.NewValidationError(fmt.Sprintf("query parameter '%s' must be a plain %s address, got %s", name, family, raw), nil)
	}

	return addr, nil
}

package http

import (
	"math"
	"net"
	"net/http"
	"strings"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/service"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/coerce"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/ptr"
)

var (
	minZero  = ptr.New(0)
	maxInt32 = ptr.New(math.MaxInt32)
)

// formInt reads a non-negative integer form field, falling back to def for
// missing or unparsable input.
func formInt(r *http.Request, key string, def int) int {
	return coerce.Int(r.PostFormValue(key), def, minZero, maxInt32)
}

func formID(r *http.Request) int64 {
	return int64(formInt(r, "id", 0))
}

func productInputFromForm(r *http.Request) service.ProductInput {
	return service.ProductInput{
		Name:         r.PostFormValue("name"),
		Category:     r.PostFormValue("category"),
		Material:     r.PostFormValue("material"),
		Price:        formInt(r, "price", 0),
		Stock:        formInt(r, "stock", 0),
		LeadTimeDays: formInt(r, "lead_time_days", 1),
		PhotoURL:     r.PostFormValue("photo_url"),
		STLURL:       r.PostFormValue("stl_url"),
	}
}

// materialOptions lists the standard materials plus current when it is a
// custom value, so editing never silently changes it.
func materialOptions(current string) []string {
	current = strings.TrimSpace(current)
	for _, m := range model.Materials {
		if m == current {
			return model.Materials
		}
	}
	if current == "" {
		return model.Materials
	}
	opts := make([]string, 0, len(model.Materials)+1)
	opts = append(opts, current)
	return append(opts, model.Materials...)
}

// clientKey identifies the caller for rate limiting. RemoteAddr already holds
// the forwarded address when the proxy headers are trusted.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

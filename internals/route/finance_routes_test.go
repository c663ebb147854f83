// file: internals/route/finance_routes_test.go
package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

// The attachment group must expose the full upload/download/delete trio.
func TestFinanceRoutesPaymentAttachmentGroup(t *testing.T) {
	app := fiber.New()
	FinanceRoutes(app.Group("/api/a"), nil)

	want := map[string]bool{
		"POST /api/a/payments/:id/attachment":   false,
		"GET /api/a/payments/:id/attachment":    false,
		"DELETE /api/a/payments/:id/attachment": false,
	}
	for _, r := range app.GetRoutes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Errorf("route %s is not registered", key)
		}
	}
}

package v1handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type access int

const (
	public access = iota
	user
	admin
)

type route struct {
	method  string
	path    string
	access  access
	handler http.HandlerFunc
	// streaming routes are not wrapped in the request timeout.
	streaming bool
}

func (h *Handler) routes() []route {
	return []route{
		{method: http.MethodPost, path: "/auth/login", access: public, handler: h.Login},
		{method: http.MethodPost, path: "/auth/register", access: public, handler: h.Register},

		{method: http.MethodGet, path: "/me", access: user, handler: h.Me},
		{method: http.MethodGet, path: "/me/balance", access: user, handler: h.MyBalance},
		{method: http.MethodGet, path: "/users", access: admin, handler: h.ListUsers},
		{method: http.MethodPost, path: "/users", access: admin, handler: h.CreateUser},
		{method: http.MethodGet, path: "/users/{id}", access: user, handler: h.GetUser},
		{method: http.MethodPatch, path: "/users/{id}", access: admin, handler: h.UpdateUser},
		{method: http.MethodGet, path: "/overview", access: admin, handler: h.Overview},

		{method: http.MethodGet, path: "/websites", access: public, handler: h.ListWebsites},
		{method: http.MethodPost, path: "/websites", access: user, handler: h.SubmitWebsite},
		{method: http.MethodPost, path: "/websites/{id}/approve", access: admin, handler: h.ApproveWebsite},
		{method: http.MethodPost, path: "/websites/{id}/reject", access: admin, handler: h.RejectWebsite},

		{method: http.MethodGet, path: "/listings", access: public, handler: h.ListListings},
		{method: http.MethodPost, path: "/listings", access: user, handler: h.CreateListing},
		{method: http.MethodGet, path: "/listings/{id}", access: public, handler: h.GetListing},
		{method: http.MethodPatch, path: "/listings/{id}", access: user, handler: h.UpdateListing},
		{method: http.MethodPost, path: "/listings/{id}/approve", access: admin, handler: h.ApproveListing},
		{method: http.MethodPost, path: "/listings/{id}/reject", access: admin, handler: h.RejectListing},
		{method: http.MethodPost, path: "/listings/{id}/deactivate", access: user, handler: h.DeactivateListing},

		{method: http.MethodGet, path: "/purchases", access: user, handler: h.ListPurchases},
		{method: http.MethodPost, path: "/purchases", access: user, handler: h.CreatePurchase},
		{method: http.MethodGet, path: "/purchases/{id}", access: user, handler: h.GetPurchase},
		{method: http.MethodPost, path: "/purchases/{id}/transitions", access: user, handler: h.TransitionPurchase},

		{method: http.MethodGet, path: "/disputes", access: user, handler: h.ListDisputes},
		{method: http.MethodPost, path: "/disputes", access: user, handler: h.OpenDispute},
		{method: http.MethodGet, path: "/disputes/{id}", access: user, handler: h.GetDispute},
		{method: http.MethodPost, path: "/disputes/{id}/review", access: admin, handler: h.ReviewDispute},
		{method: http.MethodPost, path: "/disputes/{id}/resolve", access: admin, handler: h.ResolveDispute},
		{method: http.MethodPost, path: "/disputes/{id}/reject", access: admin, handler: h.RejectDispute},

		{method: http.MethodGet, path: "/balance-requests", access: user, handler: h.ListBalanceRequests},
		{method: http.MethodPost, path: "/balance-requests", access: user, handler: h.SubmitBalanceRequest},
		{method: http.MethodPost, path: "/balance-requests/{id}/approve", access: admin, handler: h.ApproveBalanceRequest},
		{method: http.MethodPost, path: "/balance-requests/{id}/reject", access: admin, handler: h.RejectBalanceRequest},

		{method: http.MethodGet, path: "/transactions", access: user, handler: h.ListTransactions},
		{method: http.MethodPost, path: "/transactions/adjustments", access: admin, handler: h.AdjustBalance},

		{method: http.MethodGet, path: "/services", access: public, handler: h.ListServices},
		{method: http.MethodPost, path: "/services", access: admin, handler: h.CreateService},
		{method: http.MethodPatch, path: "/services/{id}", access: admin, handler: h.UpdateService},
		{method: http.MethodGet, path: "/service-requests", access: user, handler: h.ListServiceRequests},
		{method: http.MethodPost, path: "/service-requests", access: user, handler: h.RequestService},
		{method: http.MethodPatch, path: "/service-requests/{id}", access: admin, handler: h.UpdateServiceRequest},

		{method: http.MethodGet, path: "/blog/posts", access: public, handler: h.ListPosts},
		{method: http.MethodPost, path: "/blog/posts", access: admin, handler: h.CreatePost},
		{method: http.MethodGet, path: "/blog/posts/{slug}", access: public, handler: h.GetPost},
		{method: http.MethodPatch, path: "/blog/posts/{id}", access: admin, handler: h.UpdatePost},
		{method: http.MethodDelete, path: "/blog/posts/{id}", access: admin, handler: h.DeletePost},
		{method: http.MethodGet, path: "/stories", access: public, handler: h.ListStories},
		{method: http.MethodPost, path: "/stories", access: admin, handler: h.CreateStory},
		{method: http.MethodPatch, path: "/stories/{id}", access: admin, handler: h.UpdateStory},
		{method: http.MethodDelete, path: "/stories/{id}", access: admin, handler: h.DeleteStory},

		{method: http.MethodGet, path: "/exports/{kind}", access: admin, handler: h.Export, streaming: true},
	}
}

// Mount mounts every v1 route on r. Authentication is applied per route
// by sec; requestTimeout bounds every non-streaming handler when positive.
func (h *Handler) Mount(r *mux.Router, sec *SecHandler, requestTimeout time.Duration) {
	for _, rt := range h.routes() {
		var handler http.Handler = rt.handler
		if requestTimeout > 0 && !rt.streaming {
			handler = http.TimeoutHandler(handler, requestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
		}

		switch rt.access {
		case public:
			handler = sec.Optional(handler)
		case user:
			handler = sec.Required(handler)
		case admin:
			handler = sec.Admin(handler)
		}

		r.Handle(rt.path, handler).Methods(rt.method)
	}
}

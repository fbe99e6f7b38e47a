package places

import (
	"net/http"
	"sync"
)

// Registry memoizes one Client and one Service per owning *http.Client,
// keyed by pointer identity. Entries are created on first access and live
// until Remove is called.
type Registry struct {
	mu       sync.Mutex
	opts     []ClientOption
	clients  map[*http.Client]*Client
	services map[*http.Client]*Service
}

// NewRegistry returns an empty registry. opts are applied to every Client
// it creates, before the owner is installed as the transport.
func NewRegistry(opts ...ClientOption) *Registry {
	return &Registry{
		opts:     opts,
		clients:  make(map[*http.Client]*Client),
		services: make(map[*http.Client]*Service),
	}
}

// Client returns the Client bound to owner, creating it if needed.
func (r *Registry) Client(owner *http.Client) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clientLocked(owner)
}

// Service returns the Service bound to owner, creating it (and its Client) if needed.
func (r *Registry) Service(owner *http.Client) *Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.services[owner]; ok {
		return s
	}
	s := NewService(r.clientLocked(owner))
	r.services[owner] = s
	return s
}

// Remove drops everything bound to owner.
func (r *Registry) Remove(owner *http.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, owner)
	delete(r.services, owner)
}

// Len returns the number of owners with a Client.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *Registry) clientLocked(owner *http.Client) *Client {
	if c, ok := r.clients[owner]; ok {
		return c
	}
	opts := make([]ClientOption, 0, len(r.opts)+1)
	opts = append(opts, r.opts...)
	if owner != nil {
		opts = append(opts, WithHTTPClient(owner))
	}
	c := NewClient(opts...)
	r.clients[owner] = c
	return c
}

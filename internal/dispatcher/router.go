package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/wsjump/internal/dispatcher/handler"
)

// Router routes actions to namespace handlers.
// The namespace is the prefix before the first dot of an action name.
type Router struct {
	mu         sync.RWMutex
	namespaces map[string]handler.NamespaceHandler
	fallback   handler.Handler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// SetFallback sets the handler used when no namespace accepts an action.
func (r *Router) SetFallback(h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Route finds the handler for an action, or nil.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h := r.lookup(actionName); h != nil {
		return handler.NewNamespaceAdapter(h)
	}
	return r.fallback
}

// CanRoute returns true if the router can handle the action.
func (r *Router) CanRoute(actionName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(actionName) != nil || r.fallback != nil
}

// lookup returns the namespace handler accepting actionName.
// Callers hold r.mu.
func (r *Router) lookup(actionName string) handler.NamespaceHandler {
	ns, _ := SplitActionName(actionName)
	if ns == "" {
		return nil
	}
	h, ok := r.namespaces[ns]
	if !ok || !h.CanHandle(actionName) {
		return nil
	}
	return h
}

// Namespaces returns all registered namespace names, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitActionName splits "cursor.nextWhitespace" into "cursor" and
// "nextWhitespace". A name without a dot has no namespace.
func SplitActionName(fullName string) (namespace, action string) {
	ns, rest, ok := strings.Cut(fullName, ".")
	if !ok {
		return "", fullName
	}
	return ns, rest
}

// BuildActionName joins a namespace and an action name.
func BuildActionName(namespace, action string) string {
	if namespace == "" {
		return action
	}
	return namespace + "." + action
}

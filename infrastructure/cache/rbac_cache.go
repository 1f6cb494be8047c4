package cache

import (
	"sort"
	"sync"
)

// Resource maps a role to a named route or navigation entry.
type Resource struct {
	UserResourceCode string
	Path             string
	Method           string
	Role             string
}

// RbacRolesCache stores role to resources map.
type RbacRolesCache struct {
	mu        sync.RWMutex
	resources map[string][]Resource
	allRoutes map[string]struct{}
}

func NewRbacRolesCache() *RbacRolesCache {
	return &RbacRolesCache{
		resources: make(map[string][]Resource),
		allRoutes: make(map[string]struct{}),
	}
}

func (c *RbacRolesCache) Add(role string, r Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.resources[role] {
		if existing == r {
			return
		}
	}
	c.resources[role] = append(c.resources[role], r)
	c.allRoutes[r.UserResourceCode] = struct{}{}
}

func (c *RbacRolesCache) GetRolesAndResources(roles []string) []Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Resource, 0)
	for _, role := range roles {
		out = append(out, c.resources[role]...)
	}
	return out
}

// Allowed reports whether any of roles holds the resource code.
func (c *RbacRolesCache) Allowed(roles []string, code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, role := range roles {
		for _, res := range c.resources[role] {
			if res.UserResourceCode == code {
				return true
			}
		}
	}
	return false
}

func (c *RbacRolesCache) GetAllRouteNames() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int, len(c.allRoutes))
	for route := range c.allRoutes {
		out[route] = 1
	}
	return out
}

func (c *RbacRolesCache) RouteNamesSorted() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.allRoutes))
	for name := range c.allRoutes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

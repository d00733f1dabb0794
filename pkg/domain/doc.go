// Package domain contains the core domain entities of the catalog service:
// users, stores, items, tags and token claims. These types represent the
// business concepts and are intentionally free of infrastructure concerns so
// they can be shared across packages.
package domain

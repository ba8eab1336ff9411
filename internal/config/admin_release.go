//go:build release

package config

const AdminAllowed = false
